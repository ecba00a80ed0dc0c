package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Health is the liveness endpoint mounted at the root path. It returns a
// plain text message with an HTTP 200 status code so uptime monitors and the
// hosting platform can verify the service is running.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "Car rental server is running")
}
