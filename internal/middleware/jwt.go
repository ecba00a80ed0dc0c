package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/spidergroupcm/renthox-car-rent-server/internal/utils" // session token parsing
)

// ContextEmailKey is the context key under which the authenticated email
// claim is stored for downstream handlers.
const ContextEmailKey = "email"

// CookieAuth returns an Echo middleware that validates the session token
// carried in the "token" cookie and injects the embedded email claim into
// the request context. The provided secret must match the one used when
// issuing tokens. This middleware wraps the protected booking-listing route;
// the handler itself performs the second, route-local authorization check
// (path email must equal the authenticated email).
func CookieAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Absent cookie → unauthorized. The error body matches the
			// message the frontends already key on.
			cookie, err := c.Cookie(utils.SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized access"})
			}

			// Invalid signature or expired token → unauthorized as well.
			claims, err := utils.ParseSessionToken(secret, cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized access"})
			}

			// Attach the decoded email claim for downstream use. A token
			// without an email claim yields an empty string, which can never
			// match a path parameter, so such requests fail the route-local
			// check later.
			email, _ := claims["email"].(string)
			c.Set(ContextEmailKey, email)
			return next(c)
		}
	}
}
