package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"            // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo's bundled middleware (CORS)

	"github.com/spidergroupcm/renthox-car-rent-server/internal/config"     // allowed origins
	"github.com/spidergroupcm/renthox-car-rent-server/internal/handler"    // route handlers
	"github.com/spidergroupcm/renthox-car-rent-server/internal/middleware" // cookie auth and cache middleware
)

// Register wires every route of the API onto the provided Echo instance.
// The layer is pure dispatch: each path+method maps to one handler, with the
// cookie auth middleware on the booking-listing route and the response cache
// on the public car listings. CORS is restricted to the enumerated frontend
// origins with credentials enabled so the session cookie travels cross-site.
func Register(e *echo.Echo, cfg config.Config,
	auth *handler.AuthHandler, cars *handler.CarHandler, bookings *handler.BookingHandler,
	cache echo.MiddlewareFunc) {

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	// Liveness probe used by the hosting platform.
	e.GET("/", handler.Health)

	// Session endpoints.
	e.POST("/jwt", auth.IssueToken)
	e.GET("/logout", auth.Logout)

	// Car endpoints. The two public listings go through the response cache;
	// everything else hits the database directly.
	e.POST("/add-car", cars.Add)
	e.GET("/cars", cars.Search, cache)
	e.GET("/cars/limit", cars.Sample, cache)
	e.GET("/myCars", cars.ListByOwner)
	e.DELETE("/cars/:id", cars.Delete)
	e.GET("/car/:id", cars.GetByID)
	e.PUT("/updateCars/:id", cars.Update)

	// Booking endpoints. Only the per-renter listing requires a session.
	e.POST("/addBooking", bookings.Create)
	e.GET("/books/:email", bookings.ListByRenter, middleware.CookieAuth(cfg.JWTSecret))
	e.PATCH("/books/:id", bookings.Cancel)
	e.PATCH("/books/dates/:id", bookings.Reschedule)
}
