package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// dbTimeout bounds every handler-level database call.
const dbTimeout = 5 * time.Second

// CarStore is the slice of the car repository the HTTP layer depends on.
// Declaring it here lets tests substitute an in-memory fake for the Mongo
// repository.
type CarStore interface {
	Create(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
	Search(ctx context.Context, search, sortBy, order string) ([]bson.M, error)
	Sample(ctx context.Context, limit int64) ([]bson.M, error)
	ListByOwner(ctx context.Context, email, sortBy, order string) ([]bson.M, error)
	GetByID(ctx context.Context, id string) (bson.M, error)
	Update(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
	IncrementBookingCount(ctx context.Context, id string) error
}

// sampleLimit caps the homepage preview listing.
const sampleLimit = 6

// CarHandler exposes the car CRUD endpoints. Car documents pass through
// opaquely in both directions; no validation or shaping beyond the ack
// responses happens here.
type CarHandler struct {
	Cars CarStore
}

func NewCarHandler(cars CarStore) *CarHandler {
	return &CarHandler{Cars: cars}
}

// Add handles POST /add-car: inserts the posted document as-is.
func (h *CarHandler) Add(c echo.Context) error {
	var doc bson.M
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	id, err := h.Cars.Create(ctx, doc)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "insert car failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"acknowledged": true, "insertedId": id})
}

// Search handles GET /cars?search=&sortBy=&order=.
func (h *CarHandler) Search(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	cars, err := h.Cars.Search(ctx,
		c.QueryParam("search"), c.QueryParam("sortBy"), c.QueryParam("order"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, cars)
}

// Sample handles GET /cars/limit: up to six cars for the homepage preview.
func (h *CarHandler) Sample(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	cars, err := h.Cars.Sample(ctx, sampleLimit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, cars)
}

// ListByOwner handles GET /myCars?email=&sortBy=&order=.
func (h *CarHandler) ListByOwner(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	cars, err := h.Cars.ListByOwner(ctx,
		c.QueryParam("email"), c.QueryParam("sortBy"), c.QueryParam("order"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, cars)
}

// GetByID handles GET /car/:id. A missing car responds 200 with a null body
// rather than 404 — clients treat the lookup as a plain data fetch.
func (h *CarHandler) GetByID(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	car, err := h.Cars.GetByID(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, car)
}

// Update handles PUT /updateCars/:id: merges the posted fields into the car.
// An unknown id creates a new document with exactly the posted fields.
func (h *CarHandler) Update(c echo.Context) error {
	var fields bson.M
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	res, err := h.Cars.Update(ctx, c.Param("id"), fields)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update car failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"acknowledged":  true,
		"matchedCount":  res.MatchedCount,
		"modifiedCount": res.ModifiedCount,
		"upsertedId":    res.UpsertedID,
	})
}

// Delete handles DELETE /cars/:id. Bookings referencing the car are left in
// place.
func (h *CarHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	res, err := h.Cars.Delete(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete car failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"acknowledged": true, "deletedCount": res.DeletedCount})
}
