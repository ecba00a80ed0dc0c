package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spidergroupcm/renthox-car-rent-server/internal/middleware"
	"github.com/spidergroupcm/renthox-car-rent-server/internal/model"
	"github.com/spidergroupcm/renthox-car-rent-server/internal/queue"
	"github.com/spidergroupcm/renthox-car-rent-server/internal/repository"
)

// duplicateBookingMsg is the plain-text body of the 400 response when a
// renter tries to book the same car twice.
const duplicateBookingMsg = "You have already booked this car"

// BookingStore is the slice of the booking repository the HTTP layer depends
// on.
type BookingStore interface {
	Exists(ctx context.Context, renterEmail, carID string) (bool, error)
	Create(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
	ListByRenter(ctx context.Context, email string) ([]bson.M, error)
	Cancel(ctx context.Context, id string) (*mongo.UpdateResult, error)
	Reschedule(ctx context.Context, id, startDate, endDate string) (*mongo.UpdateResult, error)
}

// CarCounter is the single car-repository operation the booking flow needs:
// bumping the referenced car's booking counter after a successful insert.
type CarCounter interface {
	IncrementBookingCount(ctx context.Context, id string) error
}

// BookingHandler exposes the booking endpoints. Publish, when set, emits a
// booking-created event after a successful insert; both the counter increment
// and the publish are best-effort and never fail the request.
type BookingHandler struct {
	Bookings BookingStore
	Cars     CarCounter
	Publish  func(ctx context.Context, ev queue.BookingCreatedEvent) error
}

func NewBookingHandler(bookings BookingStore, cars CarCounter) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Cars: cars}
}

type rescheduleReq struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Create handles POST /addBooking. The flow is check → insert → increment:
// an existing booking for the same (renter, car) pair rejects the request
// with a 400 before anything is written; otherwise the document is inserted
// with an explicit Pending status and the car's bookingCount is incremented.
// The unique index on (renterEmail, carId) backstops the pre-check, so a
// concurrent duplicate surfaces as the same 400. A failed increment leaves
// the booking in place without the count reflected — logged, not rolled back.
func (h *BookingHandler) Create(c echo.Context) error {
	var doc bson.M
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	b := model.BookingFromDoc(doc)

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	exists, err := h.Bookings.Exists(ctx, b.RenterEmail, b.CarID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if exists {
		return c.String(http.StatusBadRequest, duplicateBookingMsg)
	}

	doc["status"] = model.StatusPending
	id, err := h.Bookings.Create(ctx, doc)
	if err != nil {
		if err == repository.ErrDuplicateBooking {
			return c.String(http.StatusBadRequest, duplicateBookingMsg)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "insert booking failed"})
	}

	if err := h.Cars.IncrementBookingCount(ctx, b.CarID); err != nil {
		log.Printf("booking %s: increment bookingCount for car %q failed: %v", id.Hex(), b.CarID, err)
	}

	if h.Publish != nil {
		_ = h.Publish(ctx, queue.BookingCreatedEvent{
			BookingID:   id.Hex(),
			RenterEmail: b.RenterEmail,
			CarID:       b.CarID,
			StartDate:   b.StartDate,
			EndDate:     b.EndDate,
			CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"acknowledged": true, "insertedId": id})
}

// ListByRenter handles GET /books/:email. The route is wrapped by the cookie
// auth middleware; on top of that, the path email must equal the email claim
// of the presented token — listing someone else's bookings is unauthorized.
func (h *BookingHandler) ListByRenter(c echo.Context) error {
	email := c.Param("email")
	claim, _ := c.Get(middleware.ContextEmailKey).(string)
	if claim == "" || claim != email {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized access"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	bookings, err := h.Bookings.ListByRenter(ctx, email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, bookings)
}

// Cancel handles PATCH /books/:id: sets the status to Canceled regardless of
// the current value, so canceling twice is a no-op.
func (h *BookingHandler) Cancel(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	res, err := h.Bookings.Cancel(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel booking failed"})
	}
	return updateAck(c, res)
}

// Reschedule handles PATCH /books/dates/:id: sets new dates and forces the
// status to Confirmed, even when the booking was previously Canceled.
func (h *BookingHandler) Reschedule(c echo.Context) error {
	var req rescheduleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	res, err := h.Bookings.Reschedule(ctx, c.Param("id"), req.StartDate, req.EndDate)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reschedule booking failed"})
	}
	return updateAck(c, res)
}

// updateAck shapes a Mongo update result into the ack body shared by the
// PATCH endpoints.
func updateAck(c echo.Context, res *mongo.UpdateResult) error {
	return c.JSON(http.StatusOK, echo.Map{
		"acknowledged":  true,
		"matchedCount":  res.MatchedCount,
		"modifiedCount": res.ModifiedCount,
	})
}
