// This file defines the repository for the booking collection. Bookings
// reference cars by id without any foreign-key enforcement; the interesting
// invariant lives here instead: at most one booking per (renterEmail, carId)
// pair, guarded by an explicit existence check and backstopped by a unique
// compound index so concurrent creates cannot slip a duplicate through.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BookingRepo encapsulates all database operations on the booking collection.
type BookingRepo struct {
	coll *mongo.Collection
}

// NewBookingRepo constructs a BookingRepo bound to the "booking" collection
// of the provided database.
func NewBookingRepo(db *mongo.Database) *BookingRepo {
	return &BookingRepo{coll: db.Collection("booking")}
}

// EnsureIndexes creates the unique compound index on (renterEmail, carId).
// Index creation is idempotent, so calling this on every startup is safe.
func (r *BookingRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "renterEmail", Value: 1}, {Key: "carId", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_renter_car"),
	})
	return err
}

// Exists reports whether the renter already holds a booking for the car.
func (r *BookingRepo) Exists(ctx context.Context, renterEmail, carID string) (bool, error) {
	err := r.coll.FindOne(ctx,
		bson.M{"renterEmail": renterEmail, "carId": carID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts the booking document as-is and returns the generated id.
// A unique-index violation is mapped to ErrDuplicateBooking so callers can
// report it as a client error rather than a storage failure.
func (r *BookingRepo) Create(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrDuplicateBooking
		}
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

// ListByRenter returns every booking whose renterEmail matches, in storage
// order. The slice is initialized so an empty result serializes as [].
func (r *BookingRepo) ListByRenter(ctx context.Context, email string) ([]bson.M, error) {
	cur, err := r.coll.Find(ctx, bson.M{"renterEmail": email})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []bson.M{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Cancel sets the booking status to Canceled regardless of its current
// value. Canceling an already-canceled booking is a state-wise no-op.
func (r *BookingRepo) Cancel(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return r.coll.UpdateOne(ctx, bson.M{"_id": oid}, CancelUpdate())
}

// Reschedule sets new start/end dates and forces the status to Confirmed —
// even when the booking was previously Canceled. Re-dating un-cancels.
func (r *BookingRepo) Reschedule(ctx context.Context, id, startDate, endDate string) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return r.coll.UpdateOne(ctx, bson.M{"_id": oid}, RescheduleUpdate(startDate, endDate))
}
