// Package repository contains data access logic separated from HTTP handlers.
// This file defines the repository for the cars collection. Car documents are
// opaque: the frontend owns their shape, so reads and writes move bson.M
// values through unchanged and only the handful of fields the backend needs
// (carModel for search, email for ownership, bookingCount for the counter)
// are ever addressed by name.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CarRepo encapsulates all database operations on the cars collection. It
// depends on a mongo database handle which is constructed in main and
// injected here, allowing substitution in tests and a clean shutdown path.
type CarRepo struct {
	coll *mongo.Collection
}

// NewCarRepo constructs a CarRepo bound to the "cars" collection of the
// provided database.
func NewCarRepo(db *mongo.Database) *CarRepo {
	return &CarRepo{coll: db.Collection("cars")}
}

// Create inserts the given document as-is and returns the generated id.
// No validation is performed; the document is whatever the client posted.
func (r *CarRepo) Create(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

// Search returns every car whose model name contains search (case
// insensitive; empty matches all), optionally sorted by a single field.
// The full matching set is returned — there is no pagination.
func (r *CarRepo) Search(ctx context.Context, search, sortBy, order string) ([]bson.M, error) {
	opts := options.Find()
	if sort := SortSpec(sortBy, order); sort != nil {
		opts.SetSort(sort)
	}
	return r.find(ctx, ModelSearchFilter(search), opts)
}

// Sample returns a storage-order prefix of at most limit cars. Used for the
// homepage preview; no ordering is guaranteed.
func (r *CarRepo) Sample(ctx context.Context, limit int64) ([]bson.M, error) {
	return r.find(ctx, bson.M{}, options.Find().SetLimit(limit))
}

// ListByOwner returns the cars listed by the given owner email, with the
// same optional sort semantics as Search.
func (r *CarRepo) ListByOwner(ctx context.Context, email, sortBy, order string) ([]bson.M, error) {
	opts := options.Find()
	if sort := SortSpec(sortBy, order); sort != nil {
		opts.SetSort(sort)
	}
	return r.find(ctx, bson.M{"email": email}, opts)
}

// GetByID looks a car up by its hex id. A missing document is not an error:
// the result is nil and callers pass that through to the client unchanged.
func (r *CarRepo) GetByID(ctx context.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

// Update merges the given fields into the car via $set. Upsert is enabled:
// an unknown id creates a new document holding exactly the supplied fields
// (idempotent-PUT semantics).
func (r *CarRepo) Update(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true))
}

// Delete removes the car by id. Bookings referencing it are left untouched.
func (r *CarRepo) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return r.coll.DeleteOne(ctx, bson.M{"_id": oid})
}

// IncrementBookingCount atomically bumps the car's bookingCount by one.
// $inc creates the field on first use, so cars start without a count.
func (r *CarRepo) IncrementBookingCount(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"bookingCount": 1}})
	return err
}

// find runs the query and drains the cursor into a slice. The slice is
// initialized so an empty result serializes as [] rather than null.
func (r *CarRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]bson.M, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
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
