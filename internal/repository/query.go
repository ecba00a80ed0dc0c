// query.go holds the pure query-building helpers shared by the listing
// endpoints. They are separated from the repositories so the translation of
// user-facing query parameters into Mongo filter/sort documents can be tested
// without a database.
package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spidergroupcm/renthox-car-rent-server/internal/model"
)

// SortSpec builds the sort document for the optional sortBy/order query
// parameters. An empty sortBy means no sorting (storage order). order is
// descending only for the literal "desc"; anything else sorts ascending.
func SortSpec(sortBy, order string) bson.D {
	if sortBy == "" {
		return nil
	}
	dir := 1
	if order == "desc" {
		dir = -1
	}
	return bson.D{{Key: sortBy, Value: dir}}
}

// ModelSearchFilter matches cars whose carModel contains the given pattern,
// case-insensitively. The pattern is used as a raw regular expression, so an
// empty search matches every car.
func ModelSearchFilter(search string) bson.M {
	return bson.M{"carModel": primitive.Regex{Pattern: search, Options: "i"}}
}

// CancelUpdate builds the update applied when a booking is canceled. The
// status is set unconditionally, so canceling an already-canceled booking
// writes the same value again — a state-wise no-op.
func CancelUpdate() bson.M {
	return bson.M{"$set": bson.M{"status": model.StatusCanceled}}
}

// RescheduleUpdate builds the update applied when a booking is re-dated. It
// always forces the status to Confirmed, which means a Canceled booking is
// resurrected by rescheduling it.
func RescheduleUpdate(startDate, endDate string) bson.M {
	return bson.M{"$set": bson.M{
		"startDate": startDate,
		"endDate":   endDate,
		"status":    model.StatusConfirmed,
	}}
}
