package model

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking status values. A booking is created as Pending; cancel moves it to
// Canceled unconditionally, and rescheduling forces Confirmed even from
// Canceled (re-dating implicitly un-cancels).
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCanceled  = "Canceled"
)

// Booking is the typed view over a booking document. Like cars, bookings are
// stored as opaque documents; these are the fields the backend reads for the
// duplicate check, the auth comparison and the status updates. CarID holds
// the hex form of the referenced car's ObjectID — it is a reference only,
// never enforced (a car may be deleted while bookings point at it).
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RenterEmail string             `bson:"renterEmail,omitempty" json:"renterEmail,omitempty"`
	CarID       string             `bson:"carId,omitempty" json:"carId,omitempty"`
	StartDate   string             `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate     string             `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Status      string             `bson:"status,omitempty" json:"status,omitempty"`
}

// BookingFromDoc extracts the typed fields out of an opaque booking document.
// Missing or non-string fields come back as zero values; callers decide what
// to do with an incomplete booking (the creation path deliberately performs
// no validation).
func BookingFromDoc(doc bson.M) Booking {
	return Booking{
		RenterEmail: docString(doc, "renterEmail"),
		CarID:       docString(doc, "carId"),
		StartDate:   docString(doc, "startDate"),
		EndDate:     docString(doc, "endDate"),
		Status:      docString(doc, "status"),
	}
}

func docString(doc bson.M, key string) string {
	s, _ := doc[key].(string)
	return s
}
