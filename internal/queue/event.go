// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a booking is successfully inserted.
// It carries enough information for downstream consumers to log or notify
// without querying the primary database.
type BookingCreatedEvent struct {
	BookingID   string `json:"booking_id"`
	RenterEmail string `json:"renter_email"`
	CarID       string `json:"car_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	CreatedAt   string `json:"created_at"`
}
