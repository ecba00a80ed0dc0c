// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as handlers
// to distinguish between different failure scenarios without inspecting
// driver-specific errors.
package repository

import "errors"

// ErrDuplicateBooking is returned when a renter already holds a booking for
// the same car. It is produced both by the pre-insert existence check and by
// the unique index on (renterEmail, carId), so a concurrent insert that slips
// past the check still surfaces as the same error. Handlers translate it into
// an HTTP 400 response.
var ErrDuplicateBooking = errors.New("duplicate booking")
