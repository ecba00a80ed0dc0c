package repository

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spidergroupcm/renthox-car-rent-server/internal/model"
)

func TestSortSpec(t *testing.T) {
	if got := SortSpec("", "desc"); got != nil {
		t.Fatalf("expected nil sort for empty sortBy, got %#v", got)
	}

	asc := SortSpec("price", "")
	if len(asc) != 1 || asc[0].Key != "price" || asc[0].Value != 1 {
		t.Fatalf("ascending sort mismatch: %#v", asc)
	}

	// Anything other than the literal "desc" sorts ascending.
	if got := SortSpec("price", "DESC"); got[0].Value != 1 {
		t.Fatalf("expected ascending for non-literal order, got %#v", got)
	}

	desc := SortSpec("bookingCount", "desc")
	if desc[0].Key != "bookingCount" || desc[0].Value != -1 {
		t.Fatalf("descending sort mismatch: %#v", desc)
	}
}

func TestModelSearchFilter(t *testing.T) {
	f := ModelSearchFilter("civic")
	re, ok := f["carModel"].(primitive.Regex)
	if !ok {
		t.Fatalf("expected a regex filter on carModel, got %#v", f)
	}
	if re.Pattern != "civic" {
		t.Fatalf("pattern mismatch: %q", re.Pattern)
	}
	if re.Options != "i" {
		t.Fatalf("expected case-insensitive option, got %q", re.Options)
	}

	// Empty search must match everything: an empty pattern regex.
	empty := ModelSearchFilter("")
	if re := empty["carModel"].(primitive.Regex); re.Pattern != "" {
		t.Fatalf("expected empty pattern, got %q", re.Pattern)
	}
}

// applyUpdate replays a $set update document against a booking, the way the
// storage engine would.
func applyUpdate(doc bson.M, update bson.M) bson.M {
	set, _ := update["$set"].(bson.M)
	for k, v := range set {
		doc[k] = v
	}
	return doc
}

func TestCancelUpdateIsIdempotent(t *testing.T) {
	doc := bson.M{"renterEmail": "a@b.com", "status": model.StatusPending}

	doc = applyUpdate(doc, CancelUpdate())
	if doc["status"] != model.StatusCanceled {
		t.Fatalf("expected Canceled, got %#v", doc["status"])
	}

	// Canceling an already-canceled booking leaves the status unchanged.
	doc = applyUpdate(doc, CancelUpdate())
	if doc["status"] != model.StatusCanceled {
		t.Fatalf("second cancel must keep Canceled, got %#v", doc["status"])
	}
}

func TestRescheduleUpdateForcesConfirmed(t *testing.T) {
	u := RescheduleUpdate("2026-10-01", "2026-10-05")
	set, ok := u["$set"].(bson.M)
	if !ok {
		t.Fatalf("expected a $set update, got %#v", u)
	}
	if set["startDate"] != "2026-10-01" || set["endDate"] != "2026-10-05" {
		t.Fatalf("dates mismatch: %#v", set)
	}
	if set["status"] != model.StatusConfirmed {
		t.Fatalf("reschedule must force Confirmed, got %#v", set["status"])
	}

	// The status is written unconditionally, so rescheduling a canceled
	// booking resurrects it.
	doc := bson.M{"status": model.StatusCanceled}
	doc = applyUpdate(doc, RescheduleUpdate("2026-10-01", "2026-10-05"))
	if doc["status"] != model.StatusConfirmed {
		t.Fatalf("expected Canceled booking to become Confirmed, got %#v", doc["status"])
	}
}
