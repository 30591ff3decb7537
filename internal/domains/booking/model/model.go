package model

import (
	"time"

	"restate/shared/model"
)

const (
	EntityName = "booking"

	FieldUserID     = "userId"
	FieldPropertyID = "propertyId"
	FieldBookedAt   = "bookedAt"
)

// Booking references a property that may or may not still exist; reads
// must tolerate a missing property. No uniqueness is enforced on
// (userId, propertyId).
type Booking struct {
	model.Metadata
	UserID     string    `json:"userId"`
	PropertyID string    `json:"propertyId"`
	BookedAt   time.Time `json:"bookedAt"`
}

// EnrichedBooking is a booking merged with display fields of its
// referenced property. Constructed fresh on every fetch, never
// persisted, so it can go stale relative to the underlying property.
type EnrichedBooking struct {
	Booking
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Image   string  `json:"image"`
	Price   float64 `json:"price"`
}
