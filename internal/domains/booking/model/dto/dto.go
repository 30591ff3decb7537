package dto

import (
	"time"

	"restate/internal/domains/booking/model"
	propertyModel "restate/internal/domains/property/model"
)

// BookRequest creates a booking for a user on a property. No duplicate
// check happens at creation time; "already booked" is advisory only.
type BookRequest struct {
	UserID     string `json:"userId"     validate:"required"`
	PropertyID string `json:"propertyId" validate:"required"`
}

// ToData returns the document fields for the create operation. BookedAt
// is stamped with the client clock, not the server clock.
func (r BookRequest) ToData(bookedAt time.Time) map[string]any {
	return map[string]any{
		model.FieldUserID:     r.UserID,
		model.FieldPropertyID: r.PropertyID,
		model.FieldBookedAt:   bookedAt,
	}
}

// MyBookingsResponse carries the enriched bookings of a user plus the
// number of bookings dropped because their property fetch failed, so
// callers can surface partial-failure state instead of hiding it.
type MyBookingsResponse struct {
	Bookings    []model.EnrichedBooking `json:"bookings"`
	FailedJoins int                     `json:"failed_joins"`
}

// Enrich merges property display fields onto a booking.
func Enrich(booking model.Booking, property propertyModel.Property) model.EnrichedBooking {
	return model.EnrichedBooking{
		Booking: booking,
		Name:    property.Name,
		Address: property.Address,
		Image:   property.Image,
		Price:   property.Price,
	}
}
