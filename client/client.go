// Package client is the public boundary of the data-access layer. Every
// operation is total: failures are logged and collapsed to false, nil or
// an empty result, matching what a retry-driven mobile UI can act on.
// Callers that need to distinguish "no data" from "error" should use the
// domain services directly.
package client

import (
	"context"

	"github.com/rs/zerolog/log"

	"restate/infras/otel"
	bookingModel "restate/internal/domains/booking/model"
	bookingDto "restate/internal/domains/booking/model/dto"
	bookingService "restate/internal/domains/booking/service"
	propertyModel "restate/internal/domains/property/model"
	propertyDto "restate/internal/domains/property/model/dto"
	propertyService "restate/internal/domains/property/service"
	sessionModel "restate/internal/domains/session/model"
	sessionService "restate/internal/domains/session/service"
	"restate/shared/constant"
)

type Client struct {
	session  sessionService.Session
	property propertyService.Property
	booking  bookingService.Booking
	otel     otel.Otel
}

func New(session sessionService.Session, property propertyService.Property, booking bookingService.Booking, otl otel.Otel) *Client {
	return &Client{
		session:  session,
		property: property,
		booking:  booking,
		otel:     otl,
	}
}

// Login runs the OAuth2 redirect handshake. False on any failure,
// including a user-abandoned browser flow.
func (c *Client) Login(ctx context.Context) bool {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".Login")
	defer scope.End()

	if err := c.session.Login(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("login failed")

		return false
	}

	return true
}

// Logout deletes the active session. False on any failure.
func (c *Client) Logout(ctx context.Context) bool {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".Logout")
	defer scope.End()

	if err := c.session.Logout(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("logout failed")

		return false
	}

	return true
}

// GetCurrentUser resolves the identity of the active session. Nil on
// absence or error.
func (c *Client) GetCurrentUser(ctx context.Context) *sessionModel.User {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".GetCurrentUser")
	defer scope.End()

	user, err := c.session.CurrentUser(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to get current user")

		return nil
	}

	return &user
}

// GetLatestProperties returns the fixed five-item latest listing. Empty
// on any failure.
func (c *Client) GetLatestProperties(ctx context.Context) []propertyModel.Property {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".GetLatestProperties")
	defer scope.End()

	properties, err := c.property.GetLatest(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get latest properties")

		return []propertyModel.Property{}
	}

	return properties
}

// GetProperties searches the listing with the given parameters. Empty on
// any failure.
func (c *Client) GetProperties(ctx context.Context, params propertyDto.SearchParams) []propertyModel.Property {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".GetProperties")
	defer scope.End()

	properties, err := c.property.Search(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get properties")

		return []propertyModel.Property{}
	}

	return properties
}

// GetPropertyByID fetches a single property. Nil on not-found or error.
func (c *Client) GetPropertyByID(ctx context.Context, id string) *propertyModel.Property {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".GetPropertyByID")
	defer scope.End()

	property, err := c.property.GetByID(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("property_id", id).Msg("failed to get property")

		return nil
	}

	return &property
}

// BookProperty creates a booking. Nil on failure. Duplicate bookings for
// the same pair are possible; call IsPropertyBooked first if duplicate
// prevention is desired.
func (c *Client) BookProperty(ctx context.Context, userID, propertyID string) *bookingModel.Booking {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".BookProperty")
	defer scope.End()

	booking, err := c.booking.Book(ctx, bookingDto.BookRequest{UserID: userID, PropertyID: propertyID})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("user_id", userID).Str("property_id", propertyID).Msg("booking failed")

		return nil
	}

	return &booking
}

// IsPropertyBooked reports whether at least one booking matches both
// ids. Advisory only; no atomicity against a subsequent BookProperty.
func (c *Client) IsPropertyBooked(ctx context.Context, userID, propertyID string) bool {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".IsPropertyBooked")
	defer scope.End()

	booked, err := c.booking.IsBooked(ctx, userID, propertyID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("user_id", userID).Str("property_id", propertyID).Msg("booking check failed")

		return false
	}

	return booked
}

// GetMyBookings lists the user's bookings enriched with property display
// fields. Bookings whose property fetch failed are dropped and counted
// in FailedJoins. Empty response on any failure.
func (c *Client) GetMyBookings(ctx context.Context, userID string) bookingDto.MyBookingsResponse {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".GetMyBookings")
	defer scope.End()

	bookings, err := c.booking.MyBookings(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get bookings")

		return bookingDto.MyBookingsResponse{Bookings: []bookingModel.EnrichedBooking{}}
	}

	return bookings
}

// DeleteBooking deletes a booking by id. False on failure.
func (c *Client) DeleteBooking(ctx context.Context, bookingID string) bool {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelClientScopeName, constant.OtelClientScopeName+".DeleteBooking")
	defer scope.End()

	if err := c.booking.Delete(ctx, bookingID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", bookingID).Msg("delete booking failed")

		return false
	}

	return true
}
