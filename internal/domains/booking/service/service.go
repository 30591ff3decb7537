package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"restate/infras/otel"
	"restate/internal/domains/booking/model"
	"restate/internal/domains/booking/model/dto"
	"restate/internal/domains/booking/repository"
	propertyRepo "restate/internal/domains/property/repository"
	"restate/shared/constant"
	gDto "restate/shared/dto"
	"restate/shared/failure"
	"restate/shared/timezone"
	"restate/shared/validator"
)

type Booking interface {
	Book(ctx context.Context, req dto.BookRequest) (model.Booking, error)
	IsBooked(ctx context.Context, userID, propertyID string) (bool, error)
	MyBookings(ctx context.Context, userID string) (dto.MyBookingsResponse, error)
	Delete(ctx context.Context, bookingID string) error
}

type serviceImpl struct {
	repo         repository.Booking
	propertyRepo propertyRepo.Property
	otel         otel.Otel
}

func New(repo repository.Booking, propertyRepo propertyRepo.Property, otl otel.Otel) Booking {
	return &serviceImpl{
		repo:         repo,
		propertyRepo: propertyRepo,
		otel:         otl,
	}
}

func pairQueries(userID, propertyID string) []gDto.Query {
	return []gDto.Query{
		gDto.Equal(model.FieldUserID, userID),
		gDto.Equal(model.FieldPropertyID, propertyID),
	}
}

func (s *serviceImpl) Book(ctx context.Context, req dto.BookRequest) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Book")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		log.Error().Err(err).Msg("invalid book request")

		return res, err //nolint:wrapcheck
	}

	res, err = s.repo.Create(ctx, uuid.NewString(), req.ToData(timezone.Now()))
	if err != nil {
		log.Error().Err(err).Str("user_id", req.UserID).Str("property_id", req.PropertyID).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) IsBooked(ctx context.Context, userID, propertyID string) (res bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.IsBooked")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Exist(ctx, pairQueries(userID, propertyID))
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Str("property_id", propertyID).Msg("failed to check booking")

		return false, fmt.Errorf("failed to check booking: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) MyBookings(ctx context.Context, userID string) (res dto.MyBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.MyBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	if userID == constant.Empty {
		return res, failure.BadRequestFromString("user id is required") //nolint:wrapcheck
	}

	bookings, err := s.repo.List(ctx, []gDto.Query{gDto.Equal(model.FieldUserID, userID)})
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to list bookings")

		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	// Property lookups fan out concurrently; a failed join drops that
	// single booking, never the whole listing, and siblings are not
	// cancelled.
	enriched := make([]model.EnrichedBooking, len(bookings))
	joined := make([]bool, len(bookings))

	var wg sync.WaitGroup

	for i, booking := range bookings {
		wg.Add(1)

		go func(i int, booking model.Booking) {
			defer wg.Done()

			property, propErr := s.propertyRepo.Get(ctx, booking.PropertyID)
			if propErr != nil {
				log.Error().Err(propErr).
					Str("booking_id", booking.ID).
					Str("property_id", booking.PropertyID).
					Msg("failed to fetch property details for booking")

				return
			}

			enriched[i] = dto.Enrich(booking, property)
			joined[i] = true
		}(i, booking)
	}

	wg.Wait()

	res.Bookings = make([]model.EnrichedBooking, 0, len(bookings))

	for i := range bookings {
		if joined[i] {
			res.Bookings = append(res.Bookings, enriched[i])
		} else {
			res.FailedJoins++
		}
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if bookingID == constant.Empty {
		return failure.BadRequestFromString("booking id is required") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, bookingID); err != nil {
		log.Error().Err(err).
			Str("booking_id", bookingID).
			Int("code", failure.GetCode(err)).
			Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	return nil
}
