package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"restate/config"
	"restate/di"
	propertyDto "restate/internal/domains/property/model/dto"
	"restate/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	action := flag.String("action", "latest", "one of: login, logout, me, latest, search, book, booked, bookings, cancel")
	filter := flag.String("filter", "All", "category filter for search")
	query := flag.String("query", "", "free-text query for search")
	limit := flag.Int("limit", 0, "result cap for search")
	userID := flag.String("user", "", "user id for booking actions")
	propertyID := flag.String("property", "", "property id for booking actions")
	bookingID := flag.String("booking", "", "booking id for cancel")
	flag.Parse()

	ctx := context.Background()
	app := di.InitializeClient()

	switch *action {
	case "login":
		log.Info().Bool("ok", app.Login(ctx)).Msg("login")
	case "logout":
		log.Info().Bool("ok", app.Logout(ctx)).Msg("logout")
	case "me":
		user := app.GetCurrentUser(ctx)
		if user == nil {
			log.Info().Msg("no active session")

			return
		}

		log.Info().Str("id", user.ID).Str("name", user.Name).Str("avatar", user.Avatar).Msg("current user")
	case "latest":
		for _, property := range app.GetLatestProperties(ctx) {
			log.Info().Str("id", property.ID).Str("name", property.Name).Float64("price", property.Price).Msg("property")
		}
	case "search":
		params := propertyDto.SearchParams{Filter: *filter, Query: *query, Limit: *limit}
		for _, property := range app.GetProperties(ctx, params) {
			log.Info().Str("id", property.ID).Str("name", property.Name).Str("type", property.Type).Msg("property")
		}
	case "book":
		booking := app.BookProperty(ctx, *userID, *propertyID)
		if booking == nil {
			log.Error().Msg("booking failed")

			return
		}

		log.Info().Str("id", booking.ID).Time("booked_at", booking.BookedAt).Msg("booked")
	case "booked":
		log.Info().Bool("booked", app.IsPropertyBooked(ctx, *userID, *propertyID)).Msg("booking check")
	case "bookings":
		result := app.GetMyBookings(ctx, *userID)
		for _, booking := range result.Bookings {
			log.Info().Str("id", booking.ID).Str("name", booking.Name).Float64("price", booking.Price).Msg("booking")
		}

		if result.FailedJoins > 0 {
			log.Warn().Int("failed_joins", result.FailedJoins).Msg("some bookings reference missing properties")
		}
	case "cancel":
		log.Info().Bool("ok", app.DeleteBooking(ctx, *bookingID)).Msg("cancel booking")
	default:
		flag.Usage()
		os.Exit(2)
	}
}
