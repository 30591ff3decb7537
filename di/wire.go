//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"restate/client"
	"restate/config"
	"restate/infras/appwrite"
	"restate/infras/browser"
	"restate/infras/otel"

	bookingRepository "restate/internal/domains/booking/repository"
	bookingService "restate/internal/domains/booking/service"
	propertyRepository "restate/internal/domains/property/repository"
	propertyService "restate/internal/domains/property/service"
	sessionService "restate/internal/domains/session/service"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	appwrite.NewClient,
	appwrite.NewAccount,
	appwrite.NewDatabases,
	appwrite.NewAvatars,
	appwrite.NewStorage,
	browser.New,
)

var sessionDomain = wire.NewSet(
	sessionService.New,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	sessionDomain,
	propertyDomain,
	bookingDomain,
)

func InitializeClient() *client.Client {
	wire.Build(
		configurations,
		infrastructures,
		domains,
		client.New,
	)

	return &client.Client{}
}
