package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"restate/config"
	"restate/infras/appwrite"
	"restate/infras/otel"
	"restate/internal/domains/booking/model"
	gDto "restate/shared/dto"
	gRepo "restate/shared/repository"
)

type Booking interface {
	List(ctx context.Context, queries []gDto.Query) ([]model.Booking, error)
	Create(ctx context.Context, id string, data any) (model.Booking, error)
	Exist(ctx context.Context, queries []gDto.Query) (bool, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db appwrite.Databases, cfg *config.Config, otl otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, cfg.Appwrite.Collections.Bookings, db, otl),
	}
}
