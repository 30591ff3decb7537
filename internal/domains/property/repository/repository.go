package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"restate/config"
	"restate/infras/appwrite"
	"restate/infras/otel"
	"restate/internal/domains/property/model"
	gDto "restate/shared/dto"
	gRepo "restate/shared/repository"
)

type Property interface {
	List(ctx context.Context, queries []gDto.Query) ([]model.Property, error)
	Get(ctx context.Context, id string) (model.Property, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Property]
}

func New(db appwrite.Databases, cfg *config.Config, otl otel.Otel) Property {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Property](model.EntityName, cfg.Appwrite.Collections.Properties, db, otl),
	}
}
