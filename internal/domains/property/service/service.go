package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"restate/infras/appwrite"
	"restate/infras/otel"
	"restate/internal/domains/property/model"
	"restate/internal/domains/property/model/dto"
	"restate/internal/domains/property/repository"
	"restate/shared/constant"
	"restate/shared/failure"
	"restate/shared/validator"
)

type Property interface {
	GetLatest(ctx context.Context) ([]model.Property, error)
	Search(ctx context.Context, params dto.SearchParams) ([]model.Property, error)
	GetByID(ctx context.Context, id string) (model.Property, error)
}

type serviceImpl struct {
	repo    repository.Property
	storage *appwrite.Storage
	otel    otel.Otel
}

func New(repo repository.Property, storage *appwrite.Storage, otl otel.Otel) Property {
	return &serviceImpl{
		repo:    repo,
		storage: storage,
		otel:    otl,
	}
}

// resolveImages expands bare file-id image references into view URLs on
// the property and its embedded relations.
func (s *serviceImpl) resolveImages(property *model.Property) {
	property.Image = s.storage.ResolveURL(property.Image)

	if property.Agent != nil {
		property.Agent.Avatar = s.storage.ResolveURL(property.Agent.Avatar)
	}

	for i := range property.Gallery {
		property.Gallery[i].Image = s.storage.ResolveURL(property.Gallery[i].Image)
	}

	for i := range property.Reviews {
		property.Reviews[i].Avatar = s.storage.ResolveURL(property.Reviews[i].Avatar)
	}
}

func (s *serviceImpl) GetLatest(ctx context.Context) (res []model.Property, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".property.GetLatest")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.List(ctx, dto.LatestQueries())
	if err != nil {
		log.Error().Err(err).Msg("failed to get latest properties")

		return nil, fmt.Errorf("failed to get latest properties: %w", err)
	}

	for i := range res {
		s.resolveImages(&res[i])
	}

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, params dto.SearchParams) (res []model.Property, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".property.Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&params); err != nil {
		log.Error().Err(err).Msg("invalid search parameters")

		return nil, err //nolint:wrapcheck
	}

	res, err = s.repo.List(ctx, params.ToQueries())
	if err != nil {
		log.Error().Err(err).Str("filter", params.Filter).Str("query", params.Query).Msg("failed to search properties")

		return nil, fmt.Errorf("failed to search properties: %w", err)
	}

	for i := range res {
		s.resolveImages(&res[i])
	}

	return res, nil
}

func (s *serviceImpl) GetByID(ctx context.Context, id string) (res model.Property, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".property.GetByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	if id == constant.Empty {
		return res, failure.BadRequestFromString("property id is required") //nolint:wrapcheck
	}

	res, err = s.repo.Get(ctx, id)
	if err != nil {
		if failure.IsNotFound(err) {
			log.Warn().Str("property_id", id).Msg("property not found")

			return res, failure.NotFound("property not found") //nolint:wrapcheck
		}

		log.Error().Err(err).Str("property_id", id).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	s.resolveImages(&res)

	return res, nil
}
