package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"restate/infras/appwrite"
	"restate/infras/otel"
	"restate/shared/constant"
	"restate/shared/dto"
	"restate/shared/logger"
)

// Repository is a generic accessor for one collection of the remote
// document store. T is the document model; list and get results are
// decoded from the store's JSON documents into T.
type Repository[T any] struct {
	db         appwrite.Databases
	otel       otel.Otel
	collection string
	entity     string
}

func NewRepository[T any](entityName, collectionID string, db appwrite.Databases, otl otel.Otel) Repository[T] {
	return Repository[T]{
		db:         db,
		otel:       otl,
		collection: collectionID,
		entity:     entityName,
	}
}

// List returns the documents matching the ordered predicate list.
func (repo *Repository[T]) List(ctx context.Context, queries []dto.Query) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.List", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	result, err := repo.db.ListDocuments(ctx, repo.collection, queries)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list %s documents: %w", repo.entity, err)
	}

	models := make([]T, 0, len(result.Documents))

	for _, raw := range result.Documents {
		var model T
		if err := json.Unmarshal(raw, &model); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return nil, fmt.Errorf("failed to decode %s document: %w", repo.entity, err)
		}

		models = append(models, model)
	}

	return models, nil
}

// Get returns the single document with the given id.
func (repo *Repository[T]) Get(ctx context.Context, id string) (model T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := repo.db.GetDocument(ctx, repo.collection, id)
	if err != nil {
		return model, fmt.Errorf("failed to get %s document: %w", repo.entity, err)
	}

	if err = json.Unmarshal(raw, &model); err != nil {
		logger.ErrorWithStack(err)

		return model, fmt.Errorf("failed to decode %s document: %w", repo.entity, err)
	}

	return model, nil
}

// Create stores data as a new document under the given id and returns
// the stored document.
func (repo *Repository[T]) Create(ctx context.Context, id string, data any) (model T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Create", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := repo.db.CreateDocument(ctx, repo.collection, id, data)
	if err != nil {
		return model, fmt.Errorf("failed to create %s document: %w", repo.entity, err)
	}

	if err = json.Unmarshal(raw, &model); err != nil {
		logger.ErrorWithStack(err)

		return model, fmt.Errorf("failed to decode created %s document: %w", repo.entity, err)
	}

	return model, nil
}

// Delete removes the document with the given id.
func (repo *Repository[T]) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.db.DeleteDocument(ctx, repo.collection, id); err != nil {
		return fmt.Errorf("failed to delete %s document: %w", repo.entity, err)
	}

	return nil
}

// Exist reports whether at least one document matches the predicates.
func (repo *Repository[T]) Exist(ctx context.Context, queries []dto.Query) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	capped := append(append([]dto.Query{}, queries...), dto.Limit(1))

	result, err := repo.db.ListDocuments(ctx, repo.collection, capped)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check %s existence: %w", repo.entity, err)
	}

	return len(result.Documents) > 0, nil
}
