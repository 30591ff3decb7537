package appwrite

//go:generate go run go.uber.org/mock/mockgen -source=./databases.go -destination=./mocks/databases_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"restate/config"
	"restate/infras/otel"
	"restate/shared/constant"
	"restate/shared/dto"
)

// DocumentList is the ordered result of a list operation.
type DocumentList struct {
	Total     int               `json:"total"`
	Documents []json.RawMessage `json:"documents"`
}

// Databases is the document surface of the remote store. All operations
// run against the single configured database; collections are addressed
// by id.
type Databases interface {
	ListDocuments(ctx context.Context, collectionID string, queries []dto.Query) (DocumentList, error)
	GetDocument(ctx context.Context, collectionID, documentID string) (json.RawMessage, error)
	CreateDocument(ctx context.Context, collectionID, documentID string, data any) (json.RawMessage, error)
	DeleteDocument(ctx context.Context, collectionID, documentID string) error
}

type databasesImpl struct {
	client     *Client
	databaseID string
	otel       otel.Otel
}

func NewDatabases(client *Client, cfg *config.Config, otl otel.Otel) Databases {
	return &databasesImpl{
		client:     client,
		databaseID: cfg.Appwrite.DatabaseID,
		otel:       otl,
	}
}

func (d *databasesImpl) collectionPath(collectionID string) string {
	return fmt.Sprintf("/databases/%s/collections/%s/documents", url.PathEscape(d.databaseID), url.PathEscape(collectionID))
}

func (d *databasesImpl) ListDocuments(ctx context.Context, collectionID string, queries []dto.Query) (res DocumentList, err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".databases.ListDocuments")
	defer scope.End()
	defer scope.TraceIfError(err)

	encoded := dto.EncodeQueries(queries)

	scope.SetAttributes(map[string]any{
		constant.OtelCollectionAttributeKey: collectionID,
		constant.OtelQueryAttributeKey:      encoded,
	})

	params := url.Values{}
	for _, q := range encoded {
		params.Add("queries[]", q)
	}

	if err = d.client.call(ctx, http.MethodGet, d.collectionPath(collectionID), params, nil, &res); err != nil {
		return res, fmt.Errorf("failed to list documents: %w", err)
	}

	return res, nil
}

func (d *databasesImpl) GetDocument(ctx context.Context, collectionID, documentID string) (res json.RawMessage, err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".databases.GetDocument")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelCollectionAttributeKey, collectionID)

	path := d.collectionPath(collectionID) + "/" + url.PathEscape(documentID)

	if err = d.client.call(ctx, http.MethodGet, path, nil, nil, &res); err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return res, nil
}

func (d *databasesImpl) CreateDocument(ctx context.Context, collectionID, documentID string, data any) (res json.RawMessage, err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".databases.CreateDocument")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelCollectionAttributeKey, collectionID)

	body := map[string]any{
		"documentId": documentID,
		"data":       data,
	}

	if err = d.client.call(ctx, http.MethodPost, d.collectionPath(collectionID), nil, body, &res); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	return res, nil
}

func (d *databasesImpl) DeleteDocument(ctx context.Context, collectionID, documentID string) (err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".databases.DeleteDocument")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelCollectionAttributeKey, collectionID)

	path := d.collectionPath(collectionID) + "/" + url.PathEscape(documentID)

	if err = d.client.call(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return nil
}
