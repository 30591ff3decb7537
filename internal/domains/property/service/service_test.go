package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"restate/config"
	"restate/infras/appwrite"
	"restate/infras/otel/mocks"
	propertyMocks "restate/internal/domains/property/mocks"
	"restate/internal/domains/property/model"
	"restate/internal/domains/property/model/dto"
	"restate/internal/domains/property/service"
	"restate/shared/failure"
	sharedModel "restate/shared/model"
)

func newStorage() *appwrite.Storage {
	cfg := &config.Config{}
	cfg.Appwrite.Endpoint = "https://cloud.example.com/v1"
	cfg.Appwrite.ProjectID = "proj"
	cfg.Appwrite.BucketID = "bucket-1"

	return appwrite.NewStorage(appwrite.NewClient(cfg), cfg)
}

func TestPropertyService_GetLatest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := propertyMocks.NewMockProperty(ctrl)

	properties := []model.Property{
		{Metadata: sharedModel.Metadata{ID: "prop-1"}, Name: "Lakeside Villa", Image: "https://cdn.example.com/villa.jpg"},
		{Metadata: sharedModel.Metadata{ID: "prop-2"}, Name: "City Loft", Image: "file-7"},
	}

	mockRepo.EXPECT().
		List(gomock.Any(), dto.LatestQueries()).
		Return(properties, nil)

	svc := service.New(mockRepo, newStorage(), mocks.NewOtel())

	res, err := svc.GetLatest(context.Background())
	assert.NoError(t, err)
	assert.Len(t, res, 2)

	// Absolute URLs pass through; bare file ids resolve to view URLs.
	assert.Equal(t, "https://cdn.example.com/villa.jpg", res[0].Image)
	assert.Equal(t, "https://cloud.example.com/v1/storage/buckets/bucket-1/files/file-7/view?project=proj", res[1].Image)
}

func TestPropertyService_GetLatest_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := propertyMocks.NewMockProperty(ctrl)

	mockRepo.EXPECT().
		List(gomock.Any(), dto.LatestQueries()).
		Return(nil, failure.Remote(503, "service unavailable"))

	svc := service.New(mockRepo, newStorage(), mocks.NewOtel())

	res, err := svc.GetLatest(context.Background())
	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestPropertyService_Search(t *testing.T) {
	tests := []struct {
		name      string
		params    dto.SearchParams
		setupMock func(repo *propertyMocks.MockProperty, params dto.SearchParams)
		wantLen   int
		wantErr   bool
	}{
		{
			name:   "successful search",
			params: dto.SearchParams{Filter: "House", Query: "lake", Limit: 10},
			setupMock: func(repo *propertyMocks.MockProperty, params dto.SearchParams) {
				repo.EXPECT().
					List(gomock.Any(), params.ToQueries()).
					Return([]model.Property{
						{Metadata: sharedModel.Metadata{ID: "prop-1"}, Name: "Lakeside House"},
					}, nil)
			},
			wantLen: 1,
		},
		{
			name:   "empty result",
			params: dto.SearchParams{Filter: "Condos"},
			setupMock: func(repo *propertyMocks.MockProperty, params dto.SearchParams) {
				repo.EXPECT().
					List(gomock.Any(), params.ToQueries()).
					Return([]model.Property{}, nil)
			},
			wantLen: 0,
		},
		{
			name:      "query too long fails validation",
			params:    dto.SearchParams{Query: strings.Repeat("x", 200)},
			setupMock: func(repo *propertyMocks.MockProperty, params dto.SearchParams) {},
			wantErr:   true,
		},
		{
			name:   "store failure",
			params: dto.SearchParams{Filter: "House"},
			setupMock: func(repo *propertyMocks.MockProperty, params dto.SearchParams) {
				repo.EXPECT().
					List(gomock.Any(), params.ToQueries()).
					Return(nil, failure.Remote(500, "general_unknown"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := propertyMocks.NewMockProperty(ctrl)
			tt.setupMock(mockRepo, tt.params)

			svc := service.New(mockRepo, newStorage(), mocks.NewOtel())

			res, err := svc.Search(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res, tt.wantLen)
		})
	}
}

func TestPropertyService_GetByID(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		setupMock   func(repo *propertyMocks.MockProperty)
		wantErr     bool
		wantNotFound bool
	}{
		{
			name: "existing property",
			id:   "prop-1",
			setupMock: func(repo *propertyMocks.MockProperty) {
				repo.EXPECT().
					Get(gomock.Any(), "prop-1").
					Return(model.Property{
						Metadata: sharedModel.Metadata{ID: "prop-1"},
						Name:     "Lakeside Villa",
						Agent:    &model.Agent{Name: "Agent Smith", Avatar: "file-avatar"},
						Gallery:  []model.GalleryImage{{Image: "file-g1"}},
					}, nil)
			},
		},
		{
			name: "missing property maps to not found",
			id:   "prop-404",
			setupMock: func(repo *propertyMocks.MockProperty) {
				repo.EXPECT().
					Get(gomock.Any(), "prop-404").
					Return(model.Property{}, failure.Remote(404, "document_not_found"))
			},
			wantErr:     true,
			wantNotFound: true,
		},
		{
			name:      "empty id rejected before the store is called",
			id:        "",
			setupMock: func(repo *propertyMocks.MockProperty) {},
			wantErr:   true,
		},
		{
			name: "store failure",
			id:   "prop-1",
			setupMock: func(repo *propertyMocks.MockProperty) {
				repo.EXPECT().
					Get(gomock.Any(), "prop-1").
					Return(model.Property{}, failure.Remote(500, "general_unknown"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := propertyMocks.NewMockProperty(ctrl)
			tt.setupMock(mockRepo)

			svc := service.New(mockRepo, newStorage(), mocks.NewOtel())

			res, err := svc.GetByID(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantNotFound {
					assert.True(t, failure.IsNotFound(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.id, res.ID)
			assert.Contains(t, res.Agent.Avatar, "/files/file-avatar/view")
			assert.Contains(t, res.Gallery[0].Image, "/files/file-g1/view")
		})
	}
}
