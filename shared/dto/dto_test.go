package dto_test

import (
	"encoding/json"
	"restate/shared/constant"
	"restate/shared/dto"
	"restate/shared/model"
	"testing"
	"time"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		ID:        "doc-1",
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	if metadata.ID != "doc-1" {
		t.Errorf("expected ID to be 'doc-1', got %s", metadata.ID)
	}

	if metadata.CreatedAt != createdAt.Format(constant.DateFormat) {
		t.Errorf("expected CreatedAt to be %s, got %s", createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	}

	if metadata.UpdatedAt != updatedAt.Format(constant.DateFormat) {
		t.Errorf("expected UpdatedAt to be %s, got %s", updatedAt.Format(constant.DateFormat), metadata.UpdatedAt)
	}
}

func TestQuery_String(t *testing.T) {
	tests := []struct {
		name     string
		query    dto.Query
		expected string
	}{
		{
			name:     "equal",
			query:    dto.Equal("type", "House"),
			expected: `{"method":"equal","attribute":"type","values":["House"]}`,
		},
		{
			name:     "search",
			query:    dto.Search("name", "villa"),
			expected: `{"method":"search","attribute":"name","values":["villa"]}`,
		},
		{
			name:     "order ascending",
			query:    dto.OrderAsc("$createdAt"),
			expected: `{"method":"orderAsc","attribute":"$createdAt"}`,
		},
		{
			name:     "order descending",
			query:    dto.OrderDesc("$createdAt"),
			expected: `{"method":"orderDesc","attribute":"$createdAt"}`,
		},
		{
			name:     "limit",
			query:    dto.Limit(5),
			expected: `{"method":"limit","values":[5]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.String(); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestOr_NestsQueries(t *testing.T) {
	or := dto.Or(
		dto.Search("name", "villa"),
		dto.Search("address", "villa"),
		dto.Search("type", "villa"),
	)

	var decoded struct {
		Method string `json:"method"`
		Values []struct {
			Method    string `json:"method"`
			Attribute string `json:"attribute"`
			Values    []any  `json:"values"`
		} `json:"values"`
	}

	if err := json.Unmarshal([]byte(or.String()), &decoded); err != nil {
		t.Fatalf("failed to decode or query: %v", err)
	}

	if decoded.Method != dto.QueryMethodOr {
		t.Errorf("expected method to be or, got %s", decoded.Method)
	}

	if len(decoded.Values) != 3 {
		t.Fatalf("expected 3 nested queries, got %d", len(decoded.Values))
	}

	attributes := []string{"name", "address", "type"}
	for i, nested := range decoded.Values {
		if nested.Method != dto.QueryMethodSearch {
			t.Errorf("expected nested method to be search, got %s", nested.Method)
		}

		if nested.Attribute != attributes[i] {
			t.Errorf("expected nested attribute %s, got %s", attributes[i], nested.Attribute)
		}
	}
}

func TestEncodeQueries_PreservesOrder(t *testing.T) {
	queries := []dto.Query{
		dto.OrderDesc("$createdAt"),
		dto.Equal("type", "Apartment"),
		dto.Limit(10),
	}

	encoded := dto.EncodeQueries(queries)
	if len(encoded) != 3 {
		t.Fatalf("expected 3 encoded queries, got %d", len(encoded))
	}

	if encoded[0] != queries[0].String() || encoded[2] != queries[2].String() {
		t.Error("expected encoding to preserve predicate order")
	}
}
