package dto

import (
	"restate/internal/domains/property/model"
	"restate/shared/constant"
	gDto "restate/shared/dto"
)

// SearchParams are the user-supplied parameters of a property search.
// Filter is a category or the sentinel "All"; Query is matched against
// name, address and type; Limit of zero means no cap.
type SearchParams struct {
	Filter string `json:"filter" validate:"omitempty,max=64"`
	Query  string `json:"query"  validate:"omitempty,max=128"`
	Limit  int    `json:"limit"  validate:"omitempty,gte=1"`
}

// ToQueries builds the ordered predicate list for a search. The
// creation-time sort always comes first and is the only ordering key;
// ties on identical timestamps have undefined relative order.
func (p SearchParams) ToQueries() []gDto.Query {
	queries := []gDto.Query{gDto.OrderDesc(constant.FieldCreatedAt)}

	if p.Filter != "" && p.Filter != constant.FilterAll {
		queries = append(queries, gDto.Equal(model.FieldType, p.Filter))
	}

	if p.Query != "" {
		queries = append(queries, gDto.Or(
			gDto.Search(model.FieldName, p.Query),
			gDto.Search(model.FieldAddress, p.Query),
			gDto.Search(model.FieldType, p.Query),
		))
	}

	if p.Limit > 0 {
		queries = append(queries, gDto.Limit(p.Limit))
	}

	return queries
}

// LatestQueries builds the fixed predicate list of the latest-properties
// listing: ascending by creation time, capped at five.
func LatestQueries() []gDto.Query {
	return []gDto.Query{
		gDto.OrderAsc(constant.FieldCreatedAt),
		gDto.Limit(constant.LatestListingLimit),
	}
}
