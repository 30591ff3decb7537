package dto

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
)

const (
	QueryMethodEqual     = "equal"
	QueryMethodSearch    = "search"
	QueryMethodOr        = "or"
	QueryMethodOrderAsc  = "orderAsc"
	QueryMethodOrderDesc = "orderDesc"
	QueryMethodLimit     = "limit"
)

// Query is a single composable predicate consumed by the remote store's
// list operation. On the wire it is a JSON object such as
// {"method":"equal","attribute":"type","values":["House"]}.
type Query struct {
	Method    string `json:"method"`
	Attribute string `json:"attribute,omitempty"`
	Values    []any  `json:"values,omitempty"`
}

// Equal matches documents whose attribute equals value.
func Equal(attribute string, value any) Query {
	return Query{Method: QueryMethodEqual, Attribute: attribute, Values: []any{value}}
}

// Search matches documents whose attribute matches the store's native
// full-text search for term. Not ranked, not tokenized beyond what the
// store provides.
func Search(attribute, term string) Query {
	return Query{Method: QueryMethodSearch, Attribute: attribute, Values: []any{term}}
}

// Or matches documents satisfying at least one of the nested queries.
func Or(queries ...Query) Query {
	values := make([]any, len(queries))
	for i, q := range queries {
		values[i] = q
	}

	return Query{Method: QueryMethodOr, Values: values}
}

// OrderAsc sorts results by attribute, ascending.
func OrderAsc(attribute string) Query {
	return Query{Method: QueryMethodOrderAsc, Attribute: attribute}
}

// OrderDesc sorts results by attribute, descending.
func OrderDesc(attribute string) Query {
	return Query{Method: QueryMethodOrderDesc, Attribute: attribute}
}

// Limit caps the number of returned documents.
func Limit(n int) Query {
	return Query{Method: QueryMethodLimit, Values: []any{n}}
}

// String returns the wire encoding of the predicate.
func (q Query) String() string {
	encoded, err := json.Marshal(q)
	if err != nil {
		log.Error().Err(err).Str("method", q.Method).Msg("failed to encode query predicate")

		return ""
	}

	return string(encoded)
}

// EncodeQueries returns the wire encoding of an ordered predicate list.
func EncodeQueries(queries []Query) []string {
	encoded := make([]string, len(queries))
	for i, q := range queries {
		encoded[i] = q.String()
	}

	return encoded
}
