package model

import (
	"restate/shared/model"
)

const (
	EntityName = "property"

	FieldName    = "name"
	FieldAddress = "address"
	FieldType    = "type"
)

// Agent is the listing agent relation embedded in a property document.
type Agent struct {
	model.Metadata
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// Review is a property review relation embedded in a property document.
type Review struct {
	model.Metadata
	Name   string  `json:"name"`
	Avatar string  `json:"avatar"`
	Review string  `json:"review"`
	Rating float64 `json:"rating"`
}

// GalleryImage is one gallery entry embedded in a property document.
type GalleryImage struct {
	model.Metadata
	Image string `json:"image"`
}

// Property is a listing record. Owned by the remote store; this client
// only reads. Relations are expanded by the store on document reads.
type Property struct {
	model.Metadata
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Image       string   `json:"image"`
	Geolocation string   `json:"geolocation"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Area        float64  `json:"area"`
	Facilities  []string `json:"facilities"`

	Agent   *Agent         `json:"agent,omitempty"`
	Gallery []GalleryImage `json:"gallery,omitempty"`
	Reviews []Review       `json:"reviews,omitempty"`
}
