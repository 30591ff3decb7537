package model

import "time"

// Metadata carries the system attributes the document store assigns to
// every document.
type Metadata struct {
	ID        string    `json:"$id"`
	CreatedAt time.Time `json:"$createdAt"`
	UpdatedAt time.Time `json:"$updatedAt"`
}
