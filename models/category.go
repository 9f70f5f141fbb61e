package models

import "time"

// Category groups products. Name is used as the display label and must be
// unique across the collection.
type Category struct {
	ID        string    `json:"id" bson:"_id,omitempty" db:"id"`
	Name      string    `json:"name" bson:"name" db:"name"`
	Status    string    `json:"status" bson:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at" db:"created_at"`
}

// Entity statuses shared by categories and products.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// CategoryOption is the lightweight shape returned for dropdown listings.
type CategoryOption struct {
	ID   string `json:"id" bson:"_id,omitempty" db:"id"`
	Name string `json:"name" bson:"name" db:"name"`
}
