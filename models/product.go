package models

import "time"

// Product is a catalog entry. CategoryID is a weak reference to a Category;
// CategoryName is filled in at read time and never persisted. Deleting a
// category does not cascade, so a product may carry a dangling reference.
type Product struct {
	ID           string    `json:"id" bson:"_id,omitempty" db:"id"`
	Title        string    `json:"title" bson:"title" db:"title"`
	Description  string    `json:"description" bson:"description" db:"description"`
	Price        float64   `json:"price" bson:"price" db:"price"`
	Image        string    `json:"image,omitempty" bson:"image,omitempty" db:"image"`
	CategoryID   string    `json:"category" bson:"category_id" db:"category_id"`
	CategoryName string    `json:"categoryName,omitempty" bson:"-" db:"-"`
	Status       string    `json:"status" bson:"status" db:"status"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at" db:"created_at"`
}
