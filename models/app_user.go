package models

import "time"

// AppUser is an account that can sign in to the admin panel.
// Password holds the bcrypt hash and is never serialized to JSON.
type AppUser struct {
	ID        string    `json:"id" bson:"_id,omitempty" db:"id"`
	Name      string    `json:"name" bson:"name" db:"name"`
	Email     string    `json:"email" bson:"email" db:"email"`
	Password  string    `json:"-" bson:"password" db:"password"`
	Role      string    `json:"role" bson:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at" db:"created_at"`
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
