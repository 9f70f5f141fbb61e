package repository

import (
	"context"
	"errors"

	"adminpanel/models"
)

// Sentinel errors shared by all repository backends.
var (
	// ErrNotFound is returned by Update/Delete when no record matches the id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a store-enforced unique constraint is hit.
	ErrDuplicate = errors.New("duplicate record")
)

// UserRepository defines the interface for user operations.
// Lookups return (nil, nil) when no record matches.
type UserRepository interface {
	List(ctx context.Context, q ListQuery) ([]*models.AppUser, int64, error)
	GetByID(ctx context.Context, id string) (*models.AppUser, error)
	GetByEmail(ctx context.Context, email string) (*models.AppUser, error)
	Create(ctx context.Context, user *models.AppUser) error
	Update(ctx context.Context, user *models.AppUser) error
	Delete(ctx context.Context, id string) error
}

// CategoryRepository defines the interface for category operations.
type CategoryRepository interface {
	List(ctx context.Context, q ListQuery) ([]*models.Category, int64, error)
	Active(ctx context.Context) ([]*models.CategoryOption, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
}

// ProductRepository defines the interface for product operations. List and
// GetByID resolve the referenced category's name onto the returned products.
type ProductRepository interface {
	List(ctx context.Context, q ListQuery) ([]*models.Product, int64, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}
