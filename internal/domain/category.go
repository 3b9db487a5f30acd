package domain

import "context"

// Category is a reference entity events are tagged with.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryRepository defines storage operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id int64) (*Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page Page) ([]*Category, error)
}

// CategoryService defines category CRUD. Deleting a category that still has
// events attached is a conflict.
type CategoryService interface {
	Create(ctx context.Context, name string) (*Category, error)
	Update(ctx context.Context, id int64, name string) (*Category, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page Page) ([]*Category, error)
	GetByID(ctx context.Context, id int64) (*Category, error)
}
