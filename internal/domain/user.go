package domain

import "context"

// User is a platform account. Identity is passed around as a plain id; there
// is no authentication layer.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserRepository defines storage operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	// List returns users filtered by ids when ids is non-empty.
	List(ctx context.Context, ids []int64, page Page) ([]*User, error)
	Delete(ctx context.Context, id int64) error
}

// UserService defines admin user management.
type UserService interface {
	Create(ctx context.Context, name, email string) (*User, error)
	List(ctx context.Context, ids []int64, page Page) ([]*User, error)
	Delete(ctx context.Context, id int64) error
}
