package domain

import (
	"context"
	"time"
)

// Comment is a user remark on a published event.
type Comment struct {
	ID         int64
	Text       string
	EventID    int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}

// CommentRepository defines storage operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, id int64) (*Comment, error)
	ListByEvent(ctx context.Context, eventID int64, page Page) ([]*Comment, error)
	ListByAuthor(ctx context.Context, authorID int64, page Page) ([]*Comment, error)
	Delete(ctx context.Context, id int64) error
}

// CommentService defines comment operations. Authors may add comments to
// published events and remove their own; admins may remove any.
type CommentService interface {
	Add(ctx context.Context, userID, eventID int64, text string) (*Comment, error)
	DeleteByAuthor(ctx context.Context, userID, eventID, commentID int64) error
	DeleteByAdmin(ctx context.Context, commentID int64) error
	ListByEvent(ctx context.Context, eventID int64, page Page) ([]*Comment, error)
	ListByAuthor(ctx context.Context, authorID int64, page Page) ([]*Comment, error)
}
