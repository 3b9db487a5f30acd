package domain

import "context"

// Compilation is a curated, possibly pinned grouping of events.
type Compilation struct {
	ID     int64
	Pinned bool
	Title  string
	Events []*Event
}

// CompilationPatch is a partial compilation update. Nil fields are unchanged.
type CompilationPatch struct {
	Title  *string
	Pinned *bool
	Events []int64
}

// CompilationRepository defines storage operations for compilations. Events
// are stored as a join table and loaded as full event rows.
type CompilationRepository interface {
	Create(ctx context.Context, compilation *Compilation, eventIDs []int64) error
	GetByID(ctx context.Context, id int64) (*Compilation, error)
	List(ctx context.Context, pinned *bool, page Page) ([]*Compilation, error)
	Update(ctx context.Context, compilation *Compilation) error
	SetEvents(ctx context.Context, id int64, eventIDs []int64) error
	Delete(ctx context.Context, id int64) error
}

// CompilationService defines compilation CRUD for the admin and public surfaces.
type CompilationService interface {
	Create(ctx context.Context, title string, pinned bool, eventIDs []int64) (*Compilation, error)
	Update(ctx context.Context, id int64, patch CompilationPatch) (*Compilation, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, pinned *bool, page Page) ([]*Compilation, error)
	GetByID(ctx context.Context, id int64) (*Compilation, error)
}
