package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventlane/internal/domain"
)

type commentRepository struct {
	DB *sql.DB
}

func NewCommentRepository(db *sql.DB) domain.CommentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) error {
	return q(ctx, r.DB).QueryRowContext(ctx,
		`INSERT INTO comments (text, event_id, author_id, created)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		c.Text, c.EventID, c.AuthorID, c.Created,
	).Scan(&c.ID)
}

const selectComment = `SELECT c.id, c.text, c.event_id, c.author_id, u.name, c.created
	FROM comments c JOIN users u ON u.id = c.author_id`

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	c := &domain.Comment{}
	err := q(ctx, r.DB).QueryRowContext(ctx,
		selectComment+` WHERE c.id = $1`, id,
	).Scan(&c.ID, &c.Text, &c.EventID, &c.AuthorID, &c.AuthorName, &c.Created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *commentRepository) list(ctx context.Context, where string, args ...any) ([]*domain.Comment, error) {
	rows, err := q(ctx, r.DB).QueryContext(ctx, selectComment+" "+where, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		c := &domain.Comment{}
		if err := rows.Scan(&c.ID, &c.Text, &c.EventID, &c.AuthorID, &c.AuthorName, &c.Created); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *commentRepository) ListByEvent(ctx context.Context, eventID int64, page domain.Page) ([]*domain.Comment, error) {
	return r.list(ctx, `WHERE c.event_id = $1 ORDER BY c.created DESC LIMIT $2 OFFSET $3`,
		eventID, page.Limit(), page.Offset())
}

func (r *commentRepository) ListByAuthor(ctx context.Context, authorID int64, page domain.Page) ([]*domain.Comment, error) {
	return r.list(ctx, `WHERE c.author_id = $1 ORDER BY c.created DESC LIMIT $2 OFFSET $3`,
		authorID, page.Limit(), page.Offset())
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	result, err := q(ctx, r.DB).ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
