package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventlane/internal/domain"
)

type compilationRepository struct {
	DB *sql.DB
}

func NewCompilationRepository(db *sql.DB) domain.CompilationRepository {
	return &compilationRepository{
		DB: db,
	}
}

func (r *compilationRepository) Create(ctx context.Context, comp *domain.Compilation, eventIDs []int64) error {
	err := q(ctx, r.DB).QueryRowContext(ctx,
		`INSERT INTO compilations (pinned, title) VALUES ($1, $2) RETURNING id`,
		comp.Pinned, comp.Title,
	).Scan(&comp.ID)
	if err != nil {
		return err
	}
	return r.insertEvents(ctx, comp.ID, eventIDs)
}

func (r *compilationRepository) insertEvents(ctx context.Context, compID int64, eventIDs []int64) error {
	for _, eventID := range eventIDs {
		_, err := q(ctx, r.DB).ExecContext(ctx,
			`INSERT INTO compilation_events (compilation_id, event_id) VALUES ($1, $2)`,
			compID, eventID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *compilationRepository) GetByID(ctx context.Context, id int64) (*domain.Compilation, error) {
	comp := &domain.Compilation{}
	err := q(ctx, r.DB).QueryRowContext(ctx,
		`SELECT id, pinned, title FROM compilations WHERE id = $1`, id,
	).Scan(&comp.ID, &comp.Pinned, &comp.Title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	comp.Events, err = r.loadEvents(ctx, comp.ID)
	if err != nil {
		return nil, err
	}
	return comp, nil
}

func (r *compilationRepository) loadEvents(ctx context.Context, compID int64) ([]*domain.Event, error) {
	query := selectEvent + `
		JOIN compilation_events ce ON ce.event_id = e.id
		WHERE ce.compilation_id = $1
		ORDER BY e.id`
	rows, err := q(ctx, r.DB).QueryContext(ctx, query, compID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *compilationRepository) List(ctx context.Context, pinned *bool, page domain.Page) ([]*domain.Compilation, error) {
	query := `SELECT id, pinned, title FROM compilations`
	args := []any{}
	if pinned != nil {
		query += ` WHERE pinned = $1`
		args = append(args, *pinned)
	}
	if len(args) == 0 {
		query += ` ORDER BY id LIMIT $1 OFFSET $2`
	} else {
		query += ` ORDER BY id LIMIT $2 OFFSET $3`
	}
	args = append(args, page.Limit(), page.Offset())

	rows, err := q(ctx, r.DB).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	compilations := make([]*domain.Compilation, 0)
	for rows.Next() {
		comp := &domain.Compilation{}
		if err := rows.Scan(&comp.ID, &comp.Pinned, &comp.Title); err != nil {
			return nil, err
		}
		compilations = append(compilations, comp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, comp := range compilations {
		comp.Events, err = r.loadEvents(ctx, comp.ID)
		if err != nil {
			return nil, err
		}
	}
	return compilations, nil
}

func (r *compilationRepository) Update(ctx context.Context, comp *domain.Compilation) error {
	result, err := q(ctx, r.DB).ExecContext(ctx,
		`UPDATE compilations SET pinned = $1, title = $2 WHERE id = $3`,
		comp.Pinned, comp.Title, comp.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *compilationRepository) SetEvents(ctx context.Context, id int64, eventIDs []int64) error {
	_, err := q(ctx, r.DB).ExecContext(ctx,
		`DELETE FROM compilation_events WHERE compilation_id = $1`, id)
	if err != nil {
		return err
	}
	return r.insertEvents(ctx, id, eventIDs)
}

func (r *compilationRepository) Delete(ctx context.Context, id int64) error {
	result, err := q(ctx, r.DB).ExecContext(ctx, `DELETE FROM compilations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
