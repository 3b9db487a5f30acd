package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventlane/internal/domain"
)

const uniqueViolation = "23505"

type requestRepository struct {
	DB *sql.DB
}

func NewRequestRepository(db *sql.DB) domain.RequestRepository {
	return &requestRepository{
		DB: db,
	}
}

func (r *requestRepository) Create(ctx context.Context, req *domain.ParticipationRequest) error {
	query := `
		INSERT INTO requests (created, event_id, requester_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := q(ctx, r.DB).QueryRowContext(ctx, query,
		req.Created, req.EventID, req.RequesterID, string(req.Status),
	).Scan(&req.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateRequest
		}
		return err
	}
	return nil
}

func (r *requestRepository) GetByID(ctx context.Context, id int64) (*domain.ParticipationRequest, error) {
	query := `
		SELECT id, created, event_id, requester_id, status
		FROM requests
		WHERE id = $1
	`
	req := &domain.ParticipationRequest{}
	err := q(ctx, r.DB).QueryRowContext(ctx, query, id).
		Scan(&req.ID, &req.Created, &req.EventID, &req.RequesterID, &req.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *requestRepository) list(ctx context.Context, where string, args ...any) ([]*domain.ParticipationRequest, error) {
	query := `
		SELECT id, created, event_id, requester_id, status
		FROM requests
	` + where + ` ORDER BY id`
	rows, err := q(ctx, r.DB).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	reqs := make([]*domain.ParticipationRequest, 0)
	for rows.Next() {
		req := &domain.ParticipationRequest{}
		if err := rows.Scan(&req.ID, &req.Created, &req.EventID, &req.RequesterID, &req.Status); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

func (r *requestRepository) ListByRequester(ctx context.Context, requesterID int64) ([]*domain.ParticipationRequest, error) {
	return r.list(ctx, `WHERE requester_id = $1`, requesterID)
}

func (r *requestRepository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.ParticipationRequest, error) {
	return r.list(ctx, `WHERE event_id = $1`, eventID)
}

func (r *requestRepository) ListByEventAndStatus(ctx context.Context, eventID int64, status domain.RequestStatus) ([]*domain.ParticipationRequest, error) {
	return r.list(ctx, `WHERE event_id = $1 AND status = $2`, eventID, string(status))
}

func (r *requestRepository) CountByEventAndStatus(ctx context.Context, eventID int64, status domain.RequestStatus) (int64, error) {
	var count int64
	err := q(ctx, r.DB).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM requests WHERE event_id = $1 AND status = $2`,
		eventID, string(status),
	).Scan(&count)
	return count, err
}

func (r *requestRepository) UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus) error {
	result, err := q(ctx, r.DB).ExecContext(ctx,
		`UPDATE requests SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
