package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"eventlane/internal/domain"
)

const selectEvent = `
	SELECT e.id, e.annotation, e.confirmed_requests, e.created_on, e.description,
	       e.event_date, e.lat, e.lon, e.paid, e.participant_limit, e.published_on,
	       e.request_moderation, e.state, e.title, e.views,
	       c.id, c.name, u.id, u.name, u.email
	FROM events e
	JOIN categories c ON c.id = e.category_id
	JOIN users u ON u.id = e.initiator_id
`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var publishedNull sql.NullTime
	err := row.Scan(
		&e.ID, &e.Annotation, &e.ConfirmedRequests, &e.CreatedOn, &e.Description,
		&e.EventDate, &e.Location.Lat, &e.Location.Lon, &e.Paid, &e.ParticipantLimit, &publishedNull,
		&e.RequestModeration, &e.State, &e.Title, &e.Views,
		&e.Category.ID, &e.Category.Name, &e.Initiator.ID, &e.Initiator.Name, &e.Initiator.Email,
	)
	if err != nil {
		return nil, err
	}
	if publishedNull.Valid {
		e.PublishedOn = &publishedNull.Time
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (annotation, category_id, confirmed_requests, created_on, description,
		                    event_date, initiator_id, lat, lon, paid, participant_limit,
		                    request_moderation, state, title, views)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`
	return q(ctx, r.DB).QueryRowContext(ctx, query,
		e.Annotation, e.Category.ID, e.ConfirmedRequests, e.CreatedOn, e.Description,
		e.EventDate, e.Initiator.ID, e.Location.Lat, e.Location.Lon, e.Paid, e.ParticipantLimit,
		e.RequestModeration, string(e.State), e.Title, e.Views,
	).Scan(&e.ID)
}

func (r *eventRepository) getOne(ctx context.Context, where string, args ...any) (*domain.Event, error) {
	e, err := scanEvent(q(ctx, r.DB).QueryRowContext(ctx, selectEvent+where, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	return r.getOne(ctx, `WHERE e.id = $1`, id)
}

func (r *eventRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Event, error) {
	return r.getOne(ctx, `WHERE e.id = $1 FOR UPDATE OF e`, id)
}

func (r *eventRepository) GetByIDAndInitiator(ctx context.Context, eventID, initiatorID int64) (*domain.Event, error) {
	return r.getOne(ctx, `WHERE e.id = $1 AND e.initiator_id = $2`, eventID, initiatorID)
}

func (r *eventRepository) list(ctx context.Context, tail string, args ...any) ([]*domain.Event, error) {
	rows, err := q(ctx, r.DB).QueryContext(ctx, selectEvent+tail, args...)
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

func (r *eventRepository) ListByInitiator(ctx context.Context, initiatorID int64, page domain.Page) ([]*domain.Event, error) {
	tail := `WHERE e.initiator_id = $1 ORDER BY e.id LIMIT $2 OFFSET $3`
	return r.list(ctx, tail, initiatorID, page.Limit(), page.Offset())
}

func (r *eventRepository) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Event, error) {
	if len(ids) == 0 {
		return []*domain.Event{}, nil
	}
	return r.list(ctx, `WHERE e.id = ANY($1) ORDER BY e.id`, pq.Array(ids))
}

// Search assembles a conjunctive WHERE clause from the present filter fields.
// Ordering is by event date unless the filter asks for views; both ascending.
func (r *eventRepository) Search(ctx context.Context, filter domain.EventFilter, page domain.Page) ([]*domain.Event, error) {
	clauses := []string{}
	args := []any{}
	n := 1

	if filter.Text != "" {
		clauses = append(clauses, fmt.Sprintf("(e.annotation ILIKE $%d OR e.description ILIKE $%d)", n, n))
		args = append(args, "%"+filter.Text+"%")
		n++
	}
	if len(filter.Categories) > 0 {
		clauses = append(clauses, fmt.Sprintf("e.category_id = ANY($%d)", n))
		args = append(args, pq.Array(filter.Categories))
		n++
	}
	if filter.Paid != nil {
		clauses = append(clauses, fmt.Sprintf("e.paid = $%d", n))
		args = append(args, *filter.Paid)
		n++
	}
	if filter.RangeStart != nil {
		clauses = append(clauses, fmt.Sprintf("e.event_date >= $%d", n))
		args = append(args, *filter.RangeStart)
		n++
	}
	if filter.RangeEnd != nil {
		clauses = append(clauses, fmt.Sprintf("e.event_date <= $%d", n))
		args = append(args, *filter.RangeEnd)
		n++
	}
	if filter.OnlyAvailable {
		clauses = append(clauses, "(e.participant_limit = 0 OR e.confirmed_requests < e.participant_limit)")
	}
	if len(filter.Users) > 0 {
		clauses = append(clauses, fmt.Sprintf("e.initiator_id = ANY($%d)", n))
		args = append(args, pq.Array(filter.Users))
		n++
	}
	if len(filter.States) > 0 {
		states := make([]string, len(filter.States))
		for i, s := range filter.States {
			states[i] = string(s)
		}
		clauses = append(clauses, fmt.Sprintf("e.state = ANY($%d)", n))
		args = append(args, pq.Array(states))
		n++
	}

	where := ""
	if len(clauses) > 0 {
		where = "WHERE " + strings.Join(clauses, " AND ")
	}

	orderBy := "e.event_date"
	if filter.Sort == domain.SortViews {
		orderBy = "e.views"
	}

	tail := fmt.Sprintf("%s ORDER BY %s LIMIT $%d OFFSET $%d", where, orderBy, n, n+1)
	args = append(args, page.Limit(), page.Offset())

	return r.list(ctx, tail, args...)
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET annotation = $1, category_id = $2, confirmed_requests = $3, description = $4,
		    event_date = $5, lat = $6, lon = $7, paid = $8, participant_limit = $9,
		    published_on = $10, request_moderation = $11, state = $12, title = $13, views = $14
		WHERE id = $15
	`
	var published sql.NullTime
	if e.PublishedOn != nil {
		published = sql.NullTime{Time: *e.PublishedOn, Valid: true}
	}
	result, err := q(ctx, r.DB).ExecContext(ctx, query,
		e.Annotation, e.Category.ID, e.ConfirmedRequests, e.Description,
		e.EventDate, e.Location.Lat, e.Location.Lon, e.Paid, e.ParticipantLimit,
		published, e.RequestModeration, string(e.State), e.Title, e.Views,
		e.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) UpdateViews(ctx context.Context, id, views int64) error {
	result, err := q(ctx, r.DB).ExecContext(ctx, `UPDATE events SET views = $1 WHERE id = $2`, views, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	err := q(ctx, r.DB).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM events WHERE category_id = $1`, categoryID,
	).Scan(&count)
	return count, err
}
