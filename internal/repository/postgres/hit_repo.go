package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"eventlane/internal/domain"
)

type hitRepository struct {
	DB *sql.DB
}

func NewHitRepository(db *sql.DB) domain.HitRepository {
	return &hitRepository{
		DB: db,
	}
}

func (r *hitRepository) Create(ctx context.Context, hit *domain.EndpointHit) error {
	return q(ctx, r.DB).QueryRowContext(ctx,
		`INSERT INTO hits (app, uri, ip, created) VALUES ($1, $2, $3, $4) RETURNING id`,
		hit.App, hit.URI, hit.IP, hit.Timestamp,
	).Scan(&hit.ID)
}

func (r *hitRepository) Aggregate(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]domain.ViewStats, error) {
	counter := `COUNT(ip)`
	if unique {
		counter = `COUNT(DISTINCT ip)`
	}
	query := `SELECT app, uri, ` + counter + ` AS hits FROM hits WHERE created BETWEEN $1 AND $2`
	args := []any{start, end}
	if len(uris) > 0 {
		query += ` AND uri = ANY($3)`
		args = append(args, pq.Array(uris))
	}
	query += ` GROUP BY app, uri ORDER BY hits DESC`

	rows, err := q(ctx, r.DB).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	stats := make([]domain.ViewStats, 0)
	for rows.Next() {
		var s domain.ViewStats
		if err := rows.Scan(&s.App, &s.URI, &s.Hits); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
