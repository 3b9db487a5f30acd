package domain

import (
	"context"
	"time"
)

// EndpointHit is one recorded access to a tracked URI.
type EndpointHit struct {
	ID        int64
	App       string
	URI       string
	IP        string
	Timestamp time.Time
}

// ViewStats is the aggregated hit count for one app/uri pair.
type ViewStats struct {
	App  string `json:"app"`
	URI  string `json:"uri"`
	Hits int64  `json:"hits"`
}

// StatsClient is the capability the core consumes from the statistics
// service: record a hit, query aggregated counts for a set of URIs.
type StatsClient interface {
	RecordHit(ctx context.Context, hit EndpointHit) error
	GetStats(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]ViewStats, error)
}

// ViewCounter enriches events with view counts and emits analytics hits.
// Both operations are best-effort: stats failures degrade, never propagate.
type ViewCounter interface {
	// Hit records one access to uri from ip.
	Hit(ctx context.Context, uri, ip string)
	// UniqueViews returns the distinct-IP hit count for uri over
	// [event.CreatedOn, now]. Returns 0 when the stats backend fails.
	UniqueViews(ctx context.Context, event *Event, uri string) int64
}

// HitRepository is the stats service's own store.
type HitRepository interface {
	Create(ctx context.Context, hit *EndpointHit) error
	// Aggregate returns per-uri hit counts within [start, end], counting
	// distinct IPs when unique is set, ordered by hits descending.
	Aggregate(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]ViewStats, error)
}

// StatsService is the stats service's application layer.
type StatsService interface {
	Record(ctx context.Context, hit EndpointHit) error
	Get(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]ViewStats, error)
}

// Mailer sends plain-text mail. Implementations log and absorb their own
// transport details; callers treat sends as best-effort.
type Mailer interface {
	Send(to, subject, body string) error
}

// TxManager runs fn inside a single storage transaction. Repository calls made
// with the context passed to fn join that transaction.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
