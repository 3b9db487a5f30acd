package services

import (
	"context"
	"log/slog"
	"time"

	"eventlane/internal/domain"
)

type viewCounter struct {
	stats  domain.StatsClient
	app    string
	logger *slog.Logger
}

// NewViewCounter creates a ViewCounter backed by the statistics service.
// Every operation is best-effort: a failing stats backend degrades view
// counts to zero and drops hits instead of failing the caller.
func NewViewCounter(stats domain.StatsClient, app string, logger *slog.Logger) domain.ViewCounter {
	return &viewCounter{
		stats:  stats,
		app:    app,
		logger: logger,
	}
}

func (v *viewCounter) Hit(ctx context.Context, uri, ip string) {
	err := v.stats.RecordHit(ctx, domain.EndpointHit{
		App:       v.app,
		URI:       uri,
		IP:        ip,
		Timestamp: time.Now(),
	})
	if err != nil {
		v.logger.WarnContext(ctx, "failed to record hit", "uri", uri, "err", err)
	}
}

func (v *viewCounter) UniqueViews(ctx context.Context, event *domain.Event, uri string) int64 {
	stats, err := v.stats.GetStats(ctx, event.CreatedOn, time.Now(), []string{uri}, true)
	if err != nil {
		v.logger.WarnContext(ctx, "failed to fetch view stats", "uri", uri, "err", err)
		return 0
	}
	for _, s := range stats {
		if s.URI == uri {
			return s.Hits
		}
	}
	return 0
}
