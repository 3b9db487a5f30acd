package controllers

import (
	"fmt"
	"log/slog"
	"net/http"

	"eventlane/internal/delivery/http/helpers"
	"eventlane/internal/domain"
)

// EndpointHitDto is the request body for POST /hit on the statistics service.
type EndpointHitDto struct {
	App       string `json:"app"`
	URI       string `json:"uri"`
	IP        string `json:"ip"`
	Timestamp string `json:"timestamp"`
}

// Validate implements Validator.
func (e EndpointHitDto) Validate() []string {
	var errs []string
	if e.App == "" {
		errs = append(errs, "app is required")
	}
	if e.URI == "" {
		errs = append(errs, "uri is required")
	}
	if e.IP == "" {
		errs = append(errs, "ip is required")
	}
	if e.Timestamp == "" {
		errs = append(errs, "timestamp is required")
	} else if _, err := domain.ParseDateTime(e.Timestamp); err != nil {
		errs = append(errs, fmt.Sprintf("timestamp must match the %s format", domain.DateTimeLayout))
	}
	return errs
}

// StatsController serves the statistics service endpoints.
type StatsController struct {
	Logger  *slog.Logger
	Service domain.StatsService
}

func NewStatsController(logger *slog.Logger, svc domain.StatsService) *StatsController {
	return &StatsController{
		Logger:  logger,
		Service: svc,
	}
}

// Hit godoc
// @Summary Record an endpoint access
// @Tags stats
// @Accept json
// @Param body body EndpointHitDto true "Hit data"
// @Success 201
// @Failure 400 {object} helpers.ApiError
// @Router /hit [post]
func (c *StatsController) Hit(w http.ResponseWriter, r *http.Request) {
	var req EndpointHitDto
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	timestamp, _ := domain.ParseDateTime(req.Timestamp)
	err := c.Service.Record(r.Context(), domain.EndpointHit{
		App:       req.App,
		URI:       req.URI,
		IP:        req.IP,
		Timestamp: timestamp,
	})
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// GetStats godoc
// @Summary Aggregated hit counts
// @Description Per app/uri hit counts within [start, end], ordered by hits descending. With unique set, each IP counts once per uri.
// @Tags stats
// @Produce json
// @Param start query string true "Range start (yyyy-MM-dd HH:mm:ss)"
// @Param end query string true "Range end (yyyy-MM-dd HH:mm:ss)"
// @Param uris query []string false "URIs to include" collectionFormat(multi)
// @Param unique query bool false "Count distinct IPs" default(false)
// @Success 200 {array} domain.ViewStats
// @Failure 400 {object} helpers.ApiError
// @Router /stats [get]
func (c *StatsController) GetStats(w http.ResponseWriter, r *http.Request) {
	start, err := helpers.QueryTime(r, "start")
	if err == nil && start == nil {
		err = domain.BadRequestf("start is required")
	}
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	end, err := helpers.QueryTime(r, "end")
	if err == nil && end == nil {
		err = domain.BadRequestf("end is required")
	}
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	unique, err := helpers.QueryBool(r, "unique")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	stats, err := c.Service.Get(r.Context(), *start, *end, r.URL.Query()["uris"], unique != nil && *unique)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, stats)
}
