package controllers

import (
	"log/slog"
	"net"
	"net/http"

	"eventlane/internal/delivery/http/helpers"
	"eventlane/internal/domain"
)

// PublicEventController serves the unauthenticated event surface. Every read
// is reported to the statistics service under the caller's IP.
type PublicEventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewPublicEventController(logger *slog.Logger, svc domain.EventService) *PublicEventController {
	return &PublicEventController{
		Logger:  logger,
		Service: svc,
	}
}

// Search godoc
// @Summary Search published events
// @Description Full-text and attribute filtering over published events. When both rangeStart and rangeEnd are omitted, only upcoming events are returned. Every call is recorded as a view hit.
// @Tags events
// @Produce json
// @Param text query string false "Text to match against annotation and description"
// @Param categories query []int false "Category ids" collectionFormat(multi)
// @Param paid query bool false "Paid events only"
// @Param rangeStart query string false "Earliest event date (yyyy-MM-dd HH:mm:ss)"
// @Param rangeEnd query string false "Latest event date (yyyy-MM-dd HH:mm:ss)"
// @Param onlyAvailable query bool false "Events with free seats only" default(false)
// @Param sort query string false "EVENT_DATE or VIEWS"
// @Param from query int false "Result offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} controllers.EventShortDto
// @Failure 400 {object} helpers.ApiError
// @Router /events [get]
func (c *PublicEventController) Search(w http.ResponseWriter, r *http.Request) {
	filter, page, err := parseSearchParams(r, false)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	events, err := c.Service.Search(r.Context(), filter, page, r.URL.Path, clientIP(r))
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, toEventShortDtos(events))
}

// GetByID godoc
// @Summary Get a published event
// @Description Returns the full event view. Events that are not published are reported as not found. The read is recorded as a view hit.
// @Tags events
// @Produce json
// @Param eventId path int true "Event id"
// @Success 200 {object} controllers.EventFullDto
// @Failure 404 {object} helpers.ApiError
// @Router /events/{eventId} [get]
func (c *PublicEventController) GetByID(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.PathID(r, "eventId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	event, err := c.Service.GetPublishedByID(r.Context(), eventID, r.URL.Path, clientIP(r))
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, toEventFullDto(event))
}

// parseSearchParams reads the shared event filter parameters. The admin flag
// additionally enables the users and states filters.
func parseSearchParams(r *http.Request, admin bool) (domain.EventFilter, domain.Page, error) {
	var filter domain.EventFilter
	page, err := helpers.ParsePage(r)
	if err != nil {
		return filter, page, err
	}
	filter.Text = r.URL.Query().Get("text")
	if filter.Categories, err = helpers.QueryInt64List(r, "categories"); err != nil {
		return filter, page, err
	}
	if filter.Paid, err = helpers.QueryBool(r, "paid"); err != nil {
		return filter, page, err
	}
	if filter.RangeStart, err = helpers.QueryTime(r, "rangeStart"); err != nil {
		return filter, page, err
	}
	if filter.RangeEnd, err = helpers.QueryTime(r, "rangeEnd"); err != nil {
		return filter, page, err
	}
	if admin {
		if filter.Users, err = helpers.QueryInt64List(r, "users"); err != nil {
			return filter, page, err
		}
		for _, s := range r.URL.Query()["states"] {
			switch state := domain.EventState(s); state {
			case domain.StatePending, domain.StatePublished, domain.StateCanceled:
				filter.States = append(filter.States, state)
			default:
				return filter, page, domain.BadRequestf("unknown event state: %s", s)
			}
		}
		return filter, page, nil
	}
	available, err := helpers.QueryBool(r, "onlyAvailable")
	if err != nil {
		return filter, page, err
	}
	filter.OnlyAvailable = available != nil && *available
	switch sort := r.URL.Query().Get("sort"); sort {
	case "":
	case string(domain.SortEventDate), string(domain.SortViews):
		filter.Sort = domain.EventSort(sort)
	default:
		return filter, page, domain.BadRequestf("unknown sort: %s", sort)
	}
	return filter, page, nil
}

// clientIP returns the caller's address without the port.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
