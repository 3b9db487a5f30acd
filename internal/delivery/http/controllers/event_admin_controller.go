package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"eventlane/internal/delivery/http/helpers"
	"eventlane/internal/domain"
)

// EventPatchDto carries the optional event fields shared by the admin and
// initiator edit bodies. Omitted fields are left unchanged.
type EventPatchDto struct {
	Annotation        *string          `json:"annotation"`
	Category          *int64           `json:"category"`
	Description       *string          `json:"description"`
	EventDate         *string          `json:"eventDate"`
	Location          *domain.Location `json:"location"`
	Paid              *bool            `json:"paid"`
	ParticipantLimit  *int64           `json:"participantLimit"`
	RequestModeration *bool            `json:"requestModeration"`
	Title             *string          `json:"title"`
}

// Validate implements Validator. Bounds mirror the create body; only present
// fields are checked.
func (p EventPatchDto) Validate() []string {
	var errs []string
	if p.Annotation != nil {
		if l := utf8.RuneCountInString(*p.Annotation); l < 20 || l > 2000 {
			errs = append(errs, "Annotation must be between 20 and 2000 characters")
		}
	}
	if p.Description != nil {
		if l := utf8.RuneCountInString(*p.Description); l < 20 || l > 7000 {
			errs = append(errs, "Description must be between 20 and 7000 characters")
		}
	}
	if p.Title != nil {
		if l := utf8.RuneCountInString(*p.Title); l < 3 || l > 120 {
			errs = append(errs, "Title must be between 3 and 120 characters")
		}
	}
	if p.ParticipantLimit != nil && *p.ParticipantLimit < 0 {
		errs = append(errs, "participantLimit must not be negative")
	}
	if p.EventDate != nil {
		if _, err := domain.ParseDateTime(*p.EventDate); err != nil {
			errs = append(errs, fmt.Sprintf("eventDate must match the %s format", domain.DateTimeLayout))
		}
	}
	return errs
}

// patch converts the validated body to a domain patch.
func (p EventPatchDto) patch() domain.EventPatch {
	patch := domain.EventPatch{
		Annotation:        p.Annotation,
		Category:          p.Category,
		Description:       p.Description,
		Location:          p.Location,
		Paid:              p.Paid,
		ParticipantLimit:  p.ParticipantLimit,
		RequestModeration: p.RequestModeration,
		Title:             p.Title,
	}
	if p.EventDate != nil {
		t, _ := domain.ParseDateTime(*p.EventDate)
		patch.EventDate = &t
	}
	return patch
}

// UpdateEventAdminRequest is the request body for PATCH /admin/events/{eventId}.
type UpdateEventAdminRequest struct {
	EventPatchDto
	StateAction *string `json:"stateAction"`
}

// Validate implements Validator.
func (u UpdateEventAdminRequest) Validate() []string {
	errs := u.EventPatchDto.Validate()
	if u.StateAction != nil {
		switch domain.AdminStateAction(*u.StateAction) {
		case domain.PublishEvent, domain.RejectEvent:
		default:
			errs = append(errs, fmt.Sprintf("unknown stateAction: %s", *u.StateAction))
		}
	}
	return errs
}

// AdminEventController serves event moderation and the admin event search.
type AdminEventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewAdminEventController(logger *slog.Logger, svc domain.EventService) *AdminEventController {
	return &AdminEventController{
		Logger:  logger,
		Service: svc,
	}
}

// Search godoc
// @Summary Search events as administrator
// @Description Filtering over events of any state, including initiator and state filters. No default date range is applied.
// @Tags admin
// @Produce json
// @Param users query []int false "Initiator ids" collectionFormat(multi)
// @Param states query []string false "Event states" collectionFormat(multi)
// @Param categories query []int false "Category ids" collectionFormat(multi)
// @Param rangeStart query string false "Earliest event date (yyyy-MM-dd HH:mm:ss)"
// @Param rangeEnd query string false "Latest event date (yyyy-MM-dd HH:mm:ss)"
// @Param from query int false "Result offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} controllers.EventFullDto
// @Failure 400 {object} helpers.ApiError
// @Router /admin/events [get]
func (c *AdminEventController) Search(w http.ResponseWriter, r *http.Request) {
	filter, page, err := parseSearchParams(r, true)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	events, err := c.Service.SearchFull(r.Context(), filter, page)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, toEventFullDtos(events))
}

// Update godoc
// @Summary Edit and moderate an event
// @Description Applies the patch and an optional moderation action. Publishing requires a pending event; rejecting requires an unpublished one.
// @Tags admin
// @Accept json
// @Produce json
// @Param eventId path int true "Event id"
// @Param body body UpdateEventAdminRequest true "Fields to change"
// @Success 200 {object} controllers.EventFullDto
// @Failure 400 {object} helpers.ApiError
// @Failure 404 {object} helpers.ApiError
// @Failure 409 {object} helpers.ApiError
// @Router /admin/events/{eventId} [patch]
func (c *AdminEventController) Update(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.PathID(r, "eventId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	var req UpdateEventAdminRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	var action *domain.AdminStateAction
	if req.StateAction != nil {
		a := domain.AdminStateAction(*req.StateAction)
		action = &a
	}
	event, err := c.Service.UpdateByAdmin(r.Context(), eventID, req.patch(), action)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, toEventFullDto(event))
}
