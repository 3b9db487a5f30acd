package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"eventlane/internal/delivery/http/helpers"
	"eventlane/internal/domain"
)

// NewEventDto is the request body for POST /users/{userId}/events.
type NewEventDto struct {
	Annotation        string           `json:"annotation"`
	Category          *int64           `json:"category"`
	Description       string           `json:"description"`
	EventDate         string           `json:"eventDate"`
	Location          *domain.Location `json:"location"`
	Paid              bool             `json:"paid"`
	ParticipantLimit  int64            `json:"participantLimit"`
	RequestModeration *bool            `json:"requestModeration"`
	Title             string           `json:"title"`
}

// Validate implements Validator.
func (n NewEventDto) Validate() []string {
	var errs []string
	if l := utf8.RuneCountInString(n.Annotation); l < 20 || l > 2000 {
		errs = append(errs, "Annotation must be between 20 and 2000 characters")
	}
	if n.Category == nil {
		errs = append(errs, "category is required")
	}
	if l := utf8.RuneCountInString(n.Description); l < 20 || l > 7000 {
		errs = append(errs, "Description must be between 20 and 7000 characters")
	}
	if n.EventDate == "" {
		errs = append(errs, "eventDate is required")
	} else if _, err := domain.ParseDateTime(n.EventDate); err != nil {
		errs = append(errs, fmt.Sprintf("eventDate must match the %s format", domain.DateTimeLayout))
	}
	if n.Location == nil {
		errs = append(errs, "location is required")
	}
	if n.ParticipantLimit < 0 {
		errs = append(errs, "participantLimit must not be negative")
	}
	if l := utf8.RuneCountInString(n.Title); l < 3 || l > 120 {
		errs = append(errs, "Title must be between 3 and 120 characters")
	}
	return errs
}

func (n NewEventDto) draft() domain.NewEvent {
	date, _ := domain.ParseDateTime(n.EventDate)
	moderation := true
	if n.RequestModeration != nil {
		moderation = *n.RequestModeration
	}
	return domain.NewEvent{
		Annotation:        n.Annotation,
		Category:          *n.Category,
		Description:       n.Description,
		EventDate:         date,
		Location:          *n.Location,
		Paid:              n.Paid,
		ParticipantLimit:  n.ParticipantLimit,
		RequestModeration: moderation,
		Title:             n.Title,
	}
}

// UpdateEventUserRequest is the request body for PATCH /users/{userId}/events/{eventId}.
type UpdateEventUserRequest struct {
	EventPatchDto
	StateAction *string `json:"stateAction"`
}

// Validate implements Validator.
func (u UpdateEventUserRequest) Validate() []string {
	errs := u.EventPatchDto.Validate()
	if u.StateAction != nil {
		switch domain.UserStateAction(*u.StateAction) {
		case domain.SendToReview, domain.CancelReview:
		default:
			errs = append(errs, fmt.Sprintf("unknown stateAction: %s", *u.StateAction))
		}
	}
	return errs
}

// EventRequestStatusUpdateRequest is the request body for the bulk
// participation request status update. The status applies to the event's
// pending requests; requestIds is accepted but not used to narrow the set.
type EventRequestStatusUpdateRequest struct {
	RequestIDs []int64 `json:"requestIds"`
	Status     string  `json:"status"`
}

// Validate implements Validator. Only CONFIRMED and REJECTED are accepted.
func (e EventRequestStatusUpdateRequest) Validate() []string {
	switch domain.RequestStatus(e.Status) {
	case domain.RequestConfirmed, domain.RequestRejected:
		return nil
	default:
		return []string{fmt.Sprintf("status must be CONFIRMED or REJECTED, got %q", e.Status)}
	}
}

// EventRequestStatusUpdateResult is the response body of the bulk update:
// the event's full confirmed and rejected request lists.
type EventRequestStatusUpdateResult struct {
	ConfirmedRequests []ParticipationRequestDto `json:"confirmedRequests"`
	RejectedRequests  []ParticipationRequestDto `json:"rejectedRequests"`
}

// PrivateEventController serves the initiator's own events.
type PrivateEventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewPrivateEventController(logger *slog.Logger, svc domain.EventService) *PrivateEventController {
	return &PrivateEventController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create an event
// @Description Creates a pending event owned by the user. The event date must be at least two hours in the future.
// @Tags private
// @Accept json
// @Produce json
// @Param userId path int true "Initiator id"
// @Param body body NewEventDto true "Event data"
// @Success 201 {object} controllers.EventFullDto
// @Failure 400 {object} helpers.ApiError
// @Failure 404 {object} helpers.ApiError
// @Router /users/{userId}/events [post]
func (c *PrivateEventController) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	var req NewEventDto
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Create(r.Context(), userID, req.draft())
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, toEventFullDto(event))
}

// List godoc
// @Summary List own events
// @Tags private
// @Produce json
// @Param userId path int true "Initiator id"
// @Param from query int false "Result offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} controllers.EventShortDto
// @Router /users/{userId}/events [get]
func (c *PrivateEventController) List(w http.ResponseWriter, r *http.Request) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	page, err := helpers.ParsePage(r)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	events, err := c.Service.ListByInitiator(r.Context(), userID, page)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, toEventShortDtos(events))
}

// Get godoc
// @Summary Get own event
// @Tags private
// @Produce json
// @Param userId path int true "Initiator id"
// @Param eventId path int true "Event id"
// @Success 200 {object} controllers.EventFullDto
// @Failure 404 {object} helpers.ApiError
// @Router /users/{userId}/events/{eventId} [get]
func (c *PrivateEventController) Get(w http.ResponseWriter, r *http.Request) {
	userID, eventID, err := userEventIDs(r)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	event, err := c.Service.GetByIDForInitiator(r.Context(), userID, eventID)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, toEventFullDto(event))
}

// Update godoc
// @Summary Edit own event
// @Description Applies the patch and an optional lifecycle action. Published events cannot be edited.
// @Tags private
// @Accept json
// @Produce json
// @Param userId path int true "Initiator id"
// @Param eventId path int true "Event id"
// @Param body body UpdateEventUserRequest true "Fields to change"
// @Success 200 {object} controllers.EventFullDto
// @Failure 400 {object} helpers.ApiError
// @Failure 404 {object} helpers.ApiError
// @Failure 409 {object} helpers.ApiError
// @Router /users/{userId}/events/{eventId} [patch]
func (c *PrivateEventController) Update(w http.ResponseWriter, r *http.Request) {
	userID, eventID, err := userEventIDs(r)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	var req UpdateEventUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	var action *domain.UserStateAction
	if req.StateAction != nil {
		a := domain.UserStateAction(*req.StateAction)
		action = &a
	}
	event, err := c.Service.UpdateByInitiator(r.Context(), userID, eventID, req.patch(), action)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, toEventFullDto(event))
}

// ListRequests godoc
// @Summary List participation requests for own event
// @Tags private
// @Produce json
// @Param userId path int true "Initiator id"
// @Param eventId path int true "Event id"
// @Success 200 {array} controllers.ParticipationRequestDto
// @Failure 404 {object} helpers.ApiError
// @Router /users/{userId}/events/{eventId}/requests [get]
func (c *PrivateEventController) ListRequests(w http.ResponseWriter, r *http.Request) {
	userID, eventID, err := userEventIDs(r)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	requests, err := c.Service.ListEventRequests(r.Context(), userID, eventID)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, toRequestDtos(requests))
}

// UpdateRequests godoc
// @Summary Confirm or reject pending participation requests
// @Description Applies the status to the event's pending requests without exceeding the participant limit; the overflow is rejected. Returns the event's full confirmed and rejected lists.
// @Tags private
// @Accept json
// @Produce json
// @Param userId path int true "Initiator id"
// @Param eventId path int true "Event id"
// @Param body body EventRequestStatusUpdateRequest true "Target status"
// @Success 200 {object} controllers.EventRequestStatusUpdateResult
// @Failure 404 {object} helpers.ApiError
// @Failure 409 {object} helpers.ApiError
// @Router /users/{userId}/events/{eventId}/requests [patch]
func (c *PrivateEventController) UpdateRequests(w http.ResponseWriter, r *http.Request) {
	userID, eventID, err := userEventIDs(r)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	var req EventRequestStatusUpdateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Service.UpdateRequestStatuses(r.Context(), userID, eventID, domain.RequestStatus(req.Status))
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventRequestStatusUpdateResult{
		ConfirmedRequests: toRequestDtos(result.Confirmed),
		RejectedRequests:  toRequestDtos(result.Rejected),
	})
}

func userEventIDs(r *http.Request) (int64, int64, error) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		return 0, 0, err
	}
	eventID, err := helpers.PathID(r, "eventId")
	if err != nil {
		return 0, 0, err
	}
	return userID, eventID, nil
}
