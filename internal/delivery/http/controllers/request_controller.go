package controllers

import (
	"log/slog"
	"net/http"

	"eventlane/internal/delivery/http/helpers"
	"eventlane/internal/domain"
)

// RequestController serves the requester's participation workflow.
type RequestController struct {
	Logger  *slog.Logger
	Service domain.RequestService
}

func NewRequestController(logger *slog.Logger, svc domain.RequestService) *RequestController {
	return &RequestController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List own participation requests
// @Tags requests
// @Produce json
// @Param userId path int true "Requester id"
// @Success 200 {array} controllers.ParticipationRequestDto
// @Failure 404 {object} helpers.ApiError
// @Router /users/{userId}/requests [get]
func (c *RequestController) List(w http.ResponseWriter, r *http.Request) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	requests, err := c.Service.List(r.Context(), userID)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, toRequestDtos(requests))
}

// Create godoc
// @Summary Request participation in an event
// @Description Creates a request for the published event given by eventId. The request is confirmed immediately when the event has no moderation or no limit; otherwise it stays pending.
// @Tags requests
// @Produce json
// @Param userId path int true "Requester id"
// @Param eventId query int true "Event id"
// @Success 201 {object} controllers.ParticipationRequestDto
// @Failure 400 {object} helpers.ApiError
// @Failure 404 {object} helpers.ApiError
// @Failure 409 {object} helpers.ApiError
// @Router /users/{userId}/requests [post]
func (c *RequestController) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	eventID, ok, err := helpers.QueryInt64(r, "eventId")
	if err == nil && !ok {
		err = domain.BadRequestf("eventId is required")
	}
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	request, err := c.Service.Create(r.Context(), userID, eventID)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, toRequestDto(request))
}

// Cancel godoc
// @Summary Cancel own participation request
// @Description Sets the request status to CANCELED. A confirmed seat is not returned to the event's pool.
// @Tags requests
// @Produce json
// @Param userId path int true "Requester id"
// @Param requestId path int true "Request id"
// @Success 200 {object} controllers.ParticipationRequestDto
// @Failure 404 {object} helpers.ApiError
// @Router /users/{userId}/requests/{requestId}/cancel [patch]
func (c *RequestController) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	requestID, err := helpers.PathID(r, "requestId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	request, err := c.Service.Cancel(r.Context(), userID, requestID)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, toRequestDto(request))
}
