package controllers

import (
	"log/slog"
	"net/http"

	"eventlane/internal/delivery/http/helpers"
	"eventlane/internal/domain"
)

// NewCommentDto is the request body for adding a comment. An empty text is
// rejected by the service.
type NewCommentDto struct {
	Text string `json:"text"`
}

// CommentController serves comments on the private, public, and admin surfaces.
type CommentController struct {
	Logger  *slog.Logger
	Service domain.CommentService
}

func NewCommentController(logger *slog.Logger, svc domain.CommentService) *CommentController {
	return &CommentController{
		Logger:  logger,
		Service: svc,
	}
}

// Add godoc
// @Summary Comment on a published event
// @Tags comments
// @Accept json
// @Produce json
// @Param eventId path int true "Event id"
// @Param userId path int true "Author id"
// @Param body body NewCommentDto true "Comment text"
// @Success 201 {object} controllers.CommentDto
// @Failure 400 {object} helpers.ApiError
// @Failure 404 {object} helpers.ApiError
// @Router /events/{eventId}/comments/{userId} [post]
func (c *CommentController) Add(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.PathID(r, "eventId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	var req NewCommentDto
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	comment, err := c.Service.Add(r.Context(), userID, eventID, req.Text)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, toCommentDto(comment))
}

// Delete godoc
// @Summary Delete own comment
// @Tags comments
// @Param eventId path int true "Event id"
// @Param commentId path int true "Comment id"
// @Param userId path int true "Author id"
// @Success 204
// @Failure 404 {object} helpers.ApiError
// @Failure 409 {object} helpers.ApiError
// @Router /events/comments/{eventId}/{commentId}/{userId} [delete]
func (c *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.PathID(r, "eventId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	commentID, err := helpers.PathID(r, "commentId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	if err := c.Service.DeleteByAuthor(r.Context(), userID, eventID, commentID); err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListByEvent godoc
// @Summary List comments of an event
// @Description Newest first. The from parameter selects a page, not a row offset.
// @Tags comments
// @Produce json
// @Param eventId path int true "Event id"
// @Param from query int false "Page number" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} controllers.CommentDto
// @Failure 404 {object} helpers.ApiError
// @Router /events/comments/{eventId} [get]
func (c *CommentController) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.PathID(r, "eventId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	page, err := commentPage(r)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	comments, err := c.Service.ListByEvent(r.Context(), eventID, page)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, toCommentDtos(comments))
}

// DeleteByAdmin godoc
// @Summary Delete any comment
// @Tags admin
// @Param commentId path int true "Comment id"
// @Success 204
// @Failure 404 {object} helpers.ApiError
// @Router /admin/comments/{commentId} [delete]
func (c *CommentController) DeleteByAdmin(w http.ResponseWriter, r *http.Request) {
	commentID, err := helpers.PathID(r, "commentId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	if err := c.Service.DeleteByAdmin(r.Context(), commentID); err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListByAuthor godoc
// @Summary List comments of a user
// @Description Newest first. The from parameter selects a page, not a row offset.
// @Tags admin
// @Produce json
// @Param userId path int true "Author id"
// @Param from query int false "Page number" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} controllers.CommentDto
// @Failure 404 {object} helpers.ApiError
// @Router /admin/comments/{userId} [get]
func (c *CommentController) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	userID, err := helpers.PathID(r, "userId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	page, err := commentPage(r)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	comments, err := c.Service.ListByAuthor(r.Context(), userID, page)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, toCommentDtos(comments))
}

// commentPage reads from and size, where from is a page number.
func commentPage(r *http.Request) (domain.Page, error) {
	page, err := helpers.ParsePage(r)
	if err != nil {
		return page, err
	}
	page.From = page.From * page.Size
	return page, nil
}
