package controllers

import (
	"log/slog"
	"net/http"
	"unicode/utf8"

	"eventlane/internal/delivery/http/helpers"
	"eventlane/internal/domain"
)

// NewCompilationDto is the request body for POST /admin/compilations.
type NewCompilationDto struct {
	Title  string  `json:"title"`
	Events []int64 `json:"events"`
	Pinned bool    `json:"pinned"`
}

// Validate implements Validator.
func (n NewCompilationDto) Validate() []string {
	if l := utf8.RuneCountInString(n.Title); l < 1 || l > 50 {
		return []string{"Title must be between 1 and 50 characters"}
	}
	return nil
}

// UpdateCompilationRequest is the request body for PATCH /admin/compilations/{compId}.
// A nil events list keeps the current membership; an empty list clears it.
type UpdateCompilationRequest struct {
	Title  *string `json:"title"`
	Events []int64 `json:"events"`
	Pinned *bool   `json:"pinned"`
}

// Validate implements Validator.
func (u UpdateCompilationRequest) Validate() []string {
	if u.Title != nil {
		if l := utf8.RuneCountInString(*u.Title); l < 1 || l > 50 {
			return []string{"Title must be between 1 and 50 characters"}
		}
	}
	return nil
}

// CompilationController serves compilation CRUD on the admin and public surfaces.
type CompilationController struct {
	Logger  *slog.Logger
	Service domain.CompilationService
}

func NewCompilationController(logger *slog.Logger, svc domain.CompilationService) *CompilationController {
	return &CompilationController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create a compilation
// @Tags admin
// @Accept json
// @Produce json
// @Param body body NewCompilationDto true "Compilation data"
// @Success 201 {object} controllers.CompilationDto
// @Failure 400 {object} helpers.ApiError
// @Failure 404 {object} helpers.ApiError
// @Router /admin/compilations [post]
func (c *CompilationController) Create(w http.ResponseWriter, r *http.Request) {
	var req NewCompilationDto
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	compilation, err := c.Service.Create(r.Context(), req.Title, req.Pinned, req.Events)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, toCompilationDto(compilation))
}

// Update godoc
// @Summary Edit a compilation
// @Tags admin
// @Accept json
// @Produce json
// @Param compId path int true "Compilation id"
// @Param body body UpdateCompilationRequest true "Fields to change"
// @Success 200 {object} controllers.CompilationDto
// @Failure 404 {object} helpers.ApiError
// @Router /admin/compilations/{compId} [patch]
func (c *CompilationController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "compId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	var req UpdateCompilationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	compilation, err := c.Service.Update(r.Context(), id, domain.CompilationPatch{
		Title:  req.Title,
		Pinned: req.Pinned,
		Events: req.Events,
	})
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, toCompilationDto(compilation))
}

// Delete godoc
// @Summary Delete a compilation
// @Tags admin
// @Param compId path int true "Compilation id"
// @Success 204
// @Failure 404 {object} helpers.ApiError
// @Router /admin/compilations/{compId} [delete]
func (c *CompilationController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "compId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// List godoc
// @Summary List compilations
// @Tags compilations
// @Produce json
// @Param pinned query bool false "Pinned compilations only"
// @Param from query int false "Result offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} controllers.CompilationDto
// @Router /compilations [get]
func (c *CompilationController) List(w http.ResponseWriter, r *http.Request) {
	page, err := helpers.ParsePage(r)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	pinned, err := helpers.QueryBool(r, "pinned")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	compilations, err := c.Service.List(r.Context(), pinned, page)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, toCompilationDtos(compilations))
}

// Get godoc
// @Summary Get a compilation
// @Tags compilations
// @Produce json
// @Param compId path int true "Compilation id"
// @Success 200 {object} controllers.CompilationDto
// @Failure 404 {object} helpers.ApiError
// @Router /compilations/{compId} [get]
func (c *CompilationController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "compId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	compilation, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, toCompilationDto(compilation))
}
