package controllers

import (
	"log/slog"
	"net/http"
	"unicode/utf8"

	"eventlane/internal/delivery/http/helpers"
	"eventlane/internal/domain"
)

// NewCategoryDto is the request body for creating or renaming a category.
type NewCategoryDto struct {
	Name string `json:"name"`
}

// Validate implements Validator.
func (n NewCategoryDto) Validate() []string {
	if l := utf8.RuneCountInString(n.Name); l < 1 || l > 50 {
		return []string{"Category name must be between 1 and 50 characters"}
	}
	return nil
}

// CategoryController serves category CRUD on the admin and public surfaces.
type CategoryController struct {
	Logger  *slog.Logger
	Service domain.CategoryService
}

func NewCategoryController(logger *slog.Logger, svc domain.CategoryService) *CategoryController {
	return &CategoryController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create a category
// @Tags admin
// @Accept json
// @Produce json
// @Param body body NewCategoryDto true "Category name"
// @Success 201 {object} domain.Category
// @Failure 400 {object} helpers.ApiError
// @Failure 409 {object} helpers.ApiError
// @Router /admin/categories [post]
func (c *CategoryController) Create(w http.ResponseWriter, r *http.Request) {
	var req NewCategoryDto
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	category, err := c.Service.Create(r.Context(), req.Name)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, category)
}

// Update godoc
// @Summary Rename a category
// @Tags admin
// @Accept json
// @Produce json
// @Param categoryId path int true "Category id"
// @Param body body NewCategoryDto true "New name"
// @Success 200 {object} domain.Category
// @Failure 404 {object} helpers.ApiError
// @Router /admin/categories/{categoryId} [patch]
func (c *CategoryController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "categoryId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	var req NewCategoryDto
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	category, err := c.Service.Update(r.Context(), id, req.Name)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, category)
}

// Delete godoc
// @Summary Delete a category
// @Description Fails with a conflict while events still reference the category.
// @Tags admin
// @Param categoryId path int true "Category id"
// @Success 204
// @Failure 404 {object} helpers.ApiError
// @Failure 409 {object} helpers.ApiError
// @Router /admin/categories/{categoryId} [delete]
func (c *CategoryController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "categoryId")
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
// @Summary List categories
// @Tags categories
// @Produce json
// @Param from query int false "Result offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} domain.Category
// @Router /categories [get]
func (c *CategoryController) List(w http.ResponseWriter, r *http.Request) {
	page, err := helpers.ParsePage(r)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	categories, err := c.Service.List(r.Context(), page)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, categories)
}

// Get godoc
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param categoryId path int true "Category id"
// @Success 200 {object} domain.Category
// @Failure 404 {object} helpers.ApiError
// @Router /categories/{categoryId} [get]
func (c *CategoryController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "categoryId")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	category, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, category)
}
