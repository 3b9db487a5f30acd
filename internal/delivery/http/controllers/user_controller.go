package controllers

import (
	"log/slog"
	"net/http"
	"regexp"
	"unicode/utf8"

	"eventlane/internal/delivery/http/helpers"
	"eventlane/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// NewUserRequest is the request body for POST /admin/users.
type NewUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate implements Validator.
func (n NewUserRequest) Validate() []string {
	var errs []string
	if l := utf8.RuneCountInString(n.Name); l < 2 || l > 250 {
		errs = append(errs, "Name must be between 2 and 250 characters")
	}
	if l := utf8.RuneCountInString(n.Email); l < 6 || l > 254 {
		errs = append(errs, "Email must be between 6 and 254 characters")
	} else if !emailRegex.MatchString(n.Email) {
		errs = append(errs, "Wrong email format")
	}
	return errs
}

// UserController serves admin user management.
type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Register a user
// @Tags admin
// @Accept json
// @Produce json
// @Param body body NewUserRequest true "User data"
// @Success 201 {object} domain.User
// @Failure 400 {object} helpers.ApiError
// @Failure 409 {object} helpers.ApiError
// @Router /admin/users [post]
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var req NewUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.Create(r.Context(), req.Name, req.Email)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, user)
}

// List godoc
// @Summary List users
// @Description Returns users filtered by ids when the ids parameter is present, paged otherwise.
// @Tags admin
// @Produce json
// @Param ids query []int false "User ids" collectionFormat(multi)
// @Param from query int false "Result offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} domain.User
// @Router /admin/users [get]
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	page, err := helpers.ParsePage(r)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	ids, err := helpers.QueryInt64List(r, "ids")
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	users, err := c.Service.List(r.Context(), ids, page)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, users)
}

// Delete godoc
// @Summary Delete a user
// @Tags admin
// @Param userId path int true "User id"
// @Success 204
// @Failure 404 {object} helpers.ApiError
// @Router /admin/users/{userId} [delete]
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "userId")
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
