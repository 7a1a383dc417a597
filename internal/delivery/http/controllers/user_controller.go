package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"reqres/internal/delivery/http/helpers"
	"reqres/internal/domain"
)

// timestampLayout matches the createdAt/updatedAt strings reqres returns.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// CreateUserRequest is the request body for POST /api/users
type CreateUserRequest struct {
	Name string `json:"name" validate:"required,max=200"`
	Job  string `json:"job" validate:"required,max=200"`
}

// CreateUserResponse is the response body for POST /api/users (201).
type CreateUserResponse struct {
	Name      string `json:"name"`
	Job       string `json:"job"`
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// ReplaceUserRequest is the request body for PUT /api/users/{id}. Any id in the body is ignored.
type ReplaceUserRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	FirstName string  `json:"first_name" validate:"required,max=200"`
	LastName  string  `json:"last_name" validate:"required,max=200"`
	Avatar    string  `json:"avatar" validate:"required,http_url"`
	Name      *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Job       *string `json:"job,omitempty" validate:"omitempty,max=200"`
}

// PatchUserRequest is the request body for PATCH /api/users/{id}. All fields are optional.
type PatchUserRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=200"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=200"`
	Avatar    *string `json:"avatar,omitempty" validate:"omitempty,http_url"`
	Name      *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Job       *string `json:"job,omitempty" validate:"omitempty,max=200"`
}

// PatchUserResponse is the response body for PATCH /api/users/{id} (200).
type PatchUserResponse struct {
	*domain.User
	UpdatedAt string `json:"updatedAt"`
}

// UserController handles the /api/users endpoints.
type UserController struct {
	Logger    *slog.Logger
	Service   domain.UserService
	ListStyle string
}

// NewUserController creates a UserController. listStyle selects the list
// response shape (helpers.ListStylePage or helpers.ListStyleReqres).
func NewUserController(logger *slog.Logger, svc domain.UserService, listStyle string) *UserController {
	return &UserController{
		Logger:    logger,
		Service:   svc,
		ListStyle: listStyle,
	}
}

// parseUserID reads the {id} path value. It writes the error response and
// returns false when the id is not a positive integer.
func parseUserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		helpers.WriteValidationError(w, helpers.FieldError{
			Type:  "int_parsing",
			Loc:   []string{"path", "user_id"},
			Msg:   domain.MsgIntParsing,
			Input: raw,
		})
		return 0, false
	}
	if id < 1 {
		helpers.WriteDetail(w, http.StatusUnprocessableEntity, "Invalid user id")
		return 0, false
	}
	return id, true
}

func (c *UserController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var fault *domain.ValidationFault
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		helpers.WriteDetail(w, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrDuplicateEmail):
		helpers.WriteDetail(w, http.StatusConflict, "Email already in use")
	case errors.As(err, &fault):
		helpers.WriteValidationError(w, helpers.FaultToFieldError(fault))
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDetail(w, http.StatusInternalServerError, helpers.MsgInternalError)
	}
}

// List godoc
// @Summary List users
// @Description Paginated user listing. With neither page nor size every user is returned on one page; page alone uses a page size of 6. Pages past the end return an empty list.
// @Tags users
// @Produce json
// @Param page query int false "Page number (>= 1)"
// @Param size query int false "Page size (>= 1)"
// @Param per_page query int false "Alias of size"
// @Success 200 {object} helpers.PageResponse[domain.User]
// @Failure 422 {object} helpers.ValidationResponse
// @Failure 500 {object} helpers.DetailResponse
// @Router /api/users [get]
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	req, err := helpers.ParsePageRequest(r)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	res, err := c.Service.List(r.Context(), req)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.NewListResponse(c.ListStyle, res))
}

// Get godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} helpers.DetailResponse
// @Failure 422 {object} helpers.ValidationResponse
// @Router /api/users/{id} [get]
func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUserID(w, r)
	if !ok {
		return
	}
	user, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, user)
}

// Create godoc
// @Summary Create a user
// @Description Stores a new user with the given name and job.
// @Tags users
// @Accept json
// @Produce json
// @Param body body CreateUserRequest true "Name and job"
// @Success 201 {object} controllers.CreateUserResponse
// @Failure 400 {object} helpers.DetailResponse
// @Failure 422 {object} helpers.ValidationResponse
// @Router /api/users [post]
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.Create(r.Context(), req.Name, req.Job)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, CreateUserResponse{
		Name:      *user.Name,
		Job:       *user.Job,
		ID:        strconv.Itoa(user.ID),
		CreatedAt: formatTimestamp(user.CreatedAt),
	})
}

// Replace godoc
// @Summary Replace a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param body body ReplaceUserRequest true "Full user record"
// @Success 200 {object} domain.User
// @Failure 404 {object} helpers.DetailResponse
// @Failure 409 {object} helpers.DetailResponse
// @Failure 422 {object} helpers.ValidationResponse
// @Router /api/users/{id} [put]
func (c *UserController) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUserID(w, r)
	if !ok {
		return
	}
	var req ReplaceUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.Replace(r.Context(), &domain.User{
		ID:        id,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Avatar:    req.Avatar,
		Name:      req.Name,
		Job:       req.Job,
	})
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, user)
}

// Patch godoc
// @Summary Update a user
// @Description Updates only the fields present in the body.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param body body PatchUserRequest true "Fields to change"
// @Success 200 {object} controllers.PatchUserResponse
// @Failure 404 {object} helpers.DetailResponse
// @Failure 409 {object} helpers.DetailResponse
// @Failure 422 {object} helpers.ValidationResponse
// @Router /api/users/{id} [patch]
func (c *UserController) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUserID(w, r)
	if !ok {
		return
	}
	var req PatchUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.Patch(r.Context(), id, domain.UserPatch{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Avatar:    req.Avatar,
		Name:      req.Name,
		Job:       req.Job,
	})
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, PatchUserResponse{User: user, UpdatedAt: formatTimestamp(user.UpdatedAt)})
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} helpers.DetailResponse
// @Failure 422 {object} helpers.ValidationResponse
// @Router /api/users/{id} [delete]
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUserID(w, r)
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		c.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
