package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	h "reqres/internal/delivery/http/helpers"
	"reqres/internal/domain"
)

// CredentialsRequest is the request body for POST /api/login and POST /api/register.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the response body for POST /api/login
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterResponse is the response body for POST /api/register
type RegisterResponse struct {
	ID    int    `json:"id"`
	Token string `json:"token"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// decodeCredentials tolerates an empty body so the service can report the
// missing fields in reqres wording.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (CredentialsRequest, bool) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.WriteDetail(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	return req, true
}

func (c *AuthController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingEmail),
		errors.Is(err, domain.ErrMissingPassword),
		errors.Is(err, domain.ErrUnknownUser):
		h.WriteAuthError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		h.WriteAuthError(w, http.StatusUnauthorized, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteDetail(w, http.StatusInternalServerError, h.MsgInternalError)
	}
}

// Login godoc
// @Summary Log in
// @Description Checks the demo credentials and returns a token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "Login credentials"
// @Success 200 {object} controllers.LoginResponse
// @Failure 400 {object} helpers.AuthErrorResponse "Missing password / Missing email or username"
// @Failure 401 {object} helpers.AuthErrorResponse "Invalid login credentials"
// @Router /api/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}
	token, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, LoginResponse{Token: token})
}

// Register godoc
// @Summary Register
// @Description Succeeds only for users that already exist.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "Registration data"
// @Success 200 {object} controllers.RegisterResponse
// @Failure 400 {object} helpers.AuthErrorResponse
// @Router /api/register [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}
	id, token, err := c.Service.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, RegisterResponse{ID: id, Token: token})
}
