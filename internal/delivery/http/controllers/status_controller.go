package controllers

import (
	"log/slog"
	"net/http"

	"reqres/internal/delivery/http/helpers"
	"reqres/internal/domain"
)

// StatusResponse is the response body for GET /status
type StatusResponse struct {
	Users bool `json:"users"`
}

// RootResponse is the response body for GET /
type RootResponse struct {
	Message string `json:"message"`
}

// StatusController serves the liveness endpoints.
type StatusController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

func NewStatusController(logger *slog.Logger, svc domain.UserService) *StatusController {
	return &StatusController{Logger: logger, Service: svc}
}

// Root godoc
// @Summary Service banner
// @Tags status
// @Produce json
// @Success 200 {object} controllers.RootResponse
// @Router / [get]
func (c *StatusController) Root(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, RootResponse{Message: "reqres mock API"})
}

// Status godoc
// @Summary Store status
// @Description Reports whether any users are stored.
// @Tags status
// @Produce json
// @Success 200 {object} controllers.StatusResponse
// @Failure 500 {object} helpers.DetailResponse
// @Router /status [get]
func (c *StatusController) Status(w http.ResponseWriter, r *http.Request) {
	ok, err := c.Service.HasUsers(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDetail(w, http.StatusInternalServerError, helpers.MsgInternalError)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, StatusResponse{Users: ok})
}
