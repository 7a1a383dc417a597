package http

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/handlers"
	httpSwagger "github.com/swaggo/http-swagger"

	"reqres/internal/delivery/http/controllers"
	_ "reqres/internal/delivery/http/docs"
	"reqres/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(userController *controllers.UserController, authController *controllers.AuthController, statusController *controllers.StatusController) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", statusController.Root)
	mux.HandleFunc("GET /status", statusController.Status)

	// Users
	mux.HandleFunc("GET /api/users", userController.List)
	mux.HandleFunc("GET /api/users/{$}", userController.List)
	mux.HandleFunc("POST /api/users", userController.Create)
	mux.HandleFunc("POST /api/users/{$}", userController.Create)
	mux.HandleFunc("GET /api/users/{id}", userController.Get)
	mux.HandleFunc("PUT /api/users/{id}", userController.Replace)
	mux.HandleFunc("PATCH /api/users/{id}", userController.Patch)
	mux.HandleFunc("DELETE /api/users/{id}", userController.Delete)

	// Auth
	mux.HandleFunc("POST /api/login", authController.Login)
	mux.HandleFunc("POST /api/register", authController.Register)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// WithMiddleware wraps the router with panic recovery, request IDs, request
// logging and CORS, outermost first.
func WithMiddleware(logger *slog.Logger, allowedOrigins []string, next http.Handler) http.Handler {
	h := middleware.CORS(allowedOrigins, next)
	h = middleware.LoggingMiddleware(logger, h)
	h = middleware.RequestID(h)
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError)),
	)(h)
}
