// Package app assembles the HTTP handler from configuration: storage, auth
// adapters, services, controllers, router and middleware.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"reqres/config"
	"reqres/internal/adapters/auth"
	httpdelivery "reqres/internal/delivery/http"
	"reqres/internal/delivery/http/controllers"
	"reqres/internal/domain"
	"reqres/internal/repository/memory"
	"reqres/internal/repository/postgres"
	"reqres/internal/services"
)

// App is a wired application ready to be served.
type App struct {
	Handler http.Handler
	close   func() error
}

// New builds the application described by cfg. The caller must Close it.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	userRepo, closeRepo, err := openUserRepository(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	passwordHash, err := hasher.Hash(cfg.LoginPassword)
	if err != nil {
		closeRepo()
		return nil, err
	}

	var issuer domain.TokenIssuer
	switch cfg.TokenMode {
	case config.TokenModeJWT:
		issuer = auth.NewJWTIssuer(cfg.JWTSecret)
	default:
		issuer = auth.NewStaticIssuer(cfg.StaticToken)
	}

	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(
		services.Credentials{Email: cfg.LoginEmail, PasswordHash: passwordHash},
		userRepo, hasher, issuer, cfg.TokenTTL,
	)

	router := httpdelivery.NewRouter(
		controllers.NewUserController(logger, userService, cfg.ListStyle),
		controllers.NewAuthController(logger, authService),
		controllers.NewStatusController(logger, userService),
	)

	return &App{
		Handler: httpdelivery.WithMiddleware(logger, cfg.AllowedOrigins, router),
		close:   closeRepo,
	}, nil
}

// Close releases the storage backend.
func (a *App) Close() error {
	if a.close == nil {
		return nil
	}
	return a.close()
}

func openUserRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.UserRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Storage {
	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to reach database: %w", err)
		}
		if err := postgres.Bootstrap(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("using postgres storage")
		return postgres.NewUserRepository(db), db.Close, nil
	default:
		if cfg.DataFile == "" {
			logger.Info("using in-memory storage")
			return memory.NewUserStore(), noop, nil
		}
		store, err := memory.OpenUserStore(cfg.DataFile)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using in-memory storage", "data_file", cfg.DataFile)
		return store, noop, nil
	}
}
