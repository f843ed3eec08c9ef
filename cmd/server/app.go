package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/clinic-api/internal/api"
	"github.com/phrazzld/clinic-api/internal/config"
	"github.com/phrazzld/clinic-api/internal/platform/postgres"
	"github.com/phrazzld/clinic-api/internal/service"
	"github.com/phrazzld/clinic-api/internal/service/auth"
)

// application holds the shared dependencies of the server and owns their
// shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userFinder auth.UserFinder
	jwtService auth.JWTService
	registrar  api.Registrar
	sessions   api.SessionStarter

	userService        service.UserService
	reservationService service.ReservationService
	accountService     service.AccountService
}

// newApplication wires stores, services and auth around an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	userStore := postgres.NewPostgresUserStore(db, logger)
	hospitalStore := postgres.NewPostgresHospitalStore(db, logger)
	doctorStore := postgres.NewPostgresDoctorStore(db, logger)
	reservationStore := postgres.NewPostgresReservationStore(db, logger)

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"access_token_lifetime", cfg.Auth.AccessTokenLifetime,
		"refresh_token_lifetime", cfg.Auth.RefreshTokenLifetime)

	passwords := auth.NewBcryptVerifier(cfg.Auth.BcryptCost)
	app.sessions, err = auth.NewSessionIssuer(userStore, passwords, passwords, app.jwtService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session issuer: %w", err)
	}
	app.registrar = auth.NewAccountRegistrar(userStore, passwords, logger)
	app.userFinder = userStore

	app.userService = service.NewUserService(userStore, hospitalStore, logger)
	app.reservationService = service.NewReservationService(db, reservationStore, hospitalStore, logger)
	app.accountService = service.NewAccountService(db, userStore, hospitalStore, doctorStore, reservationStore, logger)

	logger.Info("application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is canceled, then shuts down.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}
	app.logger.Info("application shutdown completed")
}
