package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/clinic-api/internal/api"
	apiMiddleware "github.com/phrazzld/clinic-api/internal/api/middleware"
	"github.com/phrazzld/clinic-api/internal/domain"
)

// setupRouter registers every route and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)

	authHandler := api.NewAuthHandler(app.registrar, app.sessions, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.accountService, app.logger)
	reservationHandler := api.NewReservationHandler(app.reservationService, app.logger)
	adminHandler := api.NewAdminHandler(app.userService, app.accountService, app.logger)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.userFinder, app.logger)
	loginLimiter := apiMiddleware.NewRateLimiter(app.config.Auth.LoginRateLimit, app.config.Auth.LoginBurst)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", authHandler.Signup)
		r.With(loginLimiter.Middleware).Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Route("/users/me", func(r chi.Router) {
				r.Get("/", userHandler.GetProfile)
				r.Patch("/", userHandler.EditProfile)
				r.Delete("/", userHandler.DeleteAccount)

				r.Get("/reservations/approved", reservationHandler.ListApproved)
				r.Get("/reservations/waiting", reservationHandler.ListWaiting)
				r.Get("/reservations/done", reservationHandler.ListDoneOrReviewed)
				r.Get("/reservations/canceled", reservationHandler.ListCanceled)
			})

			r.Put("/reservations/{id}/cancel", reservationHandler.Cancel)

			r.Route("/partner", func(r chi.Router) {
				r.Use(apiMiddleware.RequireRole(domain.RolePartner))
				r.Get("/reservations", reservationHandler.ListHospital)
				r.Patch("/reservations/{id}", reservationHandler.Update)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(apiMiddleware.RequireRole(domain.RoleAdmin))
				r.Get("/users", adminHandler.ListAll)
				r.Get("/users/page", adminHandler.ListPage)
				r.Patch("/users/{id}/role", adminHandler.UpdateRole)
				r.Delete("/users/{id}", adminHandler.DeleteAccount)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
