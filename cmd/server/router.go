package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nvoronina/adboard-api/internal/api"
	apiMiddleware "github.com/nvoronina/adboard-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's dependencies
	userHandler := api.NewUserHandler(app.userStore, app.hasher, app.logger)
	adHandler := api.NewAdHandler(app.adStore, app.logger)

	// Register routes. The paths mirror the original service exactly,
	// including the singular /ad/{id} next to the plural /ads/.
	r.Get("/users/{id}", userHandler.GetUser)
	r.Post("/users/", userHandler.CreateUser)
	r.Delete("/users/{id}", userHandler.DeleteUser)

	r.Get("/ad/{id}", adHandler.GetAd)
	r.Post("/ads/", adHandler.CreateAd)
	r.Delete("/ad/{id}", adHandler.DeleteAd)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
