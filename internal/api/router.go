package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/iac-studio/users/internal/api/handlers"
	mw "github.com/iac-studio/users/internal/api/middleware"
)

type Dependencies struct {
	SetupHandler *handlers.SetupHandler
}

// NewRouter wires the HTTP surface. Every response — including chi's own
// 404/405 — passes through the CORS gate.
func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	// Built-in middleware
	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS)
	r.Use(mw.RateLimit(10, 20))
	r.Use(chimid.Compress(5))

	// Health endpoints
	hh := handlers.NewHealthHandler()
	r.Get("/healthz", hh.Liveness)
	r.Get("/readyz", hh.Readiness)

	// Swagger documentation
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/docs/doc.json"),
	))

	// First-run bootstrap
	r.Post("/setup", dep.SetupHandler.Setup)

	// Deferred domain routes; all answer 501 until implemented.
	r.Post("/invitations", handlers.NotImplemented)
	r.Get("/invitations", handlers.NotImplemented)
	r.Delete("/invitations", handlers.NotImplemented)

	r.Post("/users", handlers.NotImplemented)
	r.Get("/users", handlers.NotImplemented)
	r.Put("/users/{id}", handlers.NotImplemented)
	r.Post("/users/{id}", handlers.NotImplemented)

	r.Post("/recoveries/{user}", handlers.NotImplemented)
	r.Get("/recoveries/{user}/{id}", handlers.NotImplemented)

	r.Get("/permissions", handlers.NotImplemented)
	r.Get("/permissions/{user}", handlers.NotImplemented)
	r.Get("/permissions/{user}/{taxon}", handlers.NotImplemented)
	// "_" is a reserved literal segment, not a path parameter.
	r.Get("/permissions/_/{taxon}", handlers.NotImplemented)
	r.Put("/permissions/{user}/{taxon}", handlers.NotImplemented)

	return r
}
