package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "blueprint-ai/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(sessionHandler *SessionHandler, schemaHandler *SchemaHandler) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID) // Injects a unique request ID into the context.
	r.Use(middleware.RealIP)    // Sets the remote address to the real IP from proxy headers.
	r.Use(middleware.Logger)    // Logs the start and end of each request with useful info.
	r.Use(middleware.Recoverer) // Recovers from panics and returns a 500 error.

	// Serves the auto-generated Swagger UI for API documentation.
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// A simple health check endpoint for container orchestration probes.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Group for standard JSON API routes that should have a request timeout
		// to prevent client connections from hanging indefinitely.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			// --- Session ---
			r.Get("/session", sessionHandler.HandleGetSession)
			r.Post("/session", sessionHandler.HandleStartSession)
			r.Get("/session/settings", sessionHandler.HandleGetSettings)
			r.Put("/session/settings", sessionHandler.HandleUpdateSettings)
			r.Post("/session/commit", sessionHandler.HandleCommit)
			r.Post("/session/versions/{versionID}/revert", sessionHandler.HandleRevert)
			r.Put("/session/document", sessionHandler.HandleUpdateDocument)
			r.Get("/session/export", sessionHandler.HandleExport)
			r.Post("/session/import", sessionHandler.HandleImport)

			// --- Schema ---
			r.Post("/schema/summarize", schemaHandler.HandleSummarize)
		})

		// Group for long-running endpoints. These routes must NOT have a timeout,
		// as they hold a connection open for the whole generation.
		r.Group(func(r chi.Router) {
			r.Post("/session/generate", sessionHandler.HandleGenerate)
			r.Post("/session/refine", sessionHandler.HandleRefine)
			r.Post("/session/validate", sessionHandler.HandleValidate)
		})
	})

	return r
}
