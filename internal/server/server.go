package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/liftplan/internal/engine"
	"github.com/claude/liftplan/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	engine *engine.Engine
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, eng *engine.Engine, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		engine: eng,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		// Mutating endpoints (API key required)
		r.Group(func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))

			r.Post("/programs/import", s.handleImportProgram)
			r.Delete("/programs/{id}", s.handleDeleteProgram)

			r.Post("/programs/{id}/activate", s.handleActivate)
			r.Post("/programs/{id}/deactivate", s.handleDeactivate)
			r.Post("/programs/{id}/pause", s.handlePause)
			r.Post("/programs/{id}/extend-pause", s.handleExtendPause)
			r.Post("/programs/{id}/resume", s.handleResume)
			r.Post("/programs/{id}/skip", s.handleSkip)

			r.Post("/programs/{id}/sessions", s.handleStartSession)
			r.Patch("/sessions/{id}/sets/{setID}", s.handleUpdateSet)
			r.Post("/sessions/{id}/finish", s.handleFinishSession)
		})

		// Read endpoints (no auth — tsnet handles access)
		r.Get("/programs", s.handleListPrograms)
		r.Get("/programs/{id}", s.handleGetProgram)
		r.Get("/sessions", s.handleQuerySessions)
		r.Get("/sessions/{id}", s.handleGetSession)
		r.Get("/exercises", s.handleListExercises)
		r.Get("/import-logs", s.handleImportLogs)
	})
}
