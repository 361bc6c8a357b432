package server

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ibuki-kubota/my-workout-app/internal/models"
	"github.com/ibuki-kubota/my-workout-app/internal/session"
	"github.com/ibuki-kubota/my-workout-app/internal/storage"
)

// LogStore is the slice of the history repository the handlers need.
// *storage.DB satisfies this; tests use a fake.
type LogStore interface {
	ListLogs(ctx context.Context) ([]models.HistoryRecord, error)
	DeleteLog(ctx context.Context, id int64) error
	GetLogStats(ctx context.Context) (*storage.LogStats, error)
}

// Compile-time check: *storage.DB satisfies LogStore.
var _ LogStore = (*storage.DB)(nil)

// Server holds dependencies for HTTP handlers.
type Server struct {
	logs    LogStore
	session *session.Manager
	log     *slog.Logger
	apiKey  string
	router  chi.Router
}

// New creates a new Server with all routes configured. An empty apiKey leaves
// the API open.
func New(logs LogStore, mgr *session.Manager, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		logs:    logs,
		session: mgr,
		log:     log,
		apiKey:  apiKey,
		router:  chi.NewRouter(),
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
		if s.apiKey != "" {
			r.Use(APIKeyAuth(s.apiKey))
		}

		// Live session
		r.Get("/session", s.handleGetSession)
		r.Post("/session/exercises", s.handleAddExercise)
		r.Patch("/session/exercises/{id}", s.handleEditExercise)
		r.Delete("/session/exercises/{id}", s.handleRemoveExercise)
		r.Post("/session/exercises/{id}/sets/{index}/toggle", s.handleToggleSet)
		r.Put("/session/exercises/{id}/sets", s.handleBulkSetField)
		r.Put("/session/exercises/{id}/sets/count", s.handleResizeSets)
		r.Post("/session/exercises/{id}/fatigue", s.handleRecordFatigue)
		r.Post("/session/capture/cancel", s.handleCancelCapture)
		r.Post("/session/finish", s.handleFinishWorkout)

		// History
		r.Get("/logs", s.handleListLogs)
		r.Delete("/logs/{id}", s.handleDeleteLog)
		r.Get("/logs/stats", s.handleLogStats)
		r.Get("/logs/calendar", s.handleCalendar)
		r.Get("/logs/trend", s.handleTrend)

		// Weekly goal
		r.Get("/goal", s.handleGetGoal)
		r.Put("/goal", s.handleSetGoal)
	})
}

// SetFrontend mounts the embedded SPA filesystem.
// Unmatched routes serve index.html for client-side routing.
func (s *Server) SetFrontend(webFS fs.FS) {
	fileServer := http.FileServerFS(webFS)

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		// Try to serve the exact file first
		f, err := webFS.Open(r.URL.Path[1:]) // strip leading /
		if err == nil {
			f.Close()
			fileServer.ServeHTTP(w, r)
			return
		}
		// Fallback to index.html for SPA routing
		r.URL.Path = "/"
		fileServer.ServeHTTP(w, r)
	})
}
