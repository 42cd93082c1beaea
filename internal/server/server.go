// package server contains the HTTP surface of the catalog API: a route table,
// middleware, and handlers over the repositories and the sync engine.
package server

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dadrocktabs/api/internal/repositories"
	"github.com/dadrocktabs/api/internal/services"
	"github.com/dadrocktabs/api/internal/shared"
)

// Middleware wraps an http.Handler and returns a new http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Server wires the route table to the catalog store and sync engine.
//
// Every dependency is injected at construction; handlers hold no state of
// their own beyond these.
type Server struct {
	config   *shared.Config
	logger   *log.Logger
	videos   *repositories.VideoRepository
	settings *repositories.SettingsRepository
	sync     *services.SyncEngine
	router   *Router
}

// New creates a Server over an open database handle.
func New(config *shared.Config, logger *log.Logger, db *sql.DB) *Server {
	videos := repositories.NewVideoRepository(db)

	s := &Server{
		config:   config,
		logger:   logger,
		videos:   videos,
		settings: repositories.NewSettingsRepository(db),
		sync:     services.NewSyncEngine(videos, config, logger),
		router:   NewRouter(),
	}

	s.setupRoutes()
	return s
}

// SyncEngine exposes the server's sync engine so the CLI can reuse it.
func (s *Server) SyncEngine() *services.SyncEngine {
	return s.sync
}

// setupRoutes registers the (method, pattern) route table.
func (s *Server) setupRoutes() {
	s.router.Use(s.logRequests, s.cors)

	admin := func(h http.HandlerFunc) http.Handler {
		return s.adminGate(h)
	}

	s.router.Handle(http.MethodOptions, "/", http.HandlerFunc(s.handlePreflight))

	s.router.HandleFunc(http.MethodGet, "/api/health", s.handleHealth)
	s.router.HandleFunc(http.MethodGet, "/api/settings", s.handleGetSettings)
	s.router.HandleFunc(http.MethodGet, "/api/videos", s.handleListVideos)
	s.router.HandleFunc(http.MethodGet, "/api/videos/{id}", s.handleGetVideo)

	s.router.HandleFunc(http.MethodPost, "/api/admin/login", s.handleLogin)
	s.router.Handle(http.MethodGet, "/api/admin/stats", admin(s.handleStats))
	s.router.Handle(http.MethodPost, "/api/admin/youtube/sync", admin(s.handleSync))
	s.router.Handle(http.MethodPost, "/api/admin/videos", admin(s.handleCreateVideo))
	s.router.Handle(http.MethodPost, "/api/admin/videos/bulk", admin(s.handleBulkImport))
	s.router.Handle(http.MethodPut, "/api/admin/videos/{id}", admin(s.handleUpdateVideo))
	s.router.Handle(http.MethodDelete, "/api/admin/videos/{id}", admin(s.handleDeleteVideo))
	s.router.Handle(http.MethodPut, "/api/admin/settings", admin(s.handleUpdateSettings))
}

// ServeHTTP implements http.Handler for the whole API.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start runs the HTTP server until it fails.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:              s.config.Addr(),
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("listening", "addr", srv.Addr, "public_url", s.config.PublicURL())
	return srv.ListenAndServe()
}
