// Package httpserver exposes the chirpy services over HTTP using echo.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avekseev/chirpy/internal/logging"
	"github.com/avekseev/chirpy/internal/server/config"
	"github.com/avekseev/chirpy/internal/server/metrics"
	"github.com/avekseev/chirpy/internal/server/services"
)

// Server wires the application services into an echo router.
type Server struct {
	echo     *echo.Echo
	cfg      *config.Config
	log      logging.Logger
	metrics  *metrics.Metrics
	users    *services.UserService
	sessions *services.SessionService
	chirps   *services.ChirpService
}

// NewServer builds the router with all routes and middleware registered.
func NewServer(cfg *config.Config, log logging.Logger, m *metrics.Metrics,
	users *services.UserService, sessions *services.SessionService, chirps *services.ChirpService) *Server {

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	s := &Server{
		echo:     e,
		cfg:      cfg,
		log:      log,
		metrics:  m,
		users:    users,
		sessions: sessions,
		chirps:   chirps,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo
	e.Use(s.requestMetrics)

	e.GET("/api/healthz", s.handlerReadiness)

	e.POST("/api/users", s.handlerCreateUser)
	e.PUT("/api/users", s.handlerUpdateUser, s.requireAuth)

	e.POST("/api/login", s.handlerLogin)
	e.POST("/api/refresh", s.handlerRefresh)
	e.POST("/api/revoke", s.handlerRevoke)

	e.POST("/api/chirps", s.handlerCreateChirp, s.requireAuth)
	e.GET("/api/chirps", s.handlerGetChirps)
	e.GET("/api/chirps/:chirpID", s.handlerGetChirp)
	e.DELETE("/api/chirps/:chirpID", s.handlerDeleteChirp, s.requireAuth)

	e.POST("/api/polka/webhooks", s.handlerPolkaWebhook)

	e.GET("/admin/metrics", s.handlerAdminMetrics)
	e.POST("/admin/reset", s.handlerAdminReset)

	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))

	fileServer := http.StripPrefix("/app", http.FileServer(http.Dir(s.cfg.StaticDir)))
	e.GET("/app*", echo.WrapHandler(fileServer), s.countFileserverHits)
}

// Start blocks serving HTTP until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	err := s.echo.Start(s.cfg.Addr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
