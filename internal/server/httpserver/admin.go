package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

const adminMetricsPage = `<html>
<body>
<h1>Welcome, Chirpy Admin</h1>
<p>Chirpy has been visited %d times!</p>
</body>
</html>`

func (s *Server) handlerReadiness(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte("OK"))
}

func (s *Server) handlerAdminMetrics(c echo.Context) error {
	return c.HTML(http.StatusOK, fmt.Sprintf(adminMetricsPage, s.metrics.FileserverHits()))
}

// handlerAdminReset wipes all users and zeroes the hit counter. Enabled only
// on the dev platform; anywhere else it is forbidden outright.
func (s *Server) handlerAdminReset(c echo.Context) error {
	if s.cfg.Platform != "dev" {
		return c.NoContent(http.StatusForbidden)
	}

	if err := s.users.DeleteAll(c.Request().Context()); err != nil {
		return s.respondError(c, err)
	}
	s.metrics.ResetFileserverHits()

	s.log.Info(c.Request().Context(), "admin reset performed")
	return c.NoContent(http.StatusOK)
}
