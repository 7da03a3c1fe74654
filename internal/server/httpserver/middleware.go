package httpserver

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avekseev/chirpy/internal/server/auth"
)

const ctxUserIDKey = "userID"

// requestMetrics records a Prometheus counter and latency histogram for every
// request. Labels use the route template, not the raw URL, so path parameters
// do not explode cardinality.
func (s *Server) requestMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		status := strconv.Itoa(c.Response().Status)
		s.metrics.HTTPRequestsTotal.WithLabelValues(req.Method, c.Path(), status).Inc()
		s.metrics.HTTPRequestDuration.WithLabelValues(req.Method, c.Path()).Observe(time.Since(start).Seconds())
		return nil
	}
}

// countFileserverHits bumps the admin hit counter for static file requests.
func (s *Server) countFileserverHits(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.metrics.IncFileserverHits()
		return next(c)
	}
}

// requireAuth extracts and validates the bearer access token, storing the
// authenticated user id in the request context for the handler.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := auth.GetBearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return s.respondError(c, err)
		}

		userID, err := s.sessions.ValidateAccessToken(token)
		if err != nil {
			return s.respondError(c, err)
		}

		c.Set(ctxUserIDKey, userID)
		return next(c)
	}
}

// authedUserID returns the user id stored by requireAuth.
func authedUserID(c echo.Context) string {
	id, _ := c.Get(ctxUserIDKey).(string)
	return id
}
