package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avekseev/chirpy/internal/common"
	"github.com/avekseev/chirpy/internal/server/services"
)

// statusForError maps service-level sentinel errors onto HTTP status codes.
// Anything not in the table is an internal error and must not leak its text
// to the client.
func statusForError(err error) (int, bool) {
	switch {
	case errors.Is(err, common.ErrorInvalidCredentials),
		errors.Is(err, common.ErrorMissingAuthHeader),
		errors.Is(err, common.ErrorTokenMalformed),
		errors.Is(err, common.ErrorInvalidSignature),
		errors.Is(err, common.ErrorTokenExpired),
		errors.Is(err, common.ErrorMissingSubject),
		errors.Is(err, common.ErrorInvalidRefreshToken),
		errors.Is(err, common.ErrorRefreshTokenExpired),
		errors.Is(err, common.ErrorRefreshTokenRevoked),
		errors.Is(err, common.ErrorAlreadyRevoked):
		return http.StatusUnauthorized, true
	case errors.Is(err, common.ErrorForbidden):
		return http.StatusForbidden, true
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict, true
	case errors.Is(err, services.ErrChirpTooLong):
		return http.StatusBadRequest, true
	}
	return http.StatusInternalServerError, false
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondError writes the JSON error body for err. Known errors carry their
// own message; unknown ones are logged server-side and reported generically.
func (s *Server) respondError(c echo.Context, err error) error {
	status, known := statusForError(err)
	msg := err.Error()
	if !known {
		s.log.Error(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		msg = "Internal server error"
	} else {
		s.log.Warn(c.Request().Context(), "request rejected",
			"method", c.Request().Method, "path", c.Path(), "status", status, "error", err)
	}
	return c.JSON(status, errorResponse{Error: msg})
}

// respondBadRequest reports a malformed request body or parameter.
func (s *Server) respondBadRequest(c echo.Context, msg string) error {
	s.log.Warn(c.Request().Context(), "bad request",
		"method", c.Request().Method, "path", c.Path(), "reason", msg)
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}
