package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avekseev/chirpy/internal/server/auth"
)

type loginResponse struct {
	userResponse
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

func (s *Server) handlerLogin(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return s.respondBadRequest(c, "invalid body")
	}

	result, err := s.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		s.metrics.LoginsTotal.WithLabelValues("error").Inc()
		return s.respondError(c, err)
	}
	s.metrics.LoginsTotal.WithLabelValues("ok").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		userResponse: toUserResponse(result.User),
		Token:        result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

type refreshResponse struct {
	Token string `json:"token"`
}

// handlerRefresh mints a new access token. The refresh token travels in the
// Authorization header as a bearer token, not in the body.
func (s *Server) handlerRefresh(c echo.Context) error {
	refreshToken, err := auth.GetBearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if err != nil {
		return s.respondError(c, err)
	}

	accessToken, err := s.sessions.Refresh(c.Request().Context(), refreshToken)
	if err != nil {
		s.metrics.RefreshesTotal.WithLabelValues("error").Inc()
		return s.respondError(c, err)
	}
	s.metrics.RefreshesTotal.WithLabelValues("ok").Inc()

	return c.JSON(http.StatusOK, refreshResponse{Token: accessToken})
}

func (s *Server) handlerRevoke(c echo.Context) error {
	refreshToken, err := auth.GetBearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.sessions.Revoke(c.Request().Context(), refreshToken); err != nil {
		s.metrics.RevocationsTotal.WithLabelValues("error").Inc()
		return s.respondError(c, err)
	}
	s.metrics.RevocationsTotal.WithLabelValues("ok").Inc()

	return c.NoContent(http.StatusNoContent)
}
