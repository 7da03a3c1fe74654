package httpserver

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avekseev/chirpy/internal/server/auth"
)

const eventUserUpgraded = "user.upgraded"

type polkaWebhookRequest struct {
	Event string `json:"event"`
	Data  struct {
		UserID string `json:"userId"`
	} `json:"data"`
}

// handlerPolkaWebhook processes payment provider callbacks. The caller
// authenticates with a static key in the Authorization header using the
// ApiKey scheme.
func (s *Server) handlerPolkaWebhook(c echo.Context) error {
	key, err := auth.GetAPIKey(c.Request().Header.Get(echo.HeaderAuthorization))
	if err != nil {
		return s.respondError(c, err)
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(s.cfg.PolkaKey)) != 1 {
		return c.NoContent(http.StatusUnauthorized)
	}

	var req polkaWebhookRequest
	if err := c.Bind(&req); err != nil {
		return s.respondBadRequest(c, "invalid body")
	}

	// Events other than the upgrade are acknowledged and ignored.
	if req.Event != eventUserUpgraded {
		return c.NoContent(http.StatusNoContent)
	}

	if err := s.users.UpgradeToChirpyRed(c.Request().Context(), req.Data.UserID); err != nil {
		return s.respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
