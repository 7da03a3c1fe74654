package httpserver

import (
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avekseev/chirpy/internal/server/models"
)

type chirpRequest struct {
	Body string `json:"body"`
}

type chirpResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Body      string    `json:"body"`
	UserID    string    `json:"user_id"`
}

func toChirpResponse(ch *models.Chirp) chirpResponse {
	return chirpResponse{
		ID:        ch.ID,
		CreatedAt: ch.CreatedAt,
		UpdatedAt: ch.UpdatedAt,
		Body:      ch.Body,
		UserID:    ch.UserID,
	}
}

func (s *Server) handlerCreateChirp(c echo.Context) error {
	var req chirpRequest
	if err := c.Bind(&req); err != nil {
		return s.respondBadRequest(c, "invalid body")
	}

	chirp, err := s.chirps.Create(c.Request().Context(), authedUserID(c), req.Body)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, toChirpResponse(chirp))
}

// handlerGetChirps lists chirps, optionally filtered by authorId and sorted
// by creation time (sort=asc is the default, sort=desc reverses).
func (s *Server) handlerGetChirps(c echo.Context) error {
	chirps, err := s.chirps.GetAll(c.Request().Context(), c.QueryParam("authorId"))
	if err != nil {
		return s.respondError(c, err)
	}

	if c.QueryParam("sort") == "desc" {
		sort.Slice(chirps, func(i, j int) bool { return chirps[i].CreatedAt.After(chirps[j].CreatedAt) })
	}

	out := make([]chirpResponse, 0, len(chirps))
	for i := range chirps {
		out = append(out, toChirpResponse(&chirps[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handlerGetChirp(c echo.Context) error {
	chirp, err := s.chirps.GetByID(c.Request().Context(), c.Param("chirpID"))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, toChirpResponse(chirp))
}

func (s *Server) handlerDeleteChirp(c echo.Context) error {
	err := s.chirps.Delete(c.Request().Context(), authedUserID(c), c.Param("chirpID"))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
