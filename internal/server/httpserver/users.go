package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avekseev/chirpy/internal/server/models"
)

type userRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Email       string    `json:"email"`
	IsChirpyRed bool      `json:"is_chirpy_red"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:          u.ID,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		Email:       u.Email,
		IsChirpyRed: u.IsChirpyRed,
	}
}

func (s *Server) handlerCreateUser(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return s.respondBadRequest(c, "invalid body")
	}
	if req.Email == "" || req.Password == "" {
		return s.respondBadRequest(c, "email and password are required")
	}

	user, err := s.users.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// handlerUpdateUser accepts partial updates: either field may be omitted,
// but not both.
func (s *Server) handlerUpdateUser(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return s.respondBadRequest(c, "invalid body")
	}
	if req.Email == "" && req.Password == "" {
		return s.respondBadRequest(c, "at least one of email or password must be provided")
	}

	user, err := s.users.Update(c.Request().Context(), authedUserID(c), req.Email, req.Password)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}
