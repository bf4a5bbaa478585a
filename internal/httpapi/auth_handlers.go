package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"runnerspro/internal/auth"
	"runnerspro/internal/session"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type sessionResponse struct {
	Token         string                `json:"token"`
	User          auth.User             `json:"user"`
	ConnectedApps session.ConnectedApps `json:"connectedApps"`
	ExpiresAt     time.Time             `json:"expiresAt"`
}

// POST /api/login
func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, NewError(http.StatusBadRequest, "invalid_request", err))
		return
	}
	user, err := auth.Login(req.Email, req.Password, s.now())
	if err != nil {
		s.respondError(c, err)
		return
	}
	s.startSession(c, http.StatusOK, user)
}

// POST /api/signup
func (s *Server) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, NewError(http.StatusBadRequest, "invalid_request", err))
		return
	}
	user, err := auth.Signup(req.Email, req.Password, req.Name, s.now())
	if err != nil {
		s.respondError(c, err)
		return
	}
	s.startSession(c, http.StatusCreated, user)
}

func (s *Server) startSession(c *gin.Context, status int, user auth.User) {
	sess, err := s.sessions.Start(c.Request.Context(), user)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(status, sessionResponse{
		Token:         sess.Token,
		User:          sess.User,
		ConnectedApps: sess.Apps,
		ExpiresAt:     sess.ExpiresAt,
	})
}

// POST /api/logout
func (s *Server) logout(c *gin.Context) {
	if err := s.sessions.End(c.Request.Context(), currentSession(c).ID); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
