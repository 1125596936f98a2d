package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Spok95/yard-terminal/internal/app"
	"github.com/Spok95/yard-terminal/internal/auth"
)

type AuthHandler struct {
	Session *app.Session
	Auth    *auth.Service
}

type loginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login - POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	token, err := h.Session.Login(c.Request.Context(), h.Auth, in.Login, in.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout - POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Session.Logout(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
