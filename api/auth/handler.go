package auth

import (
	"encoding/gob"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/verdetech/verdetech/api/models"
)

func init() {
	// The session stores the user id as a uint.
	gob.Register(uint(0))
}

// RegisterHandler handles POST /register.
func (s *Service) RegisterHandler(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Preencha todos os campos"})
		return
	}

	user, err := s.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Cadastro realizado com sucesso!",
		"id":      user.ID,
	})
}

// LoginHandler handles POST /login, storing the identity in the session.
func (s *Service) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Preencha todos os campos"})
		return
	}

	cred, err := s.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrUnknownAccount) || errors.Is(err, ErrWrongPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserID, cred.UserID)
	session.Set(sessionUsername, cred.Username)
	session.Set(sessionName, cred.User.Name)
	if err := session.Save(); err != nil {
		log.Error("failed to save session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao iniciar sessão"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login realizado com sucesso!",
		"id":      cred.UserID,
		"nome":    cred.User.Name,
	})
}

// LogoutHandler handles GET /logout.
func (s *Service) LogoutHandler(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		log.Error("failed to clear session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao encerrar sessão"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sessão encerrada"})
}

// MeHandler handles GET /api/me.
func (s *Service) MeHandler(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"id":            user.ID,
		"username":      user.Username,
		"nome":          user.Name,
	})
}
