package auth

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/verdetech/verdetech/api/models"
)

// Session keys for the acting user.
const (
	sessionUserID   = "user_id"
	sessionUsername = "username"
	sessionName     = "nome"
)

// ContextUserKey is where the resolved acting user lives in the gin context.
const ContextUserKey = "user"

// LoadUser resolves the acting user from the session, if any, and stashes it
// in the request context. It never rejects: anonymous requests simply carry
// no user. Handlers that require an identity check the context themselves or
// sit behind RequireAuth.
func (s *Service) LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := session.Get(sessionUserID).(uint)
		if !ok {
			c.Next()
			return
		}
		username, _ := session.Get(sessionUsername).(string)
		name, _ := session.Get(sessionName).(string)

		c.Set(ContextUserKey, &models.User{
			ID:       userID,
			Username: username,
			Name:     name,
			IsAdmin:  s.IsAdmin(username),
		})
		c.Next()
	}
}

// RequireAuth aborts with 401 when the request carries no identified user.
func (s *Service) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the acting user is the designated
// admin. The denial is explicit, never downgraded to a 404.
func (s *Service) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
			return
		}
		if !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Acesso negado"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the acting user for this request, or nil for anonymous
// callers.
func CurrentUser(c *gin.Context) *models.User {
	user, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	u, ok := user.(*models.User)
	if !ok {
		return nil
	}
	return u
}
