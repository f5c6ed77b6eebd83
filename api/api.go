// Package api wires the gin HTTP server: middleware, sessions and routes.
package api

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/verdetech/verdetech/api/auth"
	"github.com/verdetech/verdetech/api/handler"
	"github.com/verdetech/verdetech/config"
	"github.com/verdetech/verdetech/database"
)

// Server is the VerdeTech HTTP server.
type Server struct {
	cfg       *config.Config
	ginEngine *gin.Engine
	db        *database.Client
	auth      *auth.Service
}

// New creates the API server.
func New(cfg *config.Config, db *database.Client) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:       cfg,
		ginEngine: gin.Default(),
		db:        db,
		auth:      auth.NewService(db, cfg),
	}
	s.setupRoutes()
	s.setupAdminRoutes()
	return s, nil
}

func (s *Server) setupSession() {
	store := cookie.NewStore([]byte(s.cfg.SessionKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.SessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.ginEngine.Use(sessions.Sessions("verdetech_session", store))
}

// requestID tags every request with an id for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Set("request_id", id)
		c.Next()
	}
}

func (s *Server) setupRoutes() {
	s.ginEngine.Use(requestID())
	s.ginEngine.Use(gzip.Gzip(gzip.DefaultCompression))
	s.setupSession()
	s.ginEngine.Use(s.auth.LoadUser())

	h := handler.New(s.db)

	s.ginEngine.GET("/health", h.Health)
	s.ginEngine.POST("/register", s.auth.RegisterHandler)
	s.ginEngine.POST("/login", s.auth.LoginHandler)
	s.ginEngine.GET("/logout", s.auth.LogoutHandler)

	api := s.ginEngine.Group("/api")
	api.GET("/me", s.auth.MeHandler)
	// Anonymous submissions are supported: the record is stored ownerless.
	api.POST("/calcular-pegada", h.CalculateFootprint)
	api.POST("/salvar-quiz", h.SaveQuiz)

	feedback := api.Group("/feedback", s.auth.RequireAuth())
	feedback.GET("", h.GetFeedback)
	feedback.POST("", h.SaveFeedback)
}

func (s *Server) setupAdminRoutes() {
	h := handler.NewAdmin(s.db)

	admin := s.ginEngine.Group("/admin")
	admin.Use(s.auth.RequireAdmin())

	admin.GET("/relatorio", h.Report)
	admin.GET("/relatorio.csv", h.ReportCSV)
	admin.GET("/dados", h.Data)
	admin.GET("/feedbacks", h.Feedbacks)
	admin.DELETE("/delete-activities/:userID", h.DeleteActivities)
	admin.DELETE("/delete-user/:userID", h.DeleteUser)
	admin.DELETE("/delete-feedback/:id", h.DeleteFeedback)
}

// Run starts the server.
func (s *Server) Run() error {
	return s.ginEngine.Run(s.cfg.Listen)
}
