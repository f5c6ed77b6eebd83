// Package handler implements the HTTP handlers of the core API.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/verdetech/verdetech/api/auth"
	"github.com/verdetech/verdetech/api/models"
	"github.com/verdetech/verdetech/database"
	"github.com/verdetech/verdetech/footprint"
	"github.com/verdetech/verdetech/report"
)

// Handler bundles the dependencies of the core endpoints.
type Handler struct {
	db *database.Client
}

// New creates the core handler.
func New(db *database.Client) *Handler {
	return &Handler{db: db}
}

// actingUserID returns the owner tag for a new record: the session user's id,
// or nil for anonymous callers.
func actingUserID(c *gin.Context) *uint {
	user := auth.CurrentUser(c)
	if user == nil {
		return nil
	}
	id := user.ID
	return &id
}

// CalculateFootprint handles POST /api/calcular-pegada. It computes the
// emission breakdown, persists the record tagged with the acting user (or
// none) and returns the rounded values. Invalid input is rejected before
// anything is written.
func (h *Handler) CalculateFootprint(c *gin.Context) {
	var req models.CalculateFootprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b := footprint.Compute(*req.Transport, *req.Energy, *req.Food, *req.Waste)

	// The stored total keeps full precision; only the response is rounded.
	fp, err := h.db.CreateFootprint(c.Request.Context(), actingUserID(c),
		*req.Transport, *req.Energy, *req.Food, *req.Waste, b.Total)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.CalculateFootprintResponse{
		Transport: footprint.Round2(b.Transport),
		Energy:    footprint.Round2(b.Energy),
		Food:      footprint.Round2(b.Food),
		Waste:     footprint.Round2(b.Waste),
		Total:     footprint.Round2(b.Total),
		ID:        fp.ID,
	})
}

// SaveQuiz handles POST /api/salvar-quiz.
func (h *Handler) SaveQuiz(c *gin.Context) {
	var req models.SaveQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	qr, err := h.db.CreateQuizResult(c.Request.Context(), actingUserID(c), *req.Score, *req.TotalQuestions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Resultado salvo com sucesso!",
		"id":      qr.ID,
	})
}

// GetFeedback handles GET /api/feedback. Sits behind RequireAuth. A user
// without feedback gets an explicit JSON null, not an error.
func (h *Handler) GetFeedback(c *gin.Context) {
	user := auth.CurrentUser(c)

	fb, err := h.db.GetFeedbackByUser(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.FeedbackResponse{
		ID:        fb.ID,
		Rating:    fb.Rating,
		Text:      fb.Text,
		QuizScore: fb.QuizScore,
		QuizTotal: fb.QuizTotal,
		Timestamp: fb.UpdatedAt.Format(report.TimestampFormat),
	})
}

// SaveFeedback handles POST /api/feedback. Sits behind RequireAuth. Upserts:
// a second submission from the same user overwrites the first.
func (h *Handler) SaveFeedback(c *gin.Context) {
	user := auth.CurrentUser(c)

	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fb, updated, err := h.db.UpsertFeedback(c.Request.Context(), user.ID,
		*req.Rating, req.Text, req.QuizScore, req.QuizTotal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	message := "Feedback salvo com sucesso!"
	if updated {
		message = "Feedback atualizado com sucesso!"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"id":      fb.ID,
		"updated": updated,
	})
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Aplicação funcionando"})
}
