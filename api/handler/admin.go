package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/verdetech/verdetech/database"
	"github.com/verdetech/verdetech/report"
)

// AdminHandler implements the reporting and mutation endpoints reserved for
// the designated admin. Authorization happens in the route group middleware;
// these handlers assume an admin identity.
type AdminHandler struct {
	db      *database.Client
	builder *report.Builder
}

// NewAdmin creates the admin handler.
func NewAdmin(db *database.Client) *AdminHandler {
	return &AdminHandler{
		db:      db,
		builder: report.NewBuilder(db),
	}
}

// Report handles GET /admin/relatorio.
func (h *AdminHandler) Report(c *gin.Context) {
	rows, err := h.builder.Build(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ReportCSV handles GET /admin/relatorio.csv, serving the reduced column set
// as a semicolon-separated attachment.
func (h *AdminHandler) ReportCSV(c *gin.Context) {
	rows, err := h.builder.Build(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, rows); err != nil {
		log.Error("failed to write report csv", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.CSVFilename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Data handles GET /admin/dados: a raw dump of all footprints and quiz
// results for the dashboard tables.
func (h *AdminHandler) Data(c *gin.Context) {
	ctx := c.Request.Context()

	fps, err := h.db.ListFootprints(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	quizzes, err := h.db.ListQuizResults(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pegadas_carbono": lo.Map(fps, func(fp database.Footprint, _ int) gin.H {
			return gin.H{
				"id":           fp.ID,
				"transporte":   fp.Transport,
				"energia":      fp.Energy,
				"alimentacao":  fp.Food,
				"lixo":         fp.Waste,
				"total_co2":    fp.TotalCO2,
				"data_calculo": fp.CreatedAt.Format(report.TimestampFormat),
			}
		}),
		"resultados_quiz": lo.Map(quizzes, func(qr database.QuizResult, _ int) gin.H {
			return gin.H{
				"id":              qr.ID,
				"pontuacao":       qr.Score,
				"total_perguntas": qr.TotalQuestions,
				"data_realizacao": qr.CreatedAt.Format(report.TimestampFormat),
			}
		}),
	})
}

// Feedbacks handles GET /admin/feedbacks.
func (h *AdminHandler) Feedbacks(c *gin.Context) {
	rows, err := h.db.ListFeedbacks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, lo.Map(rows, func(fb database.FeedbackWithUser, _ int) gin.H {
		return gin.H{
			"id":            fb.ID,
			"usuario_nome":  fb.UserName,
			"rating":        fb.Rating,
			"text":          fb.Text,
			"quiz_score":    fb.QuizScore,
			"quiz_total":    fb.QuizTotal,
			"data_feedback": fb.UpdatedAt.Format(report.TimestampFormat),
		}
	}))
}

// DeleteActivities handles DELETE /admin/delete-activities/:userID, removing
// every activity record of a user while keeping the account.
func (h *AdminHandler) DeleteActivities(c *gin.Context) {
	userID, err := parseUintParam(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id de usuário inválido"})
		return
	}

	if err := h.db.DeleteUserActivities(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Atividades excluídas com sucesso"})
}

// DeleteUser handles DELETE /admin/delete-user/:userID. The cascade over
// activities, credential and user runs in one transaction.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, err := parseUintParam(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id de usuário inválido"})
		return
	}

	if err := h.db.DeleteUser(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Usuário excluído com sucesso"})
}

// DeleteFeedback handles DELETE /admin/delete-feedback/:id.
func (h *AdminHandler) DeleteFeedback(c *gin.Context) {
	id, err := parseUintParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id de feedback inválido"})
		return
	}

	if err := h.db.DeleteFeedback(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback excluído com sucesso"})
}
