// Package models holds the request and response shapes of the HTTP API.
package models

// User is the acting identity resolved from the session for the current
// request. IsAdmin is derived by comparing Username against the configured
// admin account during session resolution, never stored.
type User struct {
	ID       uint
	Username string
	Name     string
	IsAdmin  bool
}

// CalculateFootprintRequest carries the four raw activity inputs. All fields
// are required; pointers keep zero a valid submitted value under the
// "required" binding.
type CalculateFootprintRequest struct {
	Transport *float64 `json:"transporte" binding:"required"`
	Energy    *float64 `json:"energia" binding:"required"`
	Food      *int     `json:"alimentacao" binding:"required"`
	Waste     *int     `json:"lixo" binding:"required"`
}

// CalculateFootprintResponse returns the per-category emissions and total,
// rounded to two decimals for display, plus the id of the stored record.
type CalculateFootprintResponse struct {
	Transport float64 `json:"transporte"`
	Energy    float64 `json:"energia"`
	Food      float64 `json:"alimentacao"`
	Waste     float64 `json:"lixo"`
	Total     float64 `json:"total"`
	ID        uint    `json:"id"`
}

// SaveQuizRequest records one quiz run. Score is deliberately not validated
// against the question count.
type SaveQuizRequest struct {
	Score          *int `json:"pontuacao" binding:"required"`
	TotalQuestions *int `json:"total_perguntas" binding:"required"`
}

// FeedbackRequest upserts the caller's feedback. Only the rating is required.
type FeedbackRequest struct {
	Rating    *int   `json:"rating" binding:"required"`
	Text      string `json:"text"`
	QuizScore *int   `json:"quiz_score"`
	QuizTotal *int   `json:"quiz_total"`
}

// FeedbackResponse is the stored feedback as returned to its owner.
type FeedbackResponse struct {
	ID        uint   `json:"id"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
	QuizScore *int   `json:"quiz_score"`
	QuizTotal *int   `json:"quiz_total"`
	Timestamp string `json:"data_feedback"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Name            string `json:"nome" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
