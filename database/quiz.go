package database

import (
	"context"

	"github.com/charmbracelet/log"
)

// CreateQuizResult persists one quiz run. Score is stored as submitted, even
// when it exceeds totalQuestions: out-of-range scores are accepted input
// pending a product decision, not clamped here.
func (c *Client) CreateQuizResult(ctx context.Context, userID *uint, score, totalQuestions int) (*QuizResult, error) {
	qr := QuizResult{
		UserID:         userID,
		Score:          score,
		TotalQuestions: totalQuestions,
	}
	if err := c.db.WithContext(ctx).Create(&qr).Error; err != nil {
		log.Error("failed to create quiz result", "error", err)
		return nil, err
	}
	return &qr, nil
}

// ListQuizResults returns every quiz result, oldest first.
func (c *Client) ListQuizResults(ctx context.Context) ([]QuizResult, error) {
	var results []QuizResult
	if err := c.db.WithContext(ctx).Order("id ASC").Find(&results).Error; err != nil {
		log.Error("failed to list quiz results", "error", err)
		return nil, err
	}
	return results, nil
}
