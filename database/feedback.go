package database

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// GetFeedbackByUser returns the user's feedback record, or
// gorm.ErrRecordNotFound when they have none yet.
func (c *Client) GetFeedbackByUser(ctx context.Context, userID uint) (*Feedback, error) {
	var fb Feedback
	if err := c.db.WithContext(ctx).Where("user_id = ?", userID).First(&fb).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to get feedback", "user_id", userID, "error", err)
		}
		return nil, err
	}
	return &fb, nil
}

// UpsertFeedback stores the user's feedback, keeping at most one row per
// user. An existing row is overwritten in place with its UpdatedAt refreshed;
// otherwise a new row is inserted. The unique index on user_id closes the
// check-then-write race: if a concurrent request inserts first, our insert
// fails on the constraint and is retried as an update inside the same
// transaction. Returns the record and whether it was an update.
func (c *Client) UpsertFeedback(ctx context.Context, userID uint, rating int, text string, quizScore, quizTotal *int) (*Feedback, bool, error) {
	var fb Feedback
	var updated bool

	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ?", userID).First(&fb).Error
		switch {
		case err == nil:
			updated = true
		case errors.Is(err, gorm.ErrRecordNotFound):
			fb = Feedback{UserID: userID}
		default:
			return err
		}

		fb.Rating = rating
		fb.Text = text
		fb.QuizScore = quizScore
		fb.QuizTotal = quizTotal

		if updated {
			return tx.Save(&fb).Error
		}
		if err := tx.Create(&fb).Error; err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return err
			}
			// Lost the race against a concurrent insert; overwrite that row.
			var existing Feedback
			if err := tx.Where("user_id = ?", userID).First(&existing).Error; err != nil {
				return err
			}
			existing.Rating = rating
			existing.Text = text
			existing.QuizScore = quizScore
			existing.QuizTotal = quizTotal
			fb = existing
			updated = true
			return tx.Save(&fb).Error
		}
		return nil
	})
	if err != nil {
		log.Error("failed to upsert feedback", "user_id", userID, "error", err)
		return nil, false, err
	}
	return &fb, updated, nil
}

// ListFeedbacks returns every feedback record joined with the owner's name,
// ordered by feedback id.
func (c *Client) ListFeedbacks(ctx context.Context) ([]FeedbackWithUser, error) {
	var rows []FeedbackWithUser
	err := c.db.WithContext(ctx).
		Model(&Feedback{}).
		Select("feedbacks.*, users.name AS user_name").
		Joins("JOIN users ON users.id = feedbacks.user_id").
		Order("feedbacks.id ASC").
		Scan(&rows).Error
	if err != nil {
		log.Error("failed to list feedbacks", "error", err)
		return nil, err
	}
	return rows, nil
}

// FeedbackWithUser is a feedback row augmented with the owner's display name
// for the admin listing.
type FeedbackWithUser struct {
	Feedback
	UserName string
}

// DeleteFeedback removes a single feedback record by id.
func (c *Client) DeleteFeedback(ctx context.Context, id uint) error {
	if err := c.db.WithContext(ctx).Unscoped().Delete(&Feedback{}, id).Error; err != nil {
		log.Error("failed to delete feedback", "id", id, "error", err)
		return err
	}
	return nil
}
