package database

import (
	"context"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// The latest-per-user queries below back the admin report. Each runs a single
// ordered scan per entity type instead of one query per user, so building the
// report stays linear in the table sizes. "Latest" means the maximum
// (created_at, id) pair; the id tie-break keeps the choice deterministic when
// timestamps collide at the stored precision.

// LatestFootprintPerUser returns each user's most recent footprint record.
// Anonymous records (nil UserID) never attach to a user and are skipped.
func (c *Client) LatestFootprintPerUser(ctx context.Context) (map[uint]Footprint, error) {
	var rows []Footprint
	if err := c.latestQuery(ctx, &Footprint{}).Find(&rows).Error; err != nil {
		log.Error("failed to query latest footprints", "error", err)
		return nil, err
	}
	latest := make(map[uint]Footprint, len(rows))
	for _, r := range rows {
		if r.UserID == nil {
			continue
		}
		if _, ok := latest[*r.UserID]; !ok {
			latest[*r.UserID] = r
		}
	}
	return latest, nil
}

// LatestQuizResultPerUser returns each user's most recent quiz result.
func (c *Client) LatestQuizResultPerUser(ctx context.Context) (map[uint]QuizResult, error) {
	var rows []QuizResult
	if err := c.latestQuery(ctx, &QuizResult{}).Find(&rows).Error; err != nil {
		log.Error("failed to query latest quiz results", "error", err)
		return nil, err
	}
	latest := make(map[uint]QuizResult, len(rows))
	for _, r := range rows {
		if r.UserID == nil {
			continue
		}
		if _, ok := latest[*r.UserID]; !ok {
			latest[*r.UserID] = r
		}
	}
	return latest, nil
}

// LatestFeedbackPerUser returns each user's most recent feedback. The unique
// constraint keeps this to one row per user already, but the ordering rule is
// applied the same way as for the other entity types.
func (c *Client) LatestFeedbackPerUser(ctx context.Context) (map[uint]Feedback, error) {
	var rows []Feedback
	if err := c.latestQuery(ctx, &Feedback{}).Find(&rows).Error; err != nil {
		log.Error("failed to query latest feedbacks", "error", err)
		return nil, err
	}
	latest := make(map[uint]Feedback, len(rows))
	for _, r := range rows {
		if _, ok := latest[r.UserID]; !ok {
			latest[r.UserID] = r
		}
	}
	return latest, nil
}

func (c *Client) latestQuery(ctx context.Context, model any) *gorm.DB {
	return c.db.WithContext(ctx).
		Model(model).
		Where("user_id IS NOT NULL").
		Order("user_id ASC, created_at DESC, id DESC")
}
