package database

import (
	"context"

	"github.com/charmbracelet/log"
)

// CreateFootprint persists a single calculation. userID is nil for anonymous
// callers; the record is still stored.
func (c *Client) CreateFootprint(ctx context.Context, userID *uint, transport, energy float64, food, waste int, totalCO2 float64) (*Footprint, error) {
	fp := Footprint{
		UserID:    userID,
		Transport: transport,
		Energy:    energy,
		Food:      food,
		Waste:     waste,
		TotalCO2:  totalCO2,
	}
	if err := c.db.WithContext(ctx).Create(&fp).Error; err != nil {
		log.Error("failed to create footprint", "error", err)
		return nil, err
	}
	return &fp, nil
}

// ListFootprints returns every footprint record, oldest first.
func (c *Client) ListFootprints(ctx context.Context) ([]Footprint, error) {
	var fps []Footprint
	if err := c.db.WithContext(ctx).Order("id ASC").Find(&fps).Error; err != nil {
		log.Error("failed to list footprints", "error", err)
		return nil, err
	}
	return fps, nil
}
