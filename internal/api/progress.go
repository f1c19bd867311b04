package api

import (
	"context"

	"studylife/internal/models"
)

// Progress lists the user's recorded quiz attempts.
func (c *Client) Progress(ctx context.Context) ([]models.Progress, error) {
	var list []models.Progress
	if err := c.get(ctx, "/api/progress/", true, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Stats fetches the aggregate study statistics.
func (c *Client) Stats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats
	err := c.get(ctx, "/api/progress/stats", true, &stats)
	return stats, err
}
