package clients

import (
	"context"
	"fmt"

	"github.com/mertkaradayi/gradecore/internal/app/models"
)

// EvaluationClient reads evaluation items from the evaluation service.
type EvaluationClient struct {
	client *baseClient
}

// GetItemsByGroup loads all evaluation items belonging to a group.
func (c *EvaluationClient) GetItemsByGroup(ctx context.Context, groupID string) ([]*models.EvaluationItem, error) {
	var payload struct {
		Items []*models.EvaluationItem `json:"items"`
	}
	path := fmt.Sprintf("/evaluation-items/by-group/%s", groupID)
	if err := c.client.getJSON(ctx, path, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}
