package gateway

import (
	"context"
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
)

const goalsPath = "/goals"

func (c *Client) ListGoals(ctx context.Context) ([]models.Goal, error) {
	var items []dto.GoalResponse
	if err := c.call(ctx, http.MethodGet, goalsPath, nil, nil, &items); err != nil {
		return nil, err
	}
	return dto.ToGoals(items)
}

func (c *Client) CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*models.Goal, error) {
	var item dto.GoalResponse
	if err := c.call(ctx, http.MethodPost, goalsPath, nil, req, &item); err != nil {
		return nil, err
	}
	goal, err := item.ToModel()
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpdateGoalProgress adds amount to the goal's saved value.
func (c *Client) UpdateGoalProgress(ctx context.Context, id string, req dto.GoalProgressRequest) (*models.Goal, error) {
	var item dto.GoalResponse
	if err := c.call(ctx, http.MethodPut, resourcePath(goalsPath, id, "progress"), nil, req, &item); err != nil {
		return nil, err
	}
	goal, err := item.ToModel()
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (c *Client) DeleteGoal(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, resourcePath(goalsPath, id), nil, nil, nil)
}
