package gateway

import (
	"context"
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
)

const investmentsPath = "/investments"

func (c *Client) ListInvestments(ctx context.Context) ([]models.Investment, error) {
	var items []dto.InvestmentResponse
	if err := c.call(ctx, http.MethodGet, investmentsPath, nil, nil, &items); err != nil {
		return nil, err
	}
	return dto.ToInvestments(items)
}

func (c *Client) CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest) (*models.Investment, error) {
	var item dto.InvestmentResponse
	if err := c.call(ctx, http.MethodPost, investmentsPath, nil, req, &item); err != nil {
		return nil, err
	}
	return toInvestment(item)
}

func (c *Client) UpdateInvestment(ctx context.Context, id string, req dto.UpdateInvestmentRequest) (*models.Investment, error) {
	var item dto.InvestmentResponse
	if err := c.call(ctx, http.MethodPut, resourcePath(investmentsPath, id), nil, req, &item); err != nil {
		return nil, err
	}
	return toInvestment(item)
}

func (c *Client) DeleteInvestment(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, resourcePath(investmentsPath, id), nil, nil, nil)
}

func toInvestment(item dto.InvestmentResponse) (*models.Investment, error) {
	investment, err := item.ToModel()
	if err != nil {
		return nil, err
	}
	return &investment, nil
}
