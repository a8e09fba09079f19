package gateway

import (
	"context"
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
)

const transactionsPath = "/transactions"

func (c *Client) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	var items []dto.TransactionResponse
	if err := c.call(ctx, http.MethodGet, transactionsPath, nil, nil, &items); err != nil {
		return nil, err
	}
	return dto.ToTransactions(items)
}

func (c *Client) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	var item dto.TransactionResponse
	if err := c.call(ctx, http.MethodPost, transactionsPath, nil, req, &item); err != nil {
		return nil, err
	}
	t, err := item.ToModel()
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTransaction sends a partial update; only non-nil fields are changed.
func (c *Client) UpdateTransaction(ctx context.Context, id string, req dto.UpdateTransactionRequest) (*models.Transaction, error) {
	var item dto.TransactionResponse
	if err := c.call(ctx, http.MethodPut, resourcePath(transactionsPath, id), nil, req, &item); err != nil {
		return nil, err
	}
	t, err := item.ToModel()
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, resourcePath(transactionsPath, id), nil, nil, nil)
}
