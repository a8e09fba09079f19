package gateway

import (
	"context"
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
)

const categoriesPath = "/categories"

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var items []dto.CategoryResponse
	if err := c.call(ctx, http.MethodGet, categoriesPath, nil, nil, &items); err != nil {
		return nil, err
	}
	return dto.ToCategories(items), nil
}

func (c *Client) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*models.Category, error) {
	var item dto.CategoryResponse
	if err := c.call(ctx, http.MethodPost, categoriesPath, nil, req, &item); err != nil {
		return nil, err
	}
	category := item.ToModel()
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, resourcePath(categoriesPath, id), nil, nil, nil)
}
