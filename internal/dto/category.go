package dto

import (
	"finance-tracker/internal/models"
)

// CreateCategoryRequest is the body of POST /categories
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Type  string `json:"type" validate:"required,category_type"`
	Color string `json:"color,omitempty" validate:"omitempty,max=32"`
	Icon  string `json:"icon,omitempty" validate:"omitempty,max=64"`
}

// CategoryResponse is a category as returned by the backend
type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Color     string `json:"color,omitempty"`
	Icon      string `json:"icon,omitempty"`
	IsDefault bool   `json:"isDefault"`
}

// ToModel converts the wire shape. The backend spells the type in either case.
func (r CategoryResponse) ToModel() models.Category {
	c := models.Category{
		ID:        r.ID,
		Name:      r.Name,
		Type:      models.TransactionType(r.Type),
		Color:     r.Color,
		Icon:      r.Icon,
		IsDefault: r.IsDefault,
	}
	if t, ok := models.ParseTransactionType(r.Type); ok {
		c.Type = t
	}
	return c
}

func ToCategories(items []CategoryResponse) []models.Category {
	result := make([]models.Category, 0, len(items))
	for _, item := range items {
		result = append(result, item.ToModel())
	}
	return result
}
