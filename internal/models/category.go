package models

import (
	"errors"
	"strings"
	"time"
)

const UncategorizedName = "Uncategorized"

var (
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrInvalidCategoryType  = errors.New("invalid category type")
)

// Category classifies transactions. Default categories are provided by the
// backend and cannot be deleted by the user.
type Category struct {
	ID        string          `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name      string          `gorm:"type:varchar(100);not null" json:"name"`
	Type      TransactionType `gorm:"type:varchar(10);not null" json:"type"`
	Color     string          `gorm:"type:varchar(32)" json:"color,omitempty"`
	Icon      string          `gorm:"type:varchar(64)" json:"icon,omitempty"`
	IsDefault bool            `gorm:"not null;default:false" json:"isDefault"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrCategoryNameRequired
	}
	if !IsValidTransactionType(string(c.Type)) {
		return ErrInvalidCategoryType
	}
	return nil
}

func (c *Category) CanDelete() bool {
	return !c.IsDefault
}
