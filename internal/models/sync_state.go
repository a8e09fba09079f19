package models

import "time"

const (
	SyncResourceTransactions = "transactions"
	SyncResourceCategories   = "categories"
)

// SyncState records when a cached resource was last replaced from the backend.
type SyncState struct {
	Resource  string    `gorm:"type:varchar(32);primaryKey" json:"resource"`
	SyncedAt  time.Time `gorm:"not null" json:"syncedAt"`
	ItemCount int       `gorm:"not null;default:0" json:"itemCount"`
}
