package models

import "time"

// Document kinds, one JSON document per user per kind.
const (
	DocTransactions = "transactions"
	DocBudget       = "budget"
	DocEmergency    = "emergency"
	DocSettings     = "settings"
)

// Document holds one user-scoped JSON document. The whole document is
// overwritten on every save, last write wins.
type Document struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"uniqueIndex:idx_user_kind;not null"`
	Kind      string `gorm:"size:32;uniqueIndex:idx_user_kind;not null"`
	Data      string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
