package entity

import (
	"time"

	"github.com/google/uuid"
)

// UsageRecord tracks how often a user called a provider and when the
// last call happened. One record per (user, provider) pair, created
// lazily on the first successful call. Counts only ever grow.
type UsageRecord struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_api"`
	APIName    string    `json:"api_name" gorm:"type:varchar(50);not null;uniqueIndex:idx_user_api"`
	UsageCount int64     `json:"usage_count" gorm:"default:0"`
	LastUsedAt time.Time `json:"last_used" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for GORM
func (UsageRecord) TableName() string {
	return "usage_records"
}

// NewUsageRecord creates a record for the first call of a (user, provider) pair.
func NewUsageRecord(userID uuid.UUID, apiName string, at time.Time) *UsageRecord {
	return &UsageRecord{
		ID:         uuid.New(),
		UserID:     userID,
		APIName:    apiName,
		UsageCount: 1,
		LastUsedAt: at,
	}
}

// Touch increments the counter and moves the last-used timestamp forward.
func (r *UsageRecord) Touch(at time.Time) {
	r.UsageCount++
	if at.After(r.LastUsedAt) {
		r.LastUsedAt = at
	}
}
