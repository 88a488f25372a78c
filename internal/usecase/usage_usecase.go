package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"textgate/internal/domain/repository"
)

// UsageOutput is one row of the usage ledger as served to clients.
type UsageOutput struct {
	APIName    string `json:"api_name"`
	UsageCount int64  `json:"usage_count"`
	LastUsed   string `json:"last_used"`
}

// UsageUsecase defines the interface for reading the usage ledger
type UsageUsecase interface {
	// List returns the user's usage records ordered by api_name, so
	// repeated calls are stable absent new activity.
	List(ctx context.Context, userID uuid.UUID) ([]*UsageOutput, error)
}

type usageUsecase struct {
	usageRepo repository.UsageRepository
}

// NewUsageUsecase creates a new usage usecase
func NewUsageUsecase(usageRepo repository.UsageRepository) UsageUsecase {
	return &usageUsecase{usageRepo: usageRepo}
}

func (u *usageUsecase) List(ctx context.Context, userID uuid.UUID) ([]*UsageOutput, error) {
	records, err := u.usageRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	outputs := make([]*UsageOutput, len(records))
	for i, r := range records {
		outputs[i] = &UsageOutput{
			APIName:    r.APIName,
			UsageCount: r.UsageCount,
			LastUsed:   r.LastUsedAt.UTC().Format(time.RFC3339),
		}
	}
	return outputs, nil
}
