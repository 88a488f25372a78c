package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"textgate/internal/domain/entity"
	"textgate/internal/domain/repository"
)

type usageRepository struct {
	db *gorm.DB
}

// NewUsageRepository creates a new usage repository
func NewUsageRepository(db *gorm.DB) repository.UsageRepository {
	return &usageRepository{db: db}
}

func (r *usageRepository) GetByUserAndAPI(ctx context.Context, userID uuid.UUID, apiName string) (*entity.UsageRecord, error) {
	var record entity.UsageRecord
	err := r.db.WithContext(ctx).First(&record, "user_id = ? AND api_name = ?", userID, apiName).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *usageRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UsageRecord, error) {
	var records []*entity.UsageRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("api_name ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *usageRepository) Create(ctx context.Context, record *entity.UsageRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *usageRepository) Update(ctx context.Context, record *entity.UsageRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}
