package repository

import (
	"context"
	"errors"

	"oficina/internal/domain"

	"gorm.io/gorm"
)

// SettingsRepository manages the single ShopSettings row. Get returns
// (nil, nil) when the shop has never been configured; the pricing layer
// has a defined policy for that.
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context) (*domain.ShopSettings, error) {
	var s domain.ShopSettings
	err := r.db.WithContext(ctx).Order("id ASC").First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Save upserts the singleton row.
func (r *SettingsRepository) Save(ctx context.Context, s *domain.ShopSettings) error {
	existing, err := r.Get(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		s.ID = existing.ID
		return r.db.WithContext(ctx).Save(s).Error
	}
	return r.db.WithContext(ctx).Create(s).Error
}
