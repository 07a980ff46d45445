package repository

import (
	"context"
	"time"

	"oficina/internal/domain"

	"gorm.io/gorm"
)

type MaterialRepository struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

func (r *MaterialRepository) Create(ctx context.Context, m *domain.Material) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MaterialRepository) GetByID(ctx context.Context, id int64) (*domain.Material, error) {
	var m domain.Material
	if err := r.db.WithContext(ctx).Where("deleted_at IS NULL").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MaterialRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Material, error) {
	var materials []domain.Material
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND deleted_at IS NULL", ids).
		Find(&materials).Error; err != nil {
		return nil, err
	}

	out := make(map[int64]*domain.Material, len(materials))
	for i := range materials {
		out[materials[i].ID] = &materials[i]
	}
	return out, nil
}

func (r *MaterialRepository) List(ctx context.Context, limit, offset int) ([]domain.Material, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Material{}).
		Where("deleted_at IS NULL").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var materials []domain.Material
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&materials).Error
	return materials, total, err
}

func (r *MaterialRepository) Update(ctx context.Context, m *domain.Material) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MaterialRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&domain.Material{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now()).Error
}
