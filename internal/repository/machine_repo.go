package repository

import (
	"context"
	"time"

	"oficina/internal/domain"

	"gorm.io/gorm"
)

type MachineRepository struct {
	db *gorm.DB
}

func NewMachineRepository(db *gorm.DB) *MachineRepository {
	return &MachineRepository{db: db}
}

func (r *MachineRepository) Create(ctx context.Context, m *domain.Machine) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MachineRepository) GetByID(ctx context.Context, id int64) (*domain.Machine, error) {
	var m domain.Machine
	if err := r.db.WithContext(ctx).Where("deleted_at IS NULL").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByIDs loads the machines a quote references, keyed by id. Missing
// ids are simply absent; the pricing engine treats that as a dangling
// reference.
func (r *MachineRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Machine, error) {
	var machines []domain.Machine
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND deleted_at IS NULL", ids).
		Find(&machines).Error; err != nil {
		return nil, err
	}

	out := make(map[int64]*domain.Machine, len(machines))
	for i := range machines {
		out[machines[i].ID] = &machines[i]
	}
	return out, nil
}

func (r *MachineRepository) List(ctx context.Context, limit, offset int) ([]domain.Machine, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Machine{}).
		Where("deleted_at IS NULL").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var machines []domain.Machine
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&machines).Error
	return machines, total, err
}

func (r *MachineRepository) Update(ctx context.Context, m *domain.Machine) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MachineRepository) SoftDelete(ctx context.Context, id int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&domain.Machine{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now).Error
}
