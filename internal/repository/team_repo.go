package repository

import (
	"context"
	"time"

	"oficina/internal/domain"

	"gorm.io/gorm"
)

type TeamMemberRepository struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

func (r *TeamMemberRepository) Create(ctx context.Context, m *domain.TeamMember) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *TeamMemberRepository) GetByID(ctx context.Context, id int64) (*domain.TeamMember, error) {
	var m domain.TeamMember
	if err := r.db.WithContext(ctx).Where("deleted_at IS NULL").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *TeamMemberRepository) List(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.TeamMember, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.TeamMember{}).Where("deleted_at IS NULL")
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []domain.TeamMember
	err := q.Order("name ASC").Limit(limit).Offset(offset).Find(&members).Error
	return members, total, err
}

func (r *TeamMemberRepository) Update(ctx context.Context, m *domain.TeamMember) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *TeamMemberRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&domain.TeamMember{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now()).Error
}
