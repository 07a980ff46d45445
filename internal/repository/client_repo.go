package repository

import (
	"context"
	"strings"
	"time"

	"oficina/internal/domain"

	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	var c domain.Client
	if err := r.db.WithContext(ctx).Where("deleted_at IS NULL").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// List supports a free-text search over name and company.
func (r *ClientRepository) List(ctx context.Context, search string, limit, offset int) ([]domain.Client, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Client{}).Where("deleted_at IS NULL")
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(company) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var clients []domain.Client
	err := q.Order("name ASC").Limit(limit).Offset(offset).Find(&clients).Error
	return clients, total, err
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClientRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&domain.Client{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now()).Error
}
