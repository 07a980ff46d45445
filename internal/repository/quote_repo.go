package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"oficina/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type QuoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

func (r *QuoteRepository) Create(ctx context.Context, q *domain.Quote) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *QuoteRepository) GetByID(ctx context.Context, id int64) (*domain.Quote, error) {
	var q domain.Quote
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Client").
		First(&q, id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuoteRepository) List(ctx context.Context, clientID int64, status string, limit, offset int) ([]domain.Quote, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Quote{})
	if clientID > 0 {
		q = q.Where("client_id = ?", clientID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var quotes []domain.Quote
	err := q.Preload("Client").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&quotes).Error
	return quotes, total, err
}

func (r *QuoteRepository) AddItem(ctx context.Context, item *domain.QuoteItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *QuoteRepository) UpdateItem(ctx context.Context, item *domain.QuoteItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *QuoteRepository) GetItem(ctx context.Context, quoteID, itemID int64) (*domain.QuoteItem, error) {
	var item domain.QuoteItem
	err := r.db.WithContext(ctx).
		Where("quote_id = ? AND id = ?", quoteID, itemID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *QuoteRepository) DeleteItem(ctx context.Context, quoteID, itemID int64) error {
	return r.db.WithContext(ctx).
		Where("quote_id = ? AND id = ?", quoteID, itemID).
		Delete(&domain.QuoteItem{}).Error
}

// SaveSnapshot persists the recomputed totals for the quote header and
// the per-item cost columns together.
func (r *QuoteRepository) SaveSnapshot(ctx context.Context, q *domain.Quote) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Quote{}).Where("id = ?", q.ID).Updates(map[string]any{
			"subtotal":      q.Subtotal,
			"profit_amount": q.ProfitAmount,
			"tax_amount":    q.TaxAmount,
			"final_price":   q.FinalPrice,
			"updated_at":    time.Now(),
		}).Error; err != nil {
			return err
		}
		for i := range q.Items {
			it := &q.Items[i]
			if err := tx.Model(&domain.QuoteItem{}).Where("id = ?", it.ID).Updates(map[string]any{
				"material_cost": it.MaterialCost,
				"machine_cost":  it.MachineCost,
				"labor_cost":    it.LaborCost,
				"item_subtotal": it.ItemSubtotal,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateStatus flips the quote to a terminal status only if it is still
// pendente, so approval and rejection stay one-way even under concurrent
// requests. Returns gorm.ErrRecordNotFound when no row matched.
func (r *QuoteRepository) UpdateStatus(ctx context.Context, id int64, status domain.QuoteStatus, at time.Time) error {
	col := "approved_at"
	if status == domain.QuoteRejected {
		col = "rejected_at"
	}
	tx := r.db.WithContext(ctx).Model(&domain.Quote{}).
		Where("id = ? AND status = ?", id, domain.QuotePending).
		Updates(map[string]any{
			"status":     status,
			col:          at,
			"updated_at": at,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IsUniqueViolation recognizes duplicate-key errors from both drivers:
// code 23505 on PostgreSQL, the UNIQUE message on SQLite.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
