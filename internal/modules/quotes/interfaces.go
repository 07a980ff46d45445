package quotes

import (
	"context"
	"time"

	"oficina/internal/domain"
)

type QuoteRepository interface {
	Create(ctx context.Context, q *domain.Quote) error
	GetByID(ctx context.Context, id int64) (*domain.Quote, error)
	List(ctx context.Context, clientID int64, status string, limit, offset int) ([]domain.Quote, int64, error)
	AddItem(ctx context.Context, item *domain.QuoteItem) error
	GetItem(ctx context.Context, quoteID, itemID int64) (*domain.QuoteItem, error)
	UpdateItem(ctx context.Context, item *domain.QuoteItem) error
	DeleteItem(ctx context.Context, quoteID, itemID int64) error
	SaveSnapshot(ctx context.Context, q *domain.Quote) error
	UpdateStatus(ctx context.Context, id int64, status domain.QuoteStatus, at time.Time) error
}

type MachineReader interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Machine, error)
}

type MaterialReader interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Material, error)
}

type ClientReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

type ProjectReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
}

type SettingsReader interface {
	Get(ctx context.Context) (*domain.ShopSettings, error)
}
