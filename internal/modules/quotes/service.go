package quotes

import (
	"context"
	"errors"
	"time"

	"oficina/internal/domain"
	"oficina/internal/pricing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	quotes    QuoteRepository
	machines  MachineReader
	materials MaterialReader
	clients   ClientReader
	projects  ProjectReader
	settings  SettingsReader
}

func NewService(
	quotes QuoteRepository,
	machines MachineReader,
	materials MaterialReader,
	clients ClientReader,
	projects ProjectReader,
	settings SettingsReader,
) *Service {
	return &Service{
		quotes:    quotes,
		machines:  machines,
		materials: materials,
		clients:   clients,
		projects:  projects,
		settings:  settings,
	}
}

// Create opens a new pendente quote. Profit margin and tax rate are
// captured now, defaulted from the shop settings when the request leaves
// them out; later settings edits never touch this quote.
func (s *Service) Create(ctx context.Context, req CreateQuoteRequest) (*domain.Quote, error) {
	if _, err := s.clients.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	if req.ProjectID != nil {
		if _, err := s.projects.GetByID(ctx, *req.ProjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProjectNotFound
			}
			return nil, err
		}
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	var profitMargin, taxRate int64
	if cfg != nil {
		profitMargin = cfg.DefaultProfitMargin
		taxRate = cfg.DefaultTaxRate
	}
	if req.ProfitMargin != nil {
		profitMargin = *req.ProfitMargin
	}
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}

	q := &domain.Quote{
		Number:       uuid.NewString(),
		ClientID:     req.ClientID,
		ProjectID:    req.ProjectID,
		Status:       domain.QuotePending,
		ProfitMargin: profitMargin,
		TaxRate:      taxRate,
		Notes:        req.Notes,
	}
	if err := s.quotes.Create(ctx, q); err != nil {
		return nil, err
	}
	return s.quotes.GetByID(ctx, q.ID)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Quote, error) {
	return s.quotes.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, clientID int64, status string, page, limit int) ([]domain.Quote, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	quotes, total, err := s.quotes.List(ctx, clientID, status, limit, (page-1)*limit)
	return quotes, int(total), err
}

func (s *Service) AddItem(ctx context.Context, quoteID int64, req AddItemRequest) (*domain.Quote, error) {
	q, err := s.pendingQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	item := &domain.QuoteItem{
		QuoteID:          q.ID,
		Position:         nextPosition(q),
		Description:      req.Description,
		Quantity:         req.Quantity,
		MachineID:        req.MachineID,
		MaterialID:       req.MaterialID,
		PartWidthMm:      req.PartWidthMm,
		PartLengthMm:     req.PartLengthMm,
		MachineTimeHours: req.MachineTimeHours,
		SetupTimeHours:   req.SetupTimeHours,
		ToolingCost:      req.ToolingCost,
		ThirdPartyCost:   req.ThirdPartyCost,
	}

	// Price the prospective item set first so a bad reference or broken
	// value never leaves a half-written row on the quote.
	candidate := append(append([]domain.QuoteItem{}, q.Items...), *item)
	if _, err := s.computeItems(ctx, candidate, q.ProfitMargin, q.TaxRate); err != nil {
		return nil, err
	}

	if err := s.quotes.AddItem(ctx, item); err != nil {
		return nil, err
	}
	return s.refresh(ctx, q.ID)
}

func (s *Service) UpdateItem(ctx context.Context, quoteID, itemID int64, req UpdateItemRequest) (*domain.Quote, error) {
	q, err := s.pendingQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	item, err := s.quotes.GetItem(ctx, quoteID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.MachineID != nil {
		item.MachineID = *req.MachineID
	}
	if req.ClearMaterial {
		item.MaterialID = nil
	} else if req.MaterialID != nil {
		item.MaterialID = req.MaterialID
	}
	if req.PartWidthMm != nil {
		item.PartWidthMm = *req.PartWidthMm
	}
	if req.PartLengthMm != nil {
		item.PartLengthMm = *req.PartLengthMm
	}
	if req.MachineTimeHours != nil {
		item.MachineTimeHours = *req.MachineTimeHours
	}
	if req.SetupTimeHours != nil {
		item.SetupTimeHours = *req.SetupTimeHours
	}
	if req.ToolingCost != nil {
		item.ToolingCost = *req.ToolingCost
	}
	if req.ThirdPartyCost != nil {
		item.ThirdPartyCost = *req.ThirdPartyCost
	}

	candidate := make([]domain.QuoteItem, 0, len(q.Items))
	for i := range q.Items {
		if q.Items[i].ID == itemID {
			candidate = append(candidate, *item)
		} else {
			candidate = append(candidate, q.Items[i])
		}
	}
	if _, err := s.computeItems(ctx, candidate, q.ProfitMargin, q.TaxRate); err != nil {
		return nil, err
	}

	if err := s.quotes.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return s.refresh(ctx, quoteID)
}

func (s *Service) RemoveItem(ctx context.Context, quoteID, itemID int64) (*domain.Quote, error) {
	if _, err := s.pendingQuote(ctx, quoteID); err != nil {
		return nil, err
	}
	if _, err := s.quotes.GetItem(ctx, quoteID, itemID); err != nil {
		return nil, err
	}
	if err := s.quotes.DeleteItem(ctx, quoteID, itemID); err != nil {
		return nil, err
	}
	return s.refresh(ctx, quoteID)
}

// Breakdown returns the full price derivation. While the quote is
// pendente it is recomputed live from current machine, material and
// settings data; after approval or rejection the stored snapshot is
// authoritative and nothing is recomputed.
func (s *Service) Breakdown(ctx context.Context, id int64) (*pricing.QuoteTotals, error) {
	q, err := s.quotes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if q.Status != domain.QuotePending {
		return storedTotals(q), nil
	}
	return s.compute(ctx, q)
}

// Approve freezes the current totals and flips the quote to aprovado.
// The snapshot is recomputed one last time immediately before the flip,
// so the stored FinalPrice is what the client actually saw.
func (s *Service) Approve(ctx context.Context, id int64) (*domain.Quote, error) {
	return s.close(ctx, id, domain.QuoteApproved)
}

func (s *Service) Reject(ctx context.Context, id int64) (*domain.Quote, error) {
	return s.close(ctx, id, domain.QuoteRejected)
}

func (s *Service) close(ctx context.Context, id int64, status domain.QuoteStatus) (*domain.Quote, error) {
	q, err := s.pendingQuote(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.snapshot(ctx, q); err != nil {
		return nil, err
	}

	err = s.quotes.UpdateStatus(ctx, id, status, time.Now())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Lost the race to another status change.
		return nil, ErrQuoteNotPending
	}
	if err != nil {
		return nil, err
	}
	return s.quotes.GetByID(ctx, id)
}

func (s *Service) pendingQuote(ctx context.Context, id int64) (*domain.Quote, error) {
	q, err := s.quotes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.Status != domain.QuotePending {
		return nil, ErrQuoteNotPending
	}
	return q, nil
}

// refresh recomputes and persists the snapshot after an item mutation,
// then reloads the quote.
func (s *Service) refresh(ctx context.Context, quoteID int64) (*domain.Quote, error) {
	q, err := s.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if err := s.snapshot(ctx, q); err != nil {
		return nil, err
	}
	return s.quotes.GetByID(ctx, quoteID)
}

func (s *Service) snapshot(ctx context.Context, q *domain.Quote) error {
	totals, err := s.compute(ctx, q)
	if err != nil {
		return err
	}

	q.Subtotal = totals.Subtotal
	q.ProfitAmount = totals.ProfitAmount
	q.TaxAmount = totals.TaxAmount
	q.FinalPrice = totals.FinalPrice
	for i := range q.Items {
		q.Items[i].MaterialCost = totals.Items[i].MaterialCost
		q.Items[i].MachineCost = totals.Items[i].MachineCost
		q.Items[i].LaborCost = totals.Items[i].LaborCost
		q.Items[i].ItemSubtotal = totals.Items[i].ItemSubtotal
	}
	return s.quotes.SaveSnapshot(ctx, q)
}

func (s *Service) compute(ctx context.Context, q *domain.Quote) (*pricing.QuoteTotals, error) {
	return s.computeItems(ctx, q.Items, q.ProfitMargin, q.TaxRate)
}

func (s *Service) computeItems(ctx context.Context, items []domain.QuoteItem, profitMargin, taxRate int64) (*pricing.QuoteTotals, error) {
	machineIDs := make([]int64, 0, len(items))
	materialIDs := make([]int64, 0, len(items))
	for i := range items {
		machineIDs = append(machineIDs, items[i].MachineID)
		if items[i].MaterialID != nil {
			materialIDs = append(materialIDs, *items[i].MaterialID)
		}
	}

	machines := map[int64]*domain.Machine{}
	if len(machineIDs) > 0 {
		var err error
		machines, err = s.machines.GetByIDs(ctx, machineIDs)
		if err != nil {
			return nil, err
		}
	}
	materials := map[int64]*domain.Material{}
	if len(materialIDs) > 0 {
		var err error
		materials, err = s.materials.GetByIDs(ctx, materialIDs)
		if err != nil {
			return nil, err
		}
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	return pricing.ComputeQuote(items, machines, materials, cfg, profitMargin, taxRate)
}

// storedTotals rebuilds a QuoteTotals from the frozen snapshot columns.
func storedTotals(q *domain.Quote) *pricing.QuoteTotals {
	totals := &pricing.QuoteTotals{
		Items:        make([]pricing.ItemTotals, 0, len(q.Items)),
		Subtotal:     q.Subtotal,
		ProfitAmount: q.ProfitAmount,
		TaxAmount:    q.TaxAmount,
		FinalPrice:   q.FinalPrice,
	}
	for i := range q.Items {
		it := &q.Items[i]
		totals.Items = append(totals.Items, pricing.ItemTotals{
			MaterialCost: it.MaterialCost,
			MachineCost:  it.MachineCost,
			LaborCost:    it.LaborCost,
			ItemSubtotal: it.ItemSubtotal,
		})
	}
	return totals
}

func nextPosition(q *domain.Quote) int {
	max := 0
	for i := range q.Items {
		if q.Items[i].Position > max {
			max = q.Items[i].Position
		}
	}
	return max + 1
}
