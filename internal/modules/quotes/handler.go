package quotes

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"oficina/internal/domain"
	"oficina/internal/pkg/response"
	"oficina/internal/pricing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	group := protected.Group("/quotes")
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/:id", h.Get)
		group.GET("/:id/breakdown", h.Breakdown)
		group.POST("/:id/approve", h.Approve)
		group.POST("/:id/reject", h.Reject)
		group.POST("/:id/items", h.AddItem)
		group.PUT("/:id/items/:itemId", h.UpdateItem)
		group.DELETE("/:id/items/:itemId", h.RemoveItem)
	}
}

// Create opens a quote in pendente with margins captured from the shop
// defaults.
// @Summary		Create quote
// @Tags		Quotes
// @Param		request	body	CreateQuoteRequest	true	"Client, optional project, optional margin overrides"
// @Success		201	{object}	map[string]interface{}
// @Failure		422	{object}	map[string]interface{}	"Client or project does not exist"
// @Router		/quotes [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	quote, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrClientNotFound):
			response.Error(c, http.StatusUnprocessableEntity, "CLIENT_NOT_FOUND", "Referenced client does not exist")
		case errors.Is(err, ErrProjectNotFound):
			response.Error(c, http.StatusUnprocessableEntity, "PROJECT_NOT_FOUND", "Referenced project does not exist")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Could not create quote")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"quote": quote})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid quote id")
		return
	}

	quote, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Quote not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Could not load quote")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quote": quote})
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	clientID, _ := strconv.ParseInt(c.Query("client_id"), 10, 64)
	status := c.Query("status")

	quotes, total, err := h.service.List(c.Request.Context(), clientID, status, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Could not list quotes")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"quotes": quotes,
		"total":  total,
	})
}

// Breakdown returns the full price derivation, live while pendente and
// frozen afterwards.
// @Summary		Quote price breakdown
// @Tags		Quotes
// @Param		id	path	int	true	"Quote ID"
// @Success		200	{object}	map[string]interface{}
// @Failure		422	{object}	map[string]interface{}	"An item references missing data or a zero-divisor config"
// @Router		/quotes/{id}/breakdown [GET]
func (h *Handler) Breakdown(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid quote id")
		return
	}

	totals, err := h.service.Breakdown(c.Request.Context(), id)
	if err != nil {
		h.writeComputeError(c, err, "Could not compute quote breakdown")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"breakdown": totals})
}

func (h *Handler) AddItem(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid quote id")
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	quote, err := h.service.AddItem(c.Request.Context(), id, req)
	if err != nil {
		h.writeComputeError(c, err, "Could not add quote item")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"quote": quote})
}

func (h *Handler) UpdateItem(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid quote id")
		return
	}
	itemID, err := parseID(c, "itemId")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid item id")
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	quote, err := h.service.UpdateItem(c.Request.Context(), id, itemID, req)
	if err != nil {
		h.writeComputeError(c, err, "Could not update quote item")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quote": quote})
}

func (h *Handler) RemoveItem(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid quote id")
		return
	}
	itemID, err := parseID(c, "itemId")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid item id")
		return
	}

	quote, err := h.service.RemoveItem(c.Request.Context(), id, itemID)
	if err != nil {
		h.writeComputeError(c, err, "Could not remove quote item")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quote": quote})
}

// Approve flips pendente to aprovado and freezes the totals.
// @Summary		Approve quote
// @Tags		Quotes
// @Param		id	path	int	true	"Quote ID"
// @Success		200	{object}	map[string]interface{}
// @Failure		409	{object}	map[string]interface{}	"Quote already approved or rejected"
// @Router		/quotes/{id}/approve [POST]
func (h *Handler) Approve(c *gin.Context) {
	h.closeQuote(c, h.service.Approve)
}

func (h *Handler) Reject(c *gin.Context) {
	h.closeQuote(c, h.service.Reject)
}

func (h *Handler) closeQuote(c *gin.Context, fn func(ctx context.Context, id int64) (*domain.Quote, error)) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid quote id")
		return
	}

	quote, err := fn(c.Request.Context(), id)
	if err != nil {
		h.writeComputeError(c, err, "Could not change quote status")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quote": quote})
}

func parseID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

func (h *Handler) writeComputeError(c *gin.Context, err error, fallback string) {
	var verr *pricing.ValidationError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Quote or item not found")
	case errors.Is(err, ErrQuoteNotPending):
		response.Error(c, http.StatusConflict, "QUOTE_NOT_PENDING", "Quote has already been approved or rejected")
	case errors.As(err, &verr):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "INVALID_ITEM", "A quote item failed validation", gin.H{
			"field":  verr.Field,
			"reason": verr.Reason,
		})
	case errors.Is(err, pricing.ErrZeroDivisorConfig):
		response.Error(c, http.StatusUnprocessableEntity, "ZERO_DIVISOR_CONFIG", "Machine or settings have a zero divisor")
	default:
		response.Error(c, http.StatusInternalServerError, "QUOTE_FAILED", fallback)
	}
}
