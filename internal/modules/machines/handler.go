package machines

import (
	"errors"
	"net/http"
	"strconv"

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
	group := protected.Group("/machines")
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
		group.GET("/:id/hourly-cost", h.HourlyCost)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	machine, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Residual value cannot exceed purchase value")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Could not create machine")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"machine": machine})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid machine id")
		return
	}

	machine, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Machine not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Could not load machine")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"machine": machine})
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	machines, total, err := h.service.List(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Could not list machines")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"machines": machines,
		"total":    total,
	})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid machine id")
		return
	}

	var req UpdateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	machine, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Machine not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid machine fields")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Could not update machine")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"machine": machine})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid machine id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Machine not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Could not delete machine")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "deleted"})
}

// HourlyCost returns the per-term cost breakdown.
// @Summary		Machine hourly cost breakdown
// @Tags		Machines
// @Param		id	path	int	true	"Machine ID"
// @Success		200	{object}	map[string]interface{}	"Hourly cost breakdown in minor units"
// @Failure		422	{object}	map[string]interface{}	"Settings or machine have a zero divisor"
// @Router		/machines/{id}/hourly-cost [GET]
func (h *Handler) HourlyCost(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid machine id")
		return
	}

	breakdown, err := h.service.HourlyCost(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Machine not found")
		case errors.Is(err, pricing.ErrZeroDivisorConfig):
			response.Error(c, http.StatusUnprocessableEntity, "ZERO_DIVISOR_CONFIG", "Useful life or working hours per year is not positive")
		default:
			response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Could not compute hourly cost")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hourly_cost": breakdown})
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
