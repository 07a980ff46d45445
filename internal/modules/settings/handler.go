package settings

import (
	"net/http"

	"oficina/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the read endpoint for every authenticated user;
// writing the shop configuration is an admin action.
func (h *Handler) RegisterRoutes(protected, admin *gin.RouterGroup) {
	protected.GET("/settings", h.Get)
	admin.PUT("/settings", h.Save)
}

func (h *Handler) Get(c *gin.Context) {
	cfg, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Could not load settings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"settings":   cfg,
		"configured": cfg != nil,
	})
}

// Save validates the divisor field up front: a zero or negative
// working_hours_per_year would poison every hourly-cost calculation.
// @Summary		Save shop settings
// @Tags		Settings
// @Param		request	body	SaveSettingsRequest	true	"Shop-wide configuration"
// @Success		200	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"working_hours_per_year must be positive"
// @Router		/settings [PUT]
func (h *Handler) Save(c *gin.Context) {
	var req SaveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid settings payload")
		return
	}

	cfg, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SAVE_FAILED", "Could not save settings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"settings": cfg})
}
