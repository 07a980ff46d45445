package projects

import (
	"errors"
	"net/http"
	"strconv"

	"oficina/internal/domain"
	"oficina/internal/pkg/response"

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
	group := protected.Group("/projects")
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.PATCH("/:id/status", h.UpdateStatus)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	project, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			response.Error(c, http.StatusUnprocessableEntity, "CLIENT_NOT_FOUND", "Referenced client does not exist")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Could not create project")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"project": project})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid project id")
		return
	}

	project, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Could not load project")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"project": project})
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	clientID, _ := strconv.ParseInt(c.Query("client_id"), 10, 64)
	status := c.Query("status")

	projects, total, err := h.service.List(c.Request.Context(), clientID, status, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Could not list projects")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"projects": projects,
		"total":    total,
	})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid project id")
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	project, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Could not update project")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"project": project})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid project id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status must be ativo, concluido or arquivado")
		return
	}

	project, err := h.service.UpdateStatus(c.Request.Context(), id, domain.ProjectStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		case errors.Is(err, ErrInvalidStatusChange):
			response.Error(c, http.StatusConflict, "INVALID_STATUS_CHANGE", "This status transition is not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Could not update project status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"project": project})
}
