package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/northpeaklabs/marketing-ops/internal/audit"
	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/middleware"
	"github.com/northpeaklabs/marketing-ops/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type ServiceRequest struct {
	Name             string  `json:"name" binding:"required"`
	Slug             string  `json:"slug"`
	Description      string  `json:"description"`
	ShortDescription string  `json:"short_description"`
	Category         string  `json:"category"`
	BasePrice        float64 `json:"base_price"`
	EstimatedDuration string `json:"estimated_duration"`
	Status           string  `json:"status"`
	Featured         bool    `json:"featured"`
	DisplayOrder     int     `json:"display_order"`
	Icon             string  `json:"icon"`
}

// ======================================================
// PUBLIC LISTING
// ======================================================

func (h *ServiceHandler) ListPublic(c *gin.Context) {
	category := strings.TrimSpace(strings.ToLower(c.Query("category")))

	q := h.db.Where("status = ?", "active")
	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}
	if c.Query("featured") == "true" {
		q = q.Where("featured = true")
	}

	var services []models.Service
	if err := q.
		Order("display_order ASC, name ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services, "total": len(services)})
}

func (h *ServiceHandler) GetPublic(c *gin.Context) {
	slug := c.Param("slug")

	var service models.Service
	if err := h.db.
		Where("slug = ? AND status = ?", slug, "active").
		First(&service).Error; err != nil {

		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	c.JSON(http.StatusOK, service)
}

// ======================================================
// STAFF CRUD
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = slugify(req.Name)
	}

	status := req.Status
	if status == "" {
		status = "active"
	}

	service := models.Service{
		Name:              req.Name,
		Slug:              slug,
		Description:       req.Description,
		ShortDescription:  req.ShortDescription,
		Category:          req.Category,
		BasePrice:         req.BasePrice,
		EstimatedDuration: req.EstimatedDuration,
		Status:            status,
		Featured:          req.Featured,
		DisplayOrder:      req.DisplayOrder,
		Icon:              req.Icon,
	}

	if err := h.db.Create(&service).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Write(c, 409, "slug_already_exists", "A service with this slug already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_service", "Could not save the service.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &service.ID,
	})

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, uint(id)).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	service.Name = req.Name
	if req.Slug != "" {
		service.Slug = req.Slug
	}
	service.Description = req.Description
	service.ShortDescription = req.ShortDescription
	service.Category = req.Category
	service.BasePrice = req.BasePrice
	service.EstimatedDuration = req.EstimatedDuration
	if req.Status != "" {
		service.Status = req.Status
	}
	service.Featured = req.Featured
	service.DisplayOrder = req.DisplayOrder
	service.Icon = req.Icon

	if err := h.db.Save(&service).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Write(c, 409, "slug_already_exists", "A service with this slug already exists.")
			return
		}
		httperr.Internal(c, "failed_to_update_service", "Could not update the service.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &service.ID,
	})

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, uint(id)).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	if err := h.db.Delete(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete the service.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &service.ID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
