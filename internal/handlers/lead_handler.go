package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/northpeaklabs/marketing-ops/internal/audit"
	leaddomain "github.com/northpeaklabs/marketing-ops/internal/domain/lead"
	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/middleware"
	"github.com/northpeaklabs/marketing-ops/internal/models"
	"github.com/northpeaklabs/marketing-ops/internal/validators"
)

type LeadHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewLeadHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *LeadHandler {
	return &LeadHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type CreateLeadRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Name      string `json:"name"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`

	ProjectType string   `json:"project_type"`
	Budget      *float64 `json:"budget"`
	Timeline    string   `json:"timeline"`
	Description string   `json:"description"`

	Source      string `json:"source"`
	ReferrerURL string `json:"referrer_url"`
	LandingPage string `json:"landing_page"`
	UTMSource   string `json:"utm_source"`
	UTMMedium   string `json:"utm_medium"`
	UTMCampaign string `json:"utm_campaign"`
}

type QuickContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateLeadRequest struct {
	Priority         *string    `json:"priority"`
	Notes            *string    `json:"notes"`
	NextFollowupDate *time.Time `json:"next_followup_date"`
	LastContactDate  *time.Time `json:"last_contact_date"`
}

// ======================================================
// CREATE LEAD (PUBLIC FORM)
// ======================================================

func (h *LeadHandler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid lead payload.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.HasEmailShape(email) {
		httperr.BadRequest(c, "invalid_email", "The email address is not valid.")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.TrimSpace(req.FirstName + " " + req.LastName)
	}

	source := req.Source
	if source == "" {
		source = "website"
	}

	lead := models.Lead{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Name:        name,
		Email:       email,
		Phone:       req.Phone,
		Company:     req.Company,
		ProjectType: req.ProjectType,
		Budget:      req.Budget,
		Timeline:    req.Timeline,
		Description: req.Description,
		Source:      source,
		Status:      string(leaddomain.StatusNew),
		ReferrerURL: req.ReferrerURL,
		LandingPage: req.LandingPage,
		UTMSource:   req.UTMSource,
		UTMMedium:   req.UTMMedium,
		UTMCampaign: req.UTMCampaign,
	}

	if err := h.db.Create(&lead).Error; err != nil {
		httperr.Internal(c, "failed_to_create_lead", "Could not save the lead.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "lead_created",
		Entity:   "lead",
		EntityID: &lead.ID,
	})

	c.JSON(http.StatusCreated, lead)
}

// ======================================================
// QUICK CONTACT (PUBLIC FORM, MINIMAL FIELDS)
// ======================================================

func (h *LeadHandler) QuickContact(c *gin.Context) {
	var req QuickContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, email and message are required.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.HasEmailShape(email) {
		httperr.BadRequest(c, "invalid_email", "The email address is not valid.")
		return
	}

	lead := models.Lead{
		Name:        strings.TrimSpace(req.Name),
		Email:       email,
		Description: req.Message,
		Source:      "quick_contact",
		Status:      string(leaddomain.StatusNew),
	}

	if err := h.db.Create(&lead).Error; err != nil {
		httperr.Internal(c, "failed_to_create_lead", "Could not save the message.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "lead_created",
		Entity:   "lead",
		EntityID: &lead.ID,
	})

	c.JSON(http.StatusCreated, gin.H{"id": lead.ID, "status": lead.Status})
}

// ======================================================
// LIST LEADS (STAFF)
// ======================================================

func (h *LeadHandler) List(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	source := strings.TrimSpace(c.Query("source"))
	priority := strings.TrimSpace(c.Query("priority"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	q := h.db.Model(&models.Lead{})

	if status != "" {
		q = q.Where("status = ?", status)
	}
	if source != "" {
		q = q.Where("source = ?", source)
	}
	if priority != "" {
		q = q.Where("priority = ?", priority)
	}
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(company) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_count_leads", "Could not count leads.")
		return
	}

	var leads []models.Lead
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&leads).Error; err != nil {

		httperr.Internal(c, "failed_to_list_leads", "Could not list leads.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"leads": leads,
	})
}

// ======================================================
// GET LEAD (STAFF)
// ======================================================

func (h *LeadHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid lead id.")
		return
	}

	var lead models.Lead
	if err := h.db.First(&lead, uint(id)).Error; err != nil {
		httperr.NotFound(c, "lead_not_found", "Lead not found.")
		return
	}

	c.JSON(http.StatusOK, lead)
}

// ======================================================
// UPDATE STATUS (STAFF, PIPELINE TRANSITION)
// ======================================================

func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid lead id.")
		return
	}

	var req UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	var lead models.Lead
	if err := h.db.First(&lead, uint(id)).Error; err != nil {
		httperr.NotFound(c, "lead_not_found", "Lead not found.")
		return
	}

	if err := leaddomain.ApplyStatus(&lead, leaddomain.Status(req.Status), time.Now().UTC()); err != nil {
		mapBusinessError(c, err)
		return
	}

	if err := h.db.Save(&lead).Error; err != nil {
		httperr.Internal(c, "failed_to_update_lead", "Could not update the lead.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "lead_status_changed",
		Entity:   "lead",
		EntityID: &lead.ID,
		Metadata: gin.H{"status": lead.Status},
	})

	c.JSON(http.StatusOK, lead)
}

// ======================================================
// UPDATE LEAD FIELDS (STAFF)
// ======================================================

func (h *LeadHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid lead id.")
		return
	}

	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid lead payload.")
		return
	}

	var lead models.Lead
	if err := h.db.First(&lead, uint(id)).Error; err != nil {
		httperr.NotFound(c, "lead_not_found", "Lead not found.")
		return
	}

	if req.Priority != nil {
		switch *req.Priority {
		case "low", "medium", "high":
			lead.Priority = *req.Priority
		default:
			httperr.BadRequest(c, "invalid_priority", "Priority must be low, medium or high.")
			return
		}
	}
	if req.Notes != nil {
		lead.Notes = *req.Notes
	}
	if req.NextFollowupDate != nil {
		lead.NextFollowupDate = req.NextFollowupDate
	}
	if req.LastContactDate != nil {
		lead.LastContactDate = req.LastContactDate
	}

	if err := h.db.Save(&lead).Error; err != nil {
		httperr.Internal(c, "failed_to_update_lead", "Could not update the lead.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "lead_updated",
		Entity:   "lead",
		EntityID: &lead.ID,
	})

	c.JSON(http.StatusOK, lead)
}
