package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/northpeaklabs/marketing-ops/internal/audit"
	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/middleware"
	"github.com/northpeaklabs/marketing-ops/internal/models"
)

type CaseStudyHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCaseStudyHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *CaseStudyHandler {
	return &CaseStudyHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type CaseStudyRequest struct {
	Title   string `json:"title" binding:"required"`
	Slug    string `json:"slug"`
	Excerpt string `json:"excerpt"`

	Client   string `json:"client"`
	Location string `json:"location"`
	Category string `json:"category"`
	Duration string `json:"duration"`

	Challenge string `json:"challenge"`
	Solution  string `json:"solution"`
	Results   string `json:"results"`

	FeaturedImage string     `json:"featured_image"`
	Status        string     `json:"status"`
	CompletedAt   *time.Time `json:"completed_at"`
}

// ======================================================
// PUBLIC READING
// ======================================================

func (h *CaseStudyHandler) ListPublic(c *gin.Context) {
	category := strings.TrimSpace(strings.ToLower(c.Query("category")))

	q := h.db.Model(&models.CaseStudy{}).Where("status = ?", "published")
	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	var studies []models.CaseStudy
	if err := q.
		Select("id, title, slug, excerpt, client, category, featured_image, completed_at").
		Order("completed_at DESC").
		Find(&studies).Error; err != nil {

		httperr.Internal(c, "failed_to_list_case_studies", "Could not list case studies.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"case_studies": studies, "total": len(studies)})
}

func (h *CaseStudyHandler) GetPublic(c *gin.Context) {
	slug := c.Param("slug")

	var study models.CaseStudy
	if err := h.db.
		Where("slug = ? AND status = ?", slug, "published").
		First(&study).Error; err != nil {

		httperr.NotFound(c, "case_study_not_found", "Case study not found.")
		return
	}

	h.db.Model(&study).UpdateColumn("views", gorm.Expr("views + 1"))

	c.JSON(http.StatusOK, study)
}

// ======================================================
// STAFF CRUD
// ======================================================

func (h *CaseStudyHandler) List(c *gin.Context) {
	q := h.db.Model(&models.CaseStudy{})

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var studies []models.CaseStudy
	if err := q.Order("created_at DESC").Find(&studies).Error; err != nil {
		httperr.Internal(c, "failed_to_list_case_studies", "Could not list case studies.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"case_studies": studies, "total": len(studies)})
}

func (h *CaseStudyHandler) Create(c *gin.Context) {
	var req CaseStudyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid case study payload.")
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = slugify(req.Title)
	}

	status := req.Status
	if status == "" {
		status = "draft"
	}

	study := models.CaseStudy{
		Title:         req.Title,
		Slug:          slug,
		Excerpt:       req.Excerpt,
		Client:        req.Client,
		Location:      req.Location,
		Category:      req.Category,
		Duration:      req.Duration,
		Challenge:     req.Challenge,
		Solution:      req.Solution,
		Results:       req.Results,
		FeaturedImage: req.FeaturedImage,
		Status:        status,
		CompletedAt:   req.CompletedAt,
	}

	if err := h.db.Create(&study).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Write(c, 409, "slug_already_exists", "A case study with this slug already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_case_study", "Could not save the case study.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "case_study_created",
		Entity:   "case_study",
		EntityID: &study.ID,
	})

	c.JSON(http.StatusCreated, study)
}

func (h *CaseStudyHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid case study id.")
		return
	}

	var study models.CaseStudy
	if err := h.db.First(&study, uint(id)).Error; err != nil {
		httperr.NotFound(c, "case_study_not_found", "Case study not found.")
		return
	}

	var req CaseStudyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid case study payload.")
		return
	}

	study.Title = req.Title
	if req.Slug != "" {
		study.Slug = req.Slug
	}
	study.Excerpt = req.Excerpt
	study.Client = req.Client
	study.Location = req.Location
	study.Category = req.Category
	study.Duration = req.Duration
	study.Challenge = req.Challenge
	study.Solution = req.Solution
	study.Results = req.Results
	study.FeaturedImage = req.FeaturedImage
	if req.Status != "" {
		study.Status = req.Status
	}
	if req.CompletedAt != nil {
		study.CompletedAt = req.CompletedAt
	}

	if err := h.db.Save(&study).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Write(c, 409, "slug_already_exists", "A case study with this slug already exists.")
			return
		}
		httperr.Internal(c, "failed_to_update_case_study", "Could not update the case study.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "case_study_updated",
		Entity:   "case_study",
		EntityID: &study.ID,
	})

	c.JSON(http.StatusOK, study)
}

func (h *CaseStudyHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid case study id.")
		return
	}

	var study models.CaseStudy
	if err := h.db.First(&study, uint(id)).Error; err != nil {
		httperr.NotFound(c, "case_study_not_found", "Case study not found.")
		return
	}

	if err := h.db.Delete(&study).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_case_study", "Could not delete the case study.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "case_study_deleted",
		Entity:   "case_study",
		EntityID: &study.ID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
