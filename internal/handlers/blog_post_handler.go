package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/northpeaklabs/marketing-ops/internal/audit"
	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/middleware"
	"github.com/northpeaklabs/marketing-ops/internal/models"
)

type BlogPostHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewBlogPostHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *BlogPostHandler {
	return &BlogPostHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type BlogPostRequest struct {
	Title   string `json:"title" binding:"required"`
	Slug    string `json:"slug"`
	Content string `json:"content"`
	Excerpt string `json:"excerpt"`

	FeaturedImage  string `json:"featured_image"`
	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
	ReadTime       int    `json:"read_time"`

	Status string `json:"status"`
}

// ======================================================
// PUBLIC READING
// ======================================================

func (h *BlogPostHandler) ListPublic(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "10")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	q := h.db.Model(&models.BlogPost{}).Where("status = ?", "published")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_count_posts", "Could not count posts.")
		return
	}

	var posts []models.BlogPost
	if err := q.
		Select("id, title, slug, excerpt, featured_image, published_at, read_time, views").
		Order("published_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&posts).Error; err != nil {

		httperr.Internal(c, "failed_to_list_posts", "Could not list posts.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"posts": posts,
	})
}

func (h *BlogPostHandler) GetPublic(c *gin.Context) {
	slug := c.Param("slug")

	var post models.BlogPost
	if err := h.db.
		Preload("Author").
		Where("slug = ? AND status = ?", slug, "published").
		First(&post).Error; err != nil {

		httperr.NotFound(c, "post_not_found", "Post not found.")
		return
	}

	// Fire-and-forget view counter, reads must not fail on it.
	h.db.Model(&post).UpdateColumn("views", gorm.Expr("views + 1"))

	c.JSON(http.StatusOK, post)
}

// ======================================================
// STAFF CRUD
// ======================================================

func (h *BlogPostHandler) List(c *gin.Context) {
	q := h.db.Model(&models.BlogPost{})

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var posts []models.BlogPost
	if err := q.Order("created_at DESC").Find(&posts).Error; err != nil {
		httperr.Internal(c, "failed_to_list_posts", "Could not list posts.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "total": len(posts)})
}

func (h *BlogPostHandler) Create(c *gin.Context) {
	var req BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid post payload.")
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = slugify(req.Title)
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)

	post := models.BlogPost{
		Title:          req.Title,
		Slug:           slug,
		Content:        req.Content,
		Excerpt:        req.Excerpt,
		AuthorID:       &userID,
		FeaturedImage:  req.FeaturedImage,
		Status:         "draft",
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
	}
	if req.ReadTime > 0 {
		post.ReadTime = req.ReadTime
	}

	if req.Status == "published" {
		now := time.Now().UTC()
		post.Status = "published"
		post.PublishedAt = &now
	}

	if err := h.db.Create(&post).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Write(c, 409, "slug_already_exists", "A post with this slug already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_post", "Could not save the post.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "blog_post_created",
		Entity:   "blog_post",
		EntityID: &post.ID,
	})

	c.JSON(http.StatusCreated, post)
}

func (h *BlogPostHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid post id.")
		return
	}

	var post models.BlogPost
	if err := h.db.First(&post, uint(id)).Error; err != nil {
		httperr.NotFound(c, "post_not_found", "Post not found.")
		return
	}

	var req BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid post payload.")
		return
	}

	post.Title = req.Title
	if req.Slug != "" {
		post.Slug = req.Slug
	}
	post.Content = req.Content
	post.Excerpt = req.Excerpt
	post.FeaturedImage = req.FeaturedImage
	post.SEOTitle = req.SEOTitle
	post.SEODescription = req.SEODescription
	if req.ReadTime > 0 {
		post.ReadTime = req.ReadTime
	}

	// Publishing stamps published_at once; unpublishing keeps the stamp.
	if req.Status == "published" && post.Status != "published" {
		now := time.Now().UTC()
		post.Status = "published"
		if post.PublishedAt == nil {
			post.PublishedAt = &now
		}
	} else if req.Status != "" {
		post.Status = req.Status
	}

	if err := h.db.Save(&post).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Write(c, 409, "slug_already_exists", "A post with this slug already exists.")
			return
		}
		httperr.Internal(c, "failed_to_update_post", "Could not update the post.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "blog_post_updated",
		Entity:   "blog_post",
		EntityID: &post.ID,
	})

	c.JSON(http.StatusOK, post)
}

func (h *BlogPostHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid post id.")
		return
	}

	var post models.BlogPost
	if err := h.db.First(&post, uint(id)).Error; err != nil {
		httperr.NotFound(c, "post_not_found", "Post not found.")
		return
	}

	if err := h.db.Delete(&post).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_post", "Could not delete the post.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "blog_post_deleted",
		Entity:   "blog_post",
		EntityID: &post.ID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
