package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/models"
	"github.com/northpeaklabs/marketing-ops/internal/validators"
)

type NewsletterHandler struct {
	db *gorm.DB
}

func NewNewsletterHandler(db *gorm.DB) *NewsletterHandler {
	return &NewsletterHandler{db: db}
}

type NewsletterRequest struct {
	Email string `json:"email" binding:"required"`
}

// ======================================================
// SUBSCRIBE (PUBLIC)
// ======================================================

// Subscribing an address that already exists reactivates it instead of
// failing, so the form stays idempotent for returning visitors.
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email is required.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.HasEmailShape(email) {
		httperr.BadRequest(c, "invalid_email", "The email address is not valid.")
		return
	}

	var sub models.NewsletterSubscriber
	err := h.db.Where("email = ?", email).First(&sub).Error

	switch {
	case err == gorm.ErrRecordNotFound:
		sub = models.NewsletterSubscriber{Email: email, Active: true}
		if err := h.db.Create(&sub).Error; err != nil {
			httperr.Internal(c, "failed_to_subscribe", "Could not save the subscription.")
			return
		}

	case err != nil:
		httperr.Internal(c, "failed_to_subscribe", "Could not save the subscription.")
		return

	default:
		if !sub.Active {
			sub.Active = true
			sub.UnsubscribedAt = nil
			if err := h.db.Save(&sub).Error; err != nil {
				httperr.Internal(c, "failed_to_subscribe", "Could not save the subscription.")
				return
			}
		}
	}

	c.JSON(http.StatusCreated, gin.H{"email": sub.Email, "active": sub.Active})
}

// ======================================================
// UNSUBSCRIBE (PUBLIC)
// ======================================================

func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email is required.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var sub models.NewsletterSubscriber
	if err := h.db.Where("email = ?", email).First(&sub).Error; err != nil {
		httperr.NotFound(c, "subscriber_not_found", "This address is not subscribed.")
		return
	}

	if sub.Active {
		now := time.Now().UTC()
		sub.Active = false
		sub.UnsubscribedAt = &now
		if err := h.db.Save(&sub).Error; err != nil {
			httperr.Internal(c, "failed_to_unsubscribe", "Could not update the subscription.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"email": sub.Email, "active": sub.Active})
}
