package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/northpeaklabs/marketing-ops/internal/audit"
	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/middleware"
	"github.com/northpeaklabs/marketing-ops/internal/models"
)

type SettingsHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSettingsHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *SettingsHandler {
	return &SettingsHandler{db: db, audit: dispatcher}
}

type UpdateSettingsRequest struct {
	SiteName     *string `json:"site_name"`
	Tagline      *string `json:"tagline"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
	Address      *string `json:"address"`

	LinkedInURL *string `json:"linkedin_url"`
	TwitterURL  *string `json:"twitter_url"`

	BookingRefundPolicy *string `json:"booking_refund_policy"`
	MaintenanceMode     *bool   `json:"maintenance_mode"`
}

// loadOrInit returns the settings row, creating it on first access.
func (h *SettingsHandler) loadOrInit() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := h.db.First(&settings).Error

	if err == gorm.ErrRecordNotFound {
		settings = models.SiteSettings{}
		if err := h.db.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

// ======================================================
// GET (PUBLIC)
// ======================================================

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.loadOrInit()
	if err != nil {
		httperr.Internal(c, "failed_to_load_settings", "Could not load settings.")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// ======================================================
// UPDATE (STAFF)
// ======================================================

func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid settings payload.")
		return
	}

	settings, err := h.loadOrInit()
	if err != nil {
		httperr.Internal(c, "failed_to_load_settings", "Could not load settings.")
		return
	}

	if req.SiteName != nil {
		settings.SiteName = *req.SiteName
	}
	if req.Tagline != nil {
		settings.Tagline = *req.Tagline
	}
	if req.ContactEmail != nil {
		settings.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		settings.ContactPhone = *req.ContactPhone
	}
	if req.Address != nil {
		settings.Address = *req.Address
	}
	if req.LinkedInURL != nil {
		settings.LinkedInURL = *req.LinkedInURL
	}
	if req.TwitterURL != nil {
		settings.TwitterURL = *req.TwitterURL
	}
	if req.BookingRefundPolicy != nil {
		settings.BookingRefundPolicy = *req.BookingRefundPolicy
	}
	if req.MaintenanceMode != nil {
		settings.MaintenanceMode = *req.MaintenanceMode
	}

	if err := h.db.Save(settings).Error; err != nil {
		httperr.Internal(c, "failed_to_update_settings", "Could not update settings.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "settings_updated",
		Entity:   "site_settings",
		EntityID: &settings.ID,
	})

	c.JSON(http.StatusOK, settings)
}
