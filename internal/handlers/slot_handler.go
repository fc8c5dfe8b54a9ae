package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/northpeaklabs/marketing-ops/internal/audit"
	"github.com/northpeaklabs/marketing-ops/internal/cache"
	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/middleware"
	"github.com/northpeaklabs/marketing-ops/internal/models"
)

type SlotHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.SlotCache
}

func NewSlotHandler(db *gorm.DB, dispatcher *audit.Dispatcher, slotCache *cache.SlotCache) *SlotHandler {
	return &SlotHandler{db: db, audit: dispatcher, cache: slotCache}
}

// --------- Requests ---------

type CreateSlotRequest struct {
	StartTime           time.Time `json:"start_time" binding:"required"`
	DurationMinutes     int       `json:"duration_minutes"`
	Price               float64   `json:"price"`
	CommunicationMethod string    `json:"communication_method"`
	RequiresPayment     bool      `json:"requires_payment"`
	PaymentAmount       float64   `json:"payment_amount"`
}

type UpdateSlotRequest struct {
	IsAvailable         *bool    `json:"is_available"`
	Price               *float64 `json:"price"`
	CommunicationMethod *string  `json:"communication_method"`
	RequiresPayment     *bool    `json:"requires_payment"`
	PaymentAmount       *float64 `json:"payment_amount"`
}

// ======================================================
// LIST AVAILABLE (PUBLIC, CACHED)
// ======================================================

// Only future, still-open slots inside a 30 day window are exposed to the
// public site. The listing is the hottest read so it goes through redis.
func (h *SlotHandler) ListAvailable(c *gin.Context) {
	ctx := c.Request.Context()

	if slots, ok := h.cache.GetAvailable(ctx); ok {
		c.JSON(http.StatusOK, gin.H{"slots": slots, "total": len(slots)})
		return
	}

	now := time.Now().UTC()
	horizon := now.AddDate(0, 0, 30)

	var slots []models.ConsultationSlot
	if err := h.db.
		Where("is_available = true AND start_time > ? AND start_time < ?", now, horizon).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {

		httperr.Internal(c, "failed_to_list_slots", "Could not list slots.")
		return
	}

	h.cache.SetAvailable(ctx, slots)

	c.JSON(http.StatusOK, gin.H{"slots": slots, "total": len(slots)})
}

// ======================================================
// LIST ALL (STAFF)
// ======================================================

func (h *SlotHandler) List(c *gin.Context) {
	q := h.db.Model(&models.ConsultationSlot{})

	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("start_time >= ?", from)
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("start_time < ?", to.Add(24*time.Hour))
		}
	}
	if avStr := c.Query("available"); avStr != "" {
		if av, err := strconv.ParseBool(avStr); err == nil {
			q = q.Where("is_available = ?", av)
		}
	}

	var slots []models.ConsultationSlot
	if err := q.Order("start_time ASC").Find(&slots).Error; err != nil {
		httperr.Internal(c, "failed_to_list_slots", "Could not list slots.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots, "total": len(slots)})
}

// ======================================================
// CREATE (STAFF)
// ======================================================

func (h *SlotHandler) Create(c *gin.Context) {
	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid slot payload.")
		return
	}

	if req.StartTime.Before(time.Now().UTC()) {
		httperr.BadRequest(c, "slot_in_past", "Slots must start in the future.")
		return
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = 60
	}

	slot := models.ConsultationSlot{
		StartTime:           req.StartTime.UTC(),
		DurationMinutes:     duration,
		IsAvailable:         true,
		Price:               req.Price,
		CommunicationMethod: req.CommunicationMethod,
		RequiresPayment:     req.RequiresPayment,
		PaymentAmount:       req.PaymentAmount,
	}
	if slot.CommunicationMethod == "" {
		slot.CommunicationMethod = "zoom"
	}

	if err := h.db.Create(&slot).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Write(c, 409, "slot_already_exists", "A slot at this time already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_slot", "Could not save the slot.")
		return
	}

	h.cache.InvalidateAvailable(c.Request.Context())

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "slot_created",
		Entity:   "consultation_slot",
		EntityID: &slot.ID,
	})

	c.JSON(http.StatusCreated, slot)
}

// ======================================================
// UPDATE (STAFF)
// ======================================================

func (h *SlotHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid slot id.")
		return
	}

	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid slot payload.")
		return
	}

	var slot models.ConsultationSlot
	if err := h.db.First(&slot, uint(id)).Error; err != nil {
		httperr.NotFound(c, "slot_not_found", "Slot not found.")
		return
	}

	if req.IsAvailable != nil {
		slot.IsAvailable = *req.IsAvailable
	}
	if req.Price != nil {
		slot.Price = *req.Price
	}
	if req.CommunicationMethod != nil {
		slot.CommunicationMethod = *req.CommunicationMethod
	}
	if req.RequiresPayment != nil {
		slot.RequiresPayment = *req.RequiresPayment
	}
	if req.PaymentAmount != nil {
		slot.PaymentAmount = *req.PaymentAmount
	}

	if err := h.db.Save(&slot).Error; err != nil {
		httperr.Internal(c, "failed_to_update_slot", "Could not update the slot.")
		return
	}

	h.cache.InvalidateAvailable(c.Request.Context())

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "slot_updated",
		Entity:   "consultation_slot",
		EntityID: &slot.ID,
	})

	c.JSON(http.StatusOK, slot)
}

// ======================================================
// DELETE (STAFF)
// ======================================================

func (h *SlotHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid slot id.")
		return
	}

	var slot models.ConsultationSlot
	if err := h.db.First(&slot, uint(id)).Error; err != nil {
		httperr.NotFound(c, "slot_not_found", "Slot not found.")
		return
	}

	// A held slot belongs to a booking; cancel the booking first.
	if !slot.IsAvailable {
		httperr.Write(c, 409, "slot_booked", "This slot is held by a booking.")
		return
	}

	if err := h.db.Delete(&slot).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_slot", "Could not delete the slot.")
		return
	}

	h.cache.InvalidateAvailable(c.Request.Context())

	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "slot_deleted",
		Entity:   "consultation_slot",
		EntityID: &slot.ID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
