package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/northpeaklabs/marketing-ops/internal/dto"
	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/httpresp"
	"github.com/northpeaklabs/marketing-ops/internal/middleware"
	"github.com/northpeaklabs/marketing-ops/internal/models"
	"github.com/northpeaklabs/marketing-ops/internal/usecase/booking"
)

type BookingHandler struct {
	db         *gorm.DB
	create     *booking.CreateBooking
	cancel     *booking.CancelBooking
	complete   *booking.CompleteBooking
	markNoShow *booking.MarkNoShow
}

func NewBookingHandler(
	db *gorm.DB,
	create *booking.CreateBooking,
	cancel *booking.CancelBooking,
	complete *booking.CompleteBooking,
	markNoShow *booking.MarkNoShow,
) *BookingHandler {
	return &BookingHandler{
		db:         db,
		create:     create,
		cancel:     cancel,
		complete:   complete,
		markNoShow: markNoShow,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	SlotID uint  `json:"slot_id" binding:"required"`
	LeadID *uint `json:"lead_id"`

	LeadName    string `json:"lead_name"`
	LeadEmail   string `json:"lead_email"`
	LeadPhone   string `json:"lead_phone"`
	LeadCompany string `json:"lead_company"`

	Notes string `json:"notes"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// CREATE (PUBLIC)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), booking.CreateBookingInput{
		SlotID:      req.SlotID,
		LeadID:      req.LeadID,
		LeadName:    req.LeadName,
		LeadEmail:   req.LeadEmail,
		LeadPhone:   req.LeadPhone,
		LeadCompany: req.LeadCompany,
		Notes:       req.Notes,
	})
	if err != nil {
		if mapBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_booking", "Could not create the booking.")
		return
	}

	// Reload with slot and lead for the confirmation screen.
	var full models.Booking
	if err := h.db.Preload("Slot").Preload("Lead").First(&full, b.ID).Error; err == nil {
		httpresp.Created(c, full)
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// LIST (STAFF)
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))

	q := h.db.Model(&models.Booking{}).
		Preload("Slot").
		Preload("Lead")

	if status != "" {
		q = q.Where("bookings.status = ?", status)
	}

	var bookings []models.Booking
	if err := q.
		Joins("JOIN consultation_slots ON consultation_slots.id = bookings.slot_id").
		Order("consultation_slots.start_time ASC").
		Find(&bookings).Error; err != nil {

		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:              b.ID,
			StartTime:       b.Slot.StartTime,
			DurationMinutes: b.Slot.DurationMinutes,
			Status:          b.Status,
			LeadName:        b.Lead.Name,
			LeadEmail:       b.Lead.Email,
			Paid:            b.Paid,
			AmountPaid:      b.AmountPaid,
			MeetingLink:     b.MeetingLink,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// GET (STAFF)
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	var b models.Booking
	if err := h.db.
		Preload("Slot").
		Preload("Lead").
		First(&b, uint(id)).Error; err != nil {

		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	c.JSON(http.StatusOK, b)
}

// ======================================================
// LIFECYCLE (STAFF)
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	var req CancelBookingRequest
	_ = c.ShouldBindJSON(&req)

	userID := c.MustGet(middleware.ContextUserID).(uint)

	b, err := h.cancel.Execute(c.Request.Context(), userID, uint(id), req.Reason)
	if err != nil {
		if mapBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_cancel_booking", "Could not cancel the booking.")
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)

	b, err := h.complete.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		if mapBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_complete_booking", "Could not complete the booking.")
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) NoShow(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)

	b, err := h.markNoShow.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		if mapBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_mark_no_show", "Could not update the booking.")
		return
	}

	c.JSON(http.StatusOK, b)
}
