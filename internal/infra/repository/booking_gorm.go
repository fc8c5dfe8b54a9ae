package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/northpeaklabs/marketing-ops/internal/domain/booking"
	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/models"
)

// isRecordMissing distinguishes an empty lookup from a failed one. Only the
// former may fall through to an insert.
func isRecordMissing(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Slot
// --------------------------------------------------

func (r *BookingGormRepository) GetSlot(
	ctx context.Context,
	id uint,
) (*models.ConsultationSlot, error) {

	var slot models.ConsultationSlot
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// --------------------------------------------------
// Lead
// --------------------------------------------------

func (r *BookingGormRepository) GetLead(
	ctx context.Context,
	id uint,
) (*models.Lead, error) {

	var lead models.Lead
	if err := r.db.WithContext(ctx).First(&lead, id).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *BookingGormRepository) GetOrCreateLeadByEmail(
	ctx context.Context,
	email string,
	defaults *models.Lead,
) (*models.Lead, error) {

	email = strings.ToLower(strings.TrimSpace(email))

	var lead models.Lead
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&lead).Error

	if err == nil {
		return &lead, nil
	}
	if !isRecordMissing(err) {
		return nil, err
	}

	lead = *defaults
	lead.Email = email

	if err := r.db.WithContext(ctx).Create(&lead).Error; err != nil {
		return nil, err
	}

	return &lead, nil
}

// --------------------------------------------------
// Booking (create / slot hold)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBookingHoldingSlot(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var slot models.ConsultationSlot
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot, b.SlotID).Error; err != nil {

			if isRecordMissing(err) {
				return httperr.ErrBusiness("slot_not_available")
			}
			return err
		}

		if !slot.IsAvailable {
			return httperr.ErrBusiness("slot_not_available")
		}

		if err := tx.Create(b).Error; err != nil {
			return err
		}

		return tx.Model(&slot).Update("is_available", false).Error
	})
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Lead").
		Preload("Slot").
		First(&b, id).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) SaveBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Omit("Lead", "Slot").Save(b).Error
}

func (r *BookingGormRepository) SaveBookingReleasingSlot(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Omit("Lead", "Slot").Save(b).Error; err != nil {
			return err
		}

		return tx.Model(&models.ConsultationSlot{}).
			Where("id = ?", b.SlotID).
			Update("is_available", true).Error
	})
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
