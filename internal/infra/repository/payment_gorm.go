package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/northpeaklabs/marketing-ops/internal/domain/payment"
	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/models"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *PaymentGormRepository) GetBooking(
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

func (r *PaymentGormRepository) SaveBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Omit("Lead", "Slot").Save(b).Error
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *PaymentGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentGormRepository) GetPaymentByIntentID(
	ctx context.Context,
	intentID string,
) (*models.Payment, error) {

	var p models.Payment
	if err := r.db.WithContext(ctx).
		Where("intent_id = ?", intentID).
		First(&p).Error; err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *PaymentGormRepository) SavePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Omit("Booking").Save(p).Error
}

func (r *PaymentGormRepository) HasOpenPayment(
	ctx context.Context,
	bookingID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where(
			"booking_id = ? AND status IN ?",
			bookingID,
			[]string{string(domain.StatusPending), string(domain.StatusProcessing)},
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Webhook events
// --------------------------------------------------

func (r *PaymentGormRepository) RecordEvent(
	ctx context.Context,
	ev *models.WebhookEvent,
) error {

	if err := r.db.WithContext(ctx).Create(ev).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness("duplicate_event")
		}
		return err
	}

	return nil
}

func (r *PaymentGormRepository) MarkEventProcessed(
	ctx context.Context,
	ev *models.WebhookEvent,
	processingErr error,
) error {

	now := time.Now().UTC()
	ev.ProcessedAt = &now
	if processingErr != nil {
		ev.ProcessingError = processingErr.Error()
	}

	return r.db.WithContext(ctx).Save(ev).Error
}

// Compile-time check
var _ domain.Repository = (*PaymentGormRepository)(nil)
