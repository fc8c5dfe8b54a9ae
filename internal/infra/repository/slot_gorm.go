package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/models"
	"github.com/northpeaklabs/marketing-ops/internal/slotgen"
)

// ======================================================
// GORM IMPLEMENTATION — SLOT STORE
// ======================================================

type SlotGormStore struct {
	db *gorm.DB
}

func NewSlotGormStore(db *gorm.DB) *SlotGormStore {
	return &SlotGormStore{db: db}
}

var _ slotgen.Store = (*SlotGormStore)(nil)

func (s *SlotGormStore) CreateSlot(ctx context.Context, slot *models.ConsultationSlot) error {
	err := s.db.WithContext(ctx).Create(slot).Error
	if err != nil && httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("slot_exists")
	}
	return err
}
