package common

import (
	"rbs/src/models"
	"rbs/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ENTITY_BOOKING         = "booking"
	ENTITY_TRAINER_BOOKING = "trainer_booking"
)

type ChangeEntry struct {
	EntityKind string
	EntityID   uint
	ChangeType types.ChangeType
	ActorID    uint
	OldValue   types.JSONB
	NewValue   types.JSONB
	Reason     *string
	TenantID   *uuid.UUID
}

// AppendChange writes one change record inside the caller's transaction, so
// a failed audit write aborts the state change it documents.
func AppendChange(tx *gorm.DB, e ChangeEntry) error {
	record := models.ChangeLog{
		ID:         uuid.New(),
		EntityKind: e.EntityKind,
		EntityID:   e.EntityID,
		ChangeType: e.ChangeType,
		ActorID:    e.ActorID,
		Reason:     e.Reason,
		TenantID:   e.TenantID,
	}
	if e.OldValue != nil {
		record.OldValue = &e.OldValue
	}
	if e.NewValue != nil {
		record.NewValue = &e.NewValue
	}
	return tx.Create(&record).Error
}
