package models

import (
	"rbs/src/types"
	"time"

	"github.com/google/uuid"
)

// ChangeLog is append-only. Rows are created inside the same transaction as
// the state change they document and are never updated or deleted.
type ChangeLog struct {
	ID         uuid.UUID        `gorm:"primarykey;type:uuid" json:"id"`
	EntityKind string           `gorm:"index:idx_change_entity" json:"entity_kind,omitempty"`
	EntityID   uint             `gorm:"index:idx_change_entity" json:"entity_id,omitempty"`
	ChangeType types.ChangeType `json:"change_type,omitempty"`
	ActorID    uint             `json:"actor_id,omitempty"`
	OldValue   *types.JSONB     `gorm:"type:jsonb" json:"old_value,omitempty"`
	NewValue   *types.JSONB     `gorm:"type:jsonb" json:"new_value,omitempty"`
	Reason     *string          `json:"reason,omitempty"`
	TenantID   *uuid.UUID       `gorm:"type:uuid" json:"-"`
	CreatedAt  time.Time        `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
}
