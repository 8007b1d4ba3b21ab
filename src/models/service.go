package models

import (
	"rbs/src/types"

	"github.com/google/uuid"
)

type ServiceOffering struct {
	ID       uint       `gorm:"primarykey" json:"id"`
	Name     string     `json:"name,omitempty"`
	Kind     string     `gorm:"default:'court_rental'" json:"kind,omitempty"`
	TenantID *uuid.UUID `gorm:"type:uuid" json:"-"`

	types.Timestamps
}
