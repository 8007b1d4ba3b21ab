package models

import (
	"rbs/src/types"

	"github.com/google/uuid"
)

type Company struct {
	ID     uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name   string    `json:"name,omitempty"`
	Slug   string    `gorm:"uniqueIndex" json:"slug"`
	Status string    `gorm:"default:'active'" json:"status,omitempty"`

	Branches []Branch `gorm:"foreignKey:company_id" json:"branches,omitempty"`

	types.Timestamps
}
