package models

import (
	"rbs/src/types"

	"github.com/google/uuid"
)

type Branch struct {
	ID        uint               `gorm:"primarykey" json:"id"`
	Name      string             `json:"name,omitempty"`
	Slug      string             `gorm:"uniqueIndex" json:"slug"`
	Timezone  string             `gorm:"default:'UTC'" json:"timezone,omitempty"`
	Status    types.BranchStatus `gorm:"default:'active'" json:"status,omitempty"`
	CompanyID *uuid.UUID         `gorm:"type:uuid" json:"-"`

	Courts []Court `gorm:"foreignKey:branch_id" json:"courts,omitempty"`

	types.Timestamps
}
