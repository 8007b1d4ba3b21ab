package models

import (
	"rbs/src/types"

	"github.com/google/uuid"
)

type Court struct {
	ID         uint              `gorm:"primarykey" json:"id"`
	BranchID   uint              `json:"branch_id,omitempty"`
	Name       string            `json:"name,omitempty"`
	Slug       string            `json:"slug,omitempty"`
	Surface    string            `json:"surface,omitempty"`
	HourlyRate float64           `json:"hourly_rate,omitempty"`
	Currency   string            `gorm:"default:'usd'" json:"currency,omitempty"`
	Status     types.CourtStatus `gorm:"default:'active'" json:"status,omitempty"`
	TenantID   *uuid.UUID        `gorm:"type:uuid" json:"-"`

	Branch Branch `gorm:"foreignKey:branch_id" json:"-"`

	types.Timestamps
}

func (c *Court) Bookable() bool {
	return c.Status == types.COURT_ACTIVE
}
