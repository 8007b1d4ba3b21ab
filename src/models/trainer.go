package models

import (
	"rbs/src/types"

	"github.com/google/uuid"
)

// Trainer is a bookable staff member. A non-nil BranchID pins the trainer
// to that branch; bookings for any other branch are rejected.
type Trainer struct {
	ID         uint                `gorm:"primarykey" json:"id"`
	Name       string              `json:"name,omitempty"`
	Email      string              `json:"email,omitempty"`
	BranchID   *uint               `json:"branch_id,omitempty"`
	HourlyRate float64             `json:"hourly_rate,omitempty"`
	Currency   string              `gorm:"default:'usd'" json:"currency,omitempty"`
	Status     types.TrainerStatus `gorm:"default:'active'" json:"status,omitempty"`
	TenantID   *uuid.UUID          `gorm:"type:uuid" json:"-"`

	Branch *Branch `gorm:"foreignKey:branch_id" json:"-"`

	types.Timestamps
}

func (t *Trainer) Bookable() bool {
	return t.Status == types.TRAINER_ACTIVE
}

func (t *Trainer) ServesBranch(branchId uint) bool {
	return t.BranchID == nil || *t.BranchID == branchId
}
