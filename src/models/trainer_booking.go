package models

import (
	"rbs/src/types"
	"time"

	"github.com/google/uuid"
)

type TrainerBooking struct {
	ID         uint                       `gorm:"primarykey" json:"id"`
	BranchID   uint                       `json:"branch_id,omitempty"`
	TrainerID  uint                       `gorm:"index" json:"trainer_id,omitempty"`
	UserID     uint                       `json:"user_id,omitempty"`
	StartTime  time.Time                  `json:"start_time,omitempty"`
	EndTime    time.Time                  `json:"end_time,omitempty"`
	HourlyRate float64                    `json:"hourly_rate,omitempty"`
	Total      float64                    `json:"total,omitempty"`
	Currency   string                     `gorm:"default:'usd'" json:"currency,omitempty"`
	Status     types.TrainerBookingStatus `gorm:"default:'booked'" json:"status,omitempty"`
	TenantID   *uuid.UUID                 `gorm:"type:uuid" json:"-"`

	Trainer Trainer `gorm:"foreignKey:trainer_id" json:"trainer,omitempty"`
	Branch  Branch  `gorm:"foreignKey:branch_id" json:"-"`

	types.Timestamps
}
