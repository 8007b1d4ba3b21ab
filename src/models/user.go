package models

import (
	"rbs/src/types"

	"github.com/google/uuid"
)

type User struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Name         string     `json:"name,omitempty"`
	Email        string     `json:"email,omitempty"`
	Role         string     `json:"role,omitempty"`
	ActiveBranch uint       `json:"active_branch,omitempty"`
	TenantID     *uuid.UUID `gorm:"type:uuid" json:"-"`

	Bookings []Booking `gorm:"foreignKey:user_id" json:"bookings,omitempty"`

	types.Timestamps
}
