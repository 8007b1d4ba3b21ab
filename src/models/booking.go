package models

import (
	"rbs/src/types"
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID            uint                `gorm:"primarykey" json:"id"`
	Reference     string              `gorm:"uniqueIndex" json:"reference,omitempty"`
	BranchID      uint                `json:"branch_id,omitempty"`
	UserID        uint                `json:"user_id,omitempty"`
	Status        types.BookingStatus `gorm:"default:'pending'" json:"status,omitempty"`
	PaymentStatus types.PaymentStatus `gorm:"default:'pending'" json:"payment_status,omitempty"`
	Currency      string              `gorm:"default:'usd'" json:"currency,omitempty"`
	Subtotal      float64             `json:"subtotal,omitempty"`
	Discount      float64             `json:"discount,omitempty"`
	Tax           float64             `json:"tax,omitempty"`
	Fee           float64             `json:"fee,omitempty"`
	Total         float64             `json:"total,omitempty"`
	PromoCode     *string             `json:"promo_code,omitempty"`
	HoldUntil     *time.Time          `json:"hold_until,omitempty"`
	TenantID      *uuid.UUID          `gorm:"type:uuid" json:"-"`

	Branch       Branch               `gorm:"foreignKey:branch_id" json:"-"`
	User         User                 `gorm:"foreignKey:user_id" json:"-"`
	Items        []BookingItem        `gorm:"foreignKey:booking_id" json:"items,omitempty"`
	Participants []BookingParticipant `gorm:"foreignKey:booking_id" json:"participants,omitempty"`

	types.Timestamps
}

type BookingItem struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	BookingID    uint       `gorm:"index" json:"booking_id,omitempty"`
	CourtID      uint       `gorm:"index" json:"court_id,omitempty"`
	ServiceID    uint       `json:"service_id,omitempty"`
	StartTime    time.Time  `json:"start_time,omitempty"`
	EndTime      time.Time  `json:"end_time,omitempty"`
	DurationMins int        `json:"duration_mins,omitempty"`
	HourlyRate   float64    `json:"hourly_rate,omitempty"`
	Subtotal     float64    `json:"subtotal,omitempty"`
	TenantID     *uuid.UUID `gorm:"type:uuid" json:"-"`

	Booking Booking         `gorm:"foreignKey:booking_id" json:"-"`
	Court   Court           `gorm:"foreignKey:court_id" json:"court,omitempty"`
	Service ServiceOffering `gorm:"foreignKey:service_id" json:"service,omitempty"`

	types.Timestamps
}

type BookingParticipant struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	BookingID uint       `gorm:"index" json:"booking_id,omitempty"`
	Name      string     `json:"name,omitempty"`
	UserID    *uint      `json:"user_id,omitempty"`
	TenantID  *uuid.UUID `gorm:"type:uuid" json:"-"`

	types.Timestamps
}
