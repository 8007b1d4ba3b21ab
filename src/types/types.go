package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type JSONB map[string]any

func (a JSONB) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONB) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

type Environment string

const (
	Production  Environment = "production"
	Test        Environment = "test"
	Development Environment = "development"
	Local       Environment = "local"
)

type BookingStatus string

const (
	BOOKING_PENDING   BookingStatus = "pending"
	BOOKING_CONFIRMED BookingStatus = "confirmed"
	BOOKING_CANCELLED BookingStatus = "cancelled"
	BOOKING_COMPLETED BookingStatus = "completed"
	BOOKING_NO_SHOW   BookingStatus = "no_show"
	BOOKING_EXPIRED   BookingStatus = "expired"
)

type PaymentStatus string

const (
	PAYMENT_PENDING            PaymentStatus = "pending"
	PAYMENT_PROCESSING         PaymentStatus = "processing"
	PAYMENT_SUCCEEDED          PaymentStatus = "succeeded"
	PAYMENT_FAILED             PaymentStatus = "failed"
	PAYMENT_CANCELLED          PaymentStatus = "cancelled"
	PAYMENT_REFUNDED           PaymentStatus = "refunded"
	PAYMENT_PARTIALLY_REFUNDED PaymentStatus = "partially_refunded"
)

type TrainerBookingStatus string

const (
	TRAINER_BOOKING_BOOKED    TrainerBookingStatus = "booked"
	TRAINER_BOOKING_CANCELLED TrainerBookingStatus = "cancelled"
	TRAINER_BOOKING_COMPLETED TrainerBookingStatus = "completed"
)

type CourtStatus string

const (
	COURT_ACTIVE      CourtStatus = "active"
	COURT_MAINTENANCE CourtStatus = "maintenance"
	COURT_RETIRED     CourtStatus = "retired"
)

type TrainerStatus string

const (
	TRAINER_ACTIVE   TrainerStatus = "active"
	TRAINER_INACTIVE TrainerStatus = "inactive"
)

type BranchStatus string

const (
	BRANCH_ACTIVE   BranchStatus = "active"
	BRANCH_INACTIVE BranchStatus = "inactive"
)

type ChangeType string

const (
	CHANGE_CREATED     ChangeType = "created"
	CHANGE_UPDATED     ChangeType = "updated"
	CHANGE_CANCELLED   ChangeType = "cancelled"
	CHANGE_RESCHEDULED ChangeType = "rescheduled"
	CHANGE_EXPIRED     ChangeType = "expired"
)

type BookingItemRequest struct {
	CourtID   uint   `json:"court" binding:"required"`
	ServiceID uint   `json:"service" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type ParticipantRequest struct {
	Name   string `json:"name" binding:"required"`
	UserID *uint  `json:"user,omitempty"`
}

type CreateBookingRequestBody struct {
	BranchID     uint                 `json:"branch" binding:"required"`
	Items        []BookingItemRequest `json:"items" binding:"required,min=1,dive"`
	Participants []ParticipantRequest `json:"participants,omitempty" binding:"omitempty,dive"`
	Status       string               `json:"status,omitempty"`
	Currency     string               `json:"currency,omitempty" binding:"omitempty,currency"`
	Discount     float64              `json:"discount,omitempty" binding:"omitempty,gte=0"`
	Tax          float64              `json:"tax,omitempty" binding:"omitempty,gte=0"`
	Fee          float64              `json:"fee,omitempty" binding:"omitempty,gte=0"`
	PromoCode    *string              `json:"promo_code,omitempty"`
}

type CancelBookingRequestBody struct {
	Reason *string `json:"reason,omitempty"`
}

type CreateTrainerBookingRequestBody struct {
	BranchID   uint     `json:"branch" binding:"required"`
	TrainerID  uint     `json:"trainer" binding:"required"`
	StartTime  string   `json:"start_time" binding:"required"`
	EndTime    string   `json:"end_time" binding:"required"`
	HourlyRate *float64 `json:"hourly_rate,omitempty" binding:"omitempty,gte=0"`
	Total      *float64 `json:"total,omitempty" binding:"omitempty,gte=0"`
	Currency   string   `json:"currency,omitempty" binding:"omitempty,currency"`
	Status     string   `json:"status,omitempty"`
}

type UpdateTrainerBookingRequestBody struct {
	BranchID   *uint    `json:"branch,omitempty"`
	TrainerID  *uint    `json:"trainer,omitempty"`
	StartTime  *string  `json:"start_time,omitempty"`
	EndTime    *string  `json:"end_time,omitempty"`
	HourlyRate *float64 `json:"hourly_rate,omitempty" binding:"omitempty,gte=0"`
	Total      *float64 `json:"total,omitempty" binding:"omitempty,gte=0"`
	Currency   *string  `json:"currency,omitempty" binding:"omitempty,currency"`
	Status     *string  `json:"status,omitempty"`
}

type CreateBranchRequestBody struct {
	Name     string `json:"name" binding:"required"`
	Timezone string `json:"timezone,omitempty"`
}

type CreateCourtRequestBody struct {
	BranchID   uint    `json:"branch" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Surface    string  `json:"surface,omitempty"`
	HourlyRate float64 `json:"hourly_rate" binding:"required,gte=0"`
	Currency   string  `json:"currency,omitempty" binding:"omitempty,currency"`
}

type UpdateCourtStatusRequestBody struct {
	Status CourtStatus `json:"status" binding:"required,oneof=active maintenance retired"`
}

type CreateTrainerRequestBody struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email,omitempty" binding:"omitempty,email"`
	BranchID   *uint   `json:"branch,omitempty"`
	HourlyRate float64 `json:"hourly_rate" binding:"required,gte=0"`
	Currency   string  `json:"currency,omitempty" binding:"omitempty,currency"`
}

type CreateServiceRequestBody struct {
	Name string `json:"name" binding:"required"`
	Kind string `json:"kind" binding:"required,oneof=court_rental lesson class"`
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type BookingQueryFilters struct {
	Status string `form:"status,omitempty"`
	Branch uint   `form:"branch,omitempty"`
	From   string `form:"from,omitempty"`
	To     string `form:"to,omitempty"`
}

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	TenantID string `json:"tenant_id"`
	Branch   uint   `json:"branch"`
	jwt.RegisteredClaims
}
