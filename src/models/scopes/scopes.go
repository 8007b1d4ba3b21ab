package scopes

import (
	"rbs/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func WithID(id uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

func WithBranch(id uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("branch_id = ?", id)
	}
}

func WithTenant(id *uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if id == nil {
			return db
		}
		return db.Where("tenant_id = ?", id)
	}
}

// BlockingBookings keeps the statuses that count toward overlap exclusion.
func BlockingBookings(db *gorm.DB) *gorm.DB {
	return db.Where(
		"bookings.status NOT IN (?)",
		[]types.BookingStatus{types.BOOKING_CANCELLED, types.BOOKING_EXPIRED},
	)
}

func WithPendingStatus(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", "pending")
}
