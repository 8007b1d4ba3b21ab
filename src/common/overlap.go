package common

import (
	"rbs/src/models"
	"rbs/src/models/scopes"
	"rbs/src/types"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Overlap checks run against the half-open window [start, end): two windows
// intersect iff s1 < e2 AND e1 > s2, so back-to-back bookings never
// conflict. Both checkers must run inside the caller's transaction, after
// the resource row has been locked, so the check and the insert it guards
// commit as one atomic unit. Matched rows are locked as well.

// FindCourtConflict returns the first active reservation item for the court
// intersecting the window, or nil. Items whose parent booking is cancelled,
// expired or soft-deleted do not block. excludeBookingID skips a booking's
// own items on reschedule.
func FindCourtConflict(tx *gorm.DB, courtId uint, start, end time.Time, excludeBookingId uint) (*models.BookingItem, error) {
	q := tx.
		Model(&models.BookingItem{}).
		Joins("JOIN bookings ON bookings.id = booking_items.booking_id AND bookings.deleted_at IS NULL").
		Scopes(scopes.BlockingBookings).
		Where("booking_items.court_id = ?", courtId).
		Where("booking_items.start_time < ? AND booking_items.end_time > ?", end, start)
	if excludeBookingId > 0 {
		q = q.Where("booking_items.booking_id <> ?", excludeBookingId)
	}
	var items []models.BookingItem
	err := q.
		Clauses(clause.Locking{
			Strength: "UPDATE",
			Table:    clause.Table{Name: "booking_items"},
		}).
		Limit(1).
		Find(&items).
		Error
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

// FindTrainerConflict returns the first booked trainer booking intersecting
// the window, or nil. Only status booked blocks; cancelled and completed
// trainer bookings never do. excludeId skips the booking's own row on
// update.
func FindTrainerConflict(tx *gorm.DB, trainerId uint, start, end time.Time, excludeId uint) (*models.TrainerBooking, error) {
	q := tx.
		Model(&models.TrainerBooking{}).
		Where(&models.TrainerBooking{TrainerID: trainerId, Status: types.TRAINER_BOOKING_BOOKED}).
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeId > 0 {
		q = q.Where("id <> ?", excludeId)
	}
	var bookings []models.TrainerBooking
	err := q.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Limit(1).
		Find(&bookings).
		Error
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, nil
	}
	return &bookings[0], nil
}
