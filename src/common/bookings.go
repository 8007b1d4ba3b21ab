package common

import (
	"errors"
	"log"
	"rbs/src/config"
	"rbs/src/db"
	"rbs/src/models"
	"rbs/src/models/scopes"
	"rbs/src/types"
	"rbs/src/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingItemParams struct {
	CourtID   uint
	ServiceID uint
	StartTime time.Time
	EndTime   time.Time
}

type CreateBookingParams struct {
	TenantID     *uuid.UUID
	BranchID     uint
	ActorID      uint
	Items        []BookingItemParams
	Participants []types.ParticipantRequest
	Currency     string
	StatusHint   string
	Discount     float64
	Tax          float64
	Fee          float64
	PromoCode    *string
}

// CreateBooking runs the whole multi-item workflow as one transaction:
// normalize status, then per item load the court (locked), check overlap,
// price it; aggregate totals; persist booking, items, participants and the
// created change record. Any failing item aborts the entire request, so a
// booking is never partially created.
func CreateBooking(params CreateBookingParams) (*models.Booking, error) {
	if len(params.Items) == 0 {
		return nil, types.NewValidationError("items", "at least one item is required")
	}
	for _, it := range params.Items {
		if _, _, err := Interval(it.StartTime, it.EndTime); err != nil {
			return nil, err
		}
	}

	status := NormalizeBookingStatus(params.StatusHint)
	paymentStatus := NormalizePaymentStatus(params.StatusHint)
	currency := params.Currency
	if currency == "" {
		currency = "usd"
	}

	var bookingId uint
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		items := make([]models.BookingItem, 0, len(params.Items))
		var rawSubtotal float64
		for _, it := range params.Items {
			// Locking the court row serializes concurrent requests for the
			// same resource: the overlap check and the insert it guards
			// cannot interleave with a sibling transaction's.
			var court models.Court
			err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where(&models.Court{ID: it.CourtID, BranchID: params.BranchID}).
				First(&court).
				Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return types.ErrNotFound
				}
				return err
			}
			if !court.Bookable() {
				return types.ErrResourceUnavailable
			}

			conflict, err := FindCourtConflict(tx, it.CourtID, it.StartTime, it.EndTime, 0)
			if err != nil {
				return err
			}
			if conflict != nil {
				return &types.SlotConflictError{
					ResourceKind: "court",
					ResourceID:   it.CourtID,
					ConflictID:   conflict.BookingID,
					StartTime:    conflict.StartTime,
					EndTime:      conflict.EndTime,
				}
			}
			// Earlier items of this request are not persisted yet, so the
			// scan above cannot see them.
			for _, prev := range items {
				if prev.CourtID == it.CourtID && it.StartTime.Before(prev.EndTime) && it.EndTime.After(prev.StartTime) {
					return &types.SlotConflictError{
						ResourceKind: "court",
						ResourceID:   it.CourtID,
						StartTime:    prev.StartTime,
						EndTime:      prev.EndTime,
					}
				}
			}

			minutes, hours, err := Interval(it.StartTime, it.EndTime)
			if err != nil {
				return err
			}
			subtotal := Subtotal(court.HourlyRate, hours)
			rawSubtotal += subtotal
			items = append(items, models.BookingItem{
				CourtID:      it.CourtID,
				ServiceID:    it.ServiceID,
				StartTime:    it.StartTime,
				EndTime:      it.EndTime,
				DurationMins: minutes,
				HourlyRate:   court.HourlyRate,
				Subtotal:     RoundMoney(subtotal),
				TenantID:     params.TenantID,
			})
		}

		total, err := AggregateTotal(rawSubtotal, params.Discount, params.Tax, params.Fee)
		if err != nil {
			return err
		}

		booking := models.Booking{
			Reference:     utils.NewBookingReference(),
			BranchID:      params.BranchID,
			UserID:        params.ActorID,
			Status:        status,
			PaymentStatus: paymentStatus,
			Currency:      currency,
			Subtotal:      RoundMoney(rawSubtotal),
			Discount:      RoundMoney(params.Discount),
			Tax:           RoundMoney(params.Tax),
			Fee:           RoundMoney(params.Fee),
			Total:         RoundMoney(total),
			PromoCode:     params.PromoCode,
			TenantID:      params.TenantID,
		}
		if status == types.BOOKING_PENDING {
			holdUntil := time.Now().Add(config.BOOKING_HOLD_WINDOW)
			booking.HoldUntil = &holdUntil
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		bookingId = booking.ID

		for i := range items {
			items[i].BookingID = booking.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		for _, p := range params.Participants {
			participant := models.BookingParticipant{
				BookingID: booking.ID,
				Name:      p.Name,
				UserID:    p.UserID,
				TenantID:  params.TenantID,
			}
			if err := tx.Create(&participant).Error; err != nil {
				return err
			}
		}

		return AppendChange(tx, ChangeEntry{
			EntityKind: ENTITY_BOOKING,
			EntityID:   booking.ID,
			ChangeType: types.CHANGE_CREATED,
			ActorID:    params.ActorID,
			NewValue: types.JSONB{
				"reference": booking.Reference,
				"status":    string(status),
				"total":     booking.Total,
			},
			TenantID: params.TenantID,
		})
	})
	if err != nil {
		log.Printf("CreateBooking failed: %s\n", err.Error())
		return nil, err
	}

	var booking models.Booking
	err = db.
		Model(&models.Booking{}).
		Where(&models.Booking{ID: bookingId}).
		Preload("Items").
		Preload("Participants").
		First(&booking).
		Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelBooking marks the booking and appends the cancelled change record in
// one transaction. Cancelling an already-cancelled booking is rejected so no
// duplicate change record can appear.
func CancelBooking(bookingId uint, actorId uint, reason *string) (*models.Booking, error) {
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(&models.Booking{ID: bookingId}).
			First(&booking).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrNotFound
			}
			return err
		}
		if booking.Status == types.BOOKING_CANCELLED {
			return types.ErrAlreadyCancelled
		}
		err = tx.
			Model(&models.Booking{}).
			Where(&models.Booking{ID: bookingId}).
			Update("status", types.BOOKING_CANCELLED).
			Error
		if err != nil {
			return err
		}
		return AppendChange(tx, ChangeEntry{
			EntityKind: ENTITY_BOOKING,
			EntityID:   bookingId,
			ChangeType: types.CHANGE_CANCELLED,
			ActorID:    actorId,
			OldValue:   types.JSONB{"status": string(booking.Status)},
			NewValue:   types.JSONB{"status": string(types.BOOKING_CANCELLED)},
			Reason:     reason,
			TenantID:   booking.TenantID,
		})
	})
	if err != nil {
		log.Printf("CancelBooking failed for Booking [%d]: %s\n", bookingId, err.Error())
		return nil, err
	}

	var booking models.Booking
	err = db.
		Model(&models.Booking{}).
		Where(&models.Booking{ID: bookingId}).
		Preload("Items").
		First(&booking).
		Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ExpirePendingBookings releases the slots of pending bookings whose hold
// window has lapsed. Called periodically from the scheduler.
func ExpirePendingBookings() error {
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		var stale []models.Booking
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Scopes(scopes.WithPendingStatus).
			Where("hold_until < ?", time.Now()).
			Find(&stale).
			Error
		if err != nil {
			return err
		}
		for _, booking := range stale {
			err := tx.
				Model(&models.Booking{}).
				Where(&models.Booking{ID: booking.ID}).
				Update("status", types.BOOKING_EXPIRED).
				Error
			if err != nil {
				return err
			}
			err = AppendChange(tx, ChangeEntry{
				EntityKind: ENTITY_BOOKING,
				EntityID:   booking.ID,
				ChangeType: types.CHANGE_EXPIRED,
				OldValue:   types.JSONB{"status": string(booking.Status)},
				NewValue:   types.JSONB{"status": string(types.BOOKING_EXPIRED)},
				TenantID:   booking.TenantID,
			})
			if err != nil {
				return err
			}
		}
		if len(stale) > 0 {
			log.Printf("Expired %d pending bookings\n", len(stale))
		}
		return nil
	})
}
