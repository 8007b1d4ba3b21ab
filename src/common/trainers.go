package common

import (
	"errors"
	"log"
	"rbs/src/db"
	"rbs/src/models"
	"rbs/src/types"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateTrainerBookingParams struct {
	TenantID   *uuid.UUID
	BranchID   uint
	TrainerID  uint
	ActorID    uint
	StartTime  time.Time
	EndTime    time.Time
	HourlyRate *float64
	Total      *float64
	Currency   string
	Status     string
}

type UpdateTrainerBookingParams struct {
	ActorID    uint
	BranchID   *uint
	TrainerID  *uint
	StartTime  *time.Time
	EndTime    *time.Time
	HourlyRate *float64
	Total      *float64
	Currency   *string
	Status     *string
}

// SupportedCurrencies is the single whitelist shared by the engine and the
// request-body binding validator.
var SupportedCurrencies = map[string]bool{
	"usd": true,
	"eur": true,
	"gbp": true,
	"php": true,
}

func validateCurrency(currency string) error {
	if !SupportedCurrencies[currency] {
		return types.NewValidationError("currency", "unsupported currency")
	}
	return nil
}

func loadBookableTrainer(tx *gorm.DB, trainerId, branchId uint) (*models.Trainer, error) {
	var trainer models.Trainer
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(&models.Trainer{ID: trainerId}).
		First(&trainer).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	if !trainer.Bookable() {
		return nil, types.ErrResourceUnavailable
	}
	if !trainer.ServesBranch(branchId) {
		return nil, types.ErrAssignmentMismatch
	}
	return &trainer, nil
}

// CreateTrainerBooking books a trainer for a window. The trainer must exist,
// be active and serve the requested branch; only status booked blocks the
// overlap scan. An explicitly supplied total is trusted, otherwise total is
// duration hours x hourly rate.
func CreateTrainerBooking(params CreateTrainerBookingParams) (*models.TrainerBooking, error) {
	_, hours, err := Interval(params.StartTime, params.EndTime)
	if err != nil {
		return nil, err
	}
	status, err := NormalizeTrainerBookingStatus(params.Status)
	if err != nil {
		return nil, err
	}
	currency := params.Currency
	if currency == "" {
		currency = "usd"
	}
	if err := validateCurrency(currency); err != nil {
		return nil, err
	}

	var booking models.TrainerBooking
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		trainer, err := loadBookableTrainer(tx, params.TrainerID, params.BranchID)
		if err != nil {
			return err
		}

		conflict, err := FindTrainerConflict(tx, params.TrainerID, params.StartTime, params.EndTime, 0)
		if err != nil {
			return err
		}
		if conflict != nil {
			return &types.SlotConflictError{
				ResourceKind: "trainer",
				ResourceID:   params.TrainerID,
				ConflictID:   conflict.ID,
				StartTime:    conflict.StartTime,
				EndTime:      conflict.EndTime,
			}
		}

		rate := trainer.HourlyRate
		if params.HourlyRate != nil {
			rate = *params.HourlyRate
		}
		total := RoundMoney(Subtotal(rate, hours))
		if params.Total != nil {
			total = RoundMoney(*params.Total)
		}

		booking = models.TrainerBooking{
			BranchID:   params.BranchID,
			TrainerID:  params.TrainerID,
			UserID:     params.ActorID,
			StartTime:  params.StartTime,
			EndTime:    params.EndTime,
			HourlyRate: rate,
			Total:      total,
			Currency:   currency,
			Status:     status,
			TenantID:   params.TenantID,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		return AppendChange(tx, ChangeEntry{
			EntityKind: ENTITY_TRAINER_BOOKING,
			EntityID:   booking.ID,
			ChangeType: types.CHANGE_CREATED,
			ActorID:    params.ActorID,
			NewValue: types.JSONB{
				"status":     string(status),
				"start_time": params.StartTime.Format(time.RFC3339),
				"end_time":   params.EndTime.Format(time.RFC3339),
				"total":      total,
			},
			TenantID: params.TenantID,
		})
	})
	if err != nil {
		log.Printf("CreateTrainerBooking failed: %s\n", err.Error())
		return nil, err
	}
	return &booking, nil
}

// UpdateTrainerBooking applies a partial update. Trainer or branch changes
// re-validate the assignment constraint; any change touching time or trainer
// re-runs the overlap scan excluding the booking's own row. Total is
// recomputed from the new window and rate unless explicitly supplied.
// Cancelled bookings reject every update.
func UpdateTrainerBooking(id uint, params UpdateTrainerBookingParams) (*models.TrainerBooking, error) {
	var updated models.TrainerBooking
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var booking models.TrainerBooking
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(&models.TrainerBooking{ID: id}).
			First(&booking).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrNotFound
			}
			return err
		}
		// Cancellation is terminal. Without this a status-only update could
		// put a cancelled booking back in the blocking set with no overlap
		// rescan.
		if booking.Status == types.TRAINER_BOOKING_CANCELLED {
			return types.ErrAlreadyCancelled
		}

		branchId := booking.BranchID
		if params.BranchID != nil {
			branchId = *params.BranchID
		}
		trainerId := booking.TrainerID
		if params.TrainerID != nil {
			trainerId = *params.TrainerID
		}
		start := booking.StartTime
		if params.StartTime != nil {
			start = *params.StartTime
		}
		end := booking.EndTime
		if params.EndTime != nil {
			end = *params.EndTime
		}
		rate := booking.HourlyRate
		if params.HourlyRate != nil {
			rate = *params.HourlyRate
		}

		timeChanged := params.StartTime != nil || params.EndTime != nil
		trainerChanged := trainerId != booking.TrainerID
		branchChanged := branchId != booking.BranchID

		var hours float64
		if timeChanged {
			_, hours, err = Interval(start, end)
			if err != nil {
				return err
			}
		} else {
			_, hours, _ = Interval(start, end)
		}

		if trainerChanged || branchChanged {
			if _, err := loadBookableTrainer(tx, trainerId, branchId); err != nil {
				return err
			}
		}

		if timeChanged || trainerChanged {
			conflict, err := FindTrainerConflict(tx, trainerId, start, end, booking.ID)
			if err != nil {
				return err
			}
			if conflict != nil {
				return &types.SlotConflictError{
					ResourceKind: "trainer",
					ResourceID:   trainerId,
					ConflictID:   conflict.ID,
					StartTime:    conflict.StartTime,
					EndTime:      conflict.EndTime,
				}
			}
		}

		status := booking.Status
		if params.Status != nil {
			status, err = NormalizeTrainerBookingStatus(*params.Status)
			if err != nil {
				return err
			}
		}
		currency := booking.Currency
		if params.Currency != nil {
			currency = *params.Currency
		}
		if err := validateCurrency(currency); err != nil {
			return err
		}

		total := booking.Total
		if params.Total != nil {
			total = RoundMoney(*params.Total)
		} else if timeChanged || params.HourlyRate != nil {
			total = RoundMoney(Subtotal(rate, hours))
		}

		err = tx.
			Model(&models.TrainerBooking{}).
			Where(&models.TrainerBooking{ID: booking.ID}).
			Updates(map[string]any{
				"branch_id":   branchId,
				"trainer_id":  trainerId,
				"start_time":  start,
				"end_time":    end,
				"hourly_rate": rate,
				"total":       total,
				"currency":    currency,
				"status":      status,
			}).
			Error
		if err != nil {
			return err
		}

		changeType := types.CHANGE_UPDATED
		if timeChanged || trainerChanged {
			changeType = types.CHANGE_RESCHEDULED
		}
		err = AppendChange(tx, ChangeEntry{
			EntityKind: ENTITY_TRAINER_BOOKING,
			EntityID:   booking.ID,
			ChangeType: changeType,
			ActorID:    params.ActorID,
			OldValue: types.JSONB{
				"status":     string(booking.Status),
				"trainer_id": booking.TrainerID,
				"start_time": booking.StartTime.Format(time.RFC3339),
				"end_time":   booking.EndTime.Format(time.RFC3339),
				"total":      booking.Total,
			},
			NewValue: types.JSONB{
				"status":     string(status),
				"trainer_id": trainerId,
				"start_time": start.Format(time.RFC3339),
				"end_time":   end.Format(time.RFC3339),
				"total":      total,
			},
			TenantID: booking.TenantID,
		})
		if err != nil {
			return err
		}

		updated = booking
		updated.BranchID = branchId
		updated.TrainerID = trainerId
		updated.StartTime = start
		updated.EndTime = end
		updated.HourlyRate = rate
		updated.Total = total
		updated.Currency = currency
		updated.Status = status
		return nil
	})
	if err != nil {
		log.Printf("UpdateTrainerBooking failed for [%d]: %s\n", id, err.Error())
		return nil, err
	}
	return &updated, nil
}

// RemoveTrainerBooking cancels and soft-deletes a trainer booking. Removing
// an absent booking is an idempotent no-op returning nil.
func RemoveTrainerBooking(id uint, actorId uint) (*models.TrainerBooking, error) {
	var removed *models.TrainerBooking
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var booking models.TrainerBooking
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(&models.TrainerBooking{ID: id}).
			First(&booking).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		oldStatus := booking.Status
		err = tx.
			Model(&models.TrainerBooking{}).
			Where(&models.TrainerBooking{ID: booking.ID}).
			Update("status", types.TRAINER_BOOKING_CANCELLED).
			Error
		if err != nil {
			return err
		}
		if err := tx.Delete(&models.TrainerBooking{}, booking.ID).Error; err != nil {
			return err
		}
		err = AppendChange(tx, ChangeEntry{
			EntityKind: ENTITY_TRAINER_BOOKING,
			EntityID:   booking.ID,
			ChangeType: types.CHANGE_CANCELLED,
			ActorID:    actorId,
			OldValue:   types.JSONB{"status": string(oldStatus)},
			NewValue:   types.JSONB{"status": string(types.TRAINER_BOOKING_CANCELLED)},
			TenantID:   booking.TenantID,
		})
		if err != nil {
			return err
		}
		booking.Status = types.TRAINER_BOOKING_CANCELLED
		removed = &booking
		return nil
	})
	if err != nil {
		log.Printf("RemoveTrainerBooking failed for [%d]: %s\n", id, err.Error())
		return nil, err
	}
	return removed, nil
}
