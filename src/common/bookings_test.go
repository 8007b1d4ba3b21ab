package common

import (
	"rbs/src/types"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func courtRows(status string) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"id", "branch_id", "name", "hourly_rate", "currency", "status"}).
		AddRow(7, 1, "Court A", 25.0, "usd", status)
}

func TestCreateBooking(t *testing.T) {
	mock := newMockDB()
	mock.ExpectBegin()
	mock.
		ExpectQuery(`SELECT (.+) FROM "courts"`).
		WillReturnRows(courtRows("active"))
	mock.
		ExpectQuery(`SELECT (.+) FROM "booking_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.
		ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(31))
	mock.
		ExpectQuery(`INSERT INTO "booking_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(41))
	mock.
		ExpectQuery(`INSERT INTO "booking_participants"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(51))
	mock.
		ExpectExec(`INSERT INTO "change_logs"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.
		ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "reference", "branch_id", "user_id", "status", "payment_status", "currency", "subtotal", "total"}).
			AddRow(31, "BK-20260301-ABCDEF", 1, 5, "pending", "pending", "usd", 37.5, 37.5))
	mock.
		ExpectQuery(`SELECT (.+) FROM "booking_items"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "booking_id", "court_id", "start_time", "end_time", "duration_mins", "hourly_rate", "subtotal"}).
			AddRow(41, 31, 7, windowStart, windowEnd, 90, 25.0, 37.5))
	mock.
		ExpectQuery(`SELECT (.+) FROM "booking_participants"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "booking_id", "name"}).
			AddRow(51, 31, "Sam"))

	booking, err := CreateBooking(CreateBookingParams{
		BranchID: 1,
		ActorID:  5,
		Items: []BookingItemParams{
			{CourtID: 7, StartTime: windowStart, EndTime: windowEnd},
		},
		Participants: []types.ParticipantRequest{{Name: "Sam"}},
	})
	assert.Nil(t, err)
	assert.Equal(t, uint(31), booking.ID)
	assert.Equal(t, types.BOOKING_PENDING, booking.Status)
	assert.Equal(t, 37.5, booking.Total)
	assert.Len(t, booking.Items, 1)
	assert.Len(t, booking.Participants, 1)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCreateBookingConflictRollsBack(t *testing.T) {
	mock := newMockDB()
	mock.ExpectBegin()
	mock.
		ExpectQuery(`SELECT (.+) FROM "courts"`).
		WillReturnRows(courtRows("active"))
	mock.
		ExpectQuery(`SELECT (.+) FROM "booking_items"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "booking_id", "court_id", "start_time", "end_time"}).
			AddRow(41, 30, 7, windowStart, windowEnd))
	mock.ExpectRollback()

	_, err := CreateBooking(CreateBookingParams{
		BranchID: 1,
		ActorID:  5,
		Items: []BookingItemParams{
			{CourtID: 7, StartTime: windowStart.Add(45 * time.Minute), EndTime: windowEnd.Add(45 * time.Minute)},
		},
	})
	assert.ErrorIs(t, err, types.ErrSlotConflict)
	var conflict *types.SlotConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, "court", conflict.ResourceKind)
	assert.Equal(t, uint(30), conflict.ConflictID)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCreateBookingSecondItemOverlapsFirst(t *testing.T) {
	mock := newMockDB()
	mock.ExpectBegin()
	mock.
		ExpectQuery(`SELECT (.+) FROM "courts"`).
		WillReturnRows(courtRows("active"))
	mock.
		ExpectQuery(`SELECT (.+) FROM "booking_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.
		ExpectQuery(`SELECT (.+) FROM "courts"`).
		WillReturnRows(courtRows("active"))
	mock.
		ExpectQuery(`SELECT (.+) FROM "booking_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := CreateBooking(CreateBookingParams{
		BranchID: 1,
		ActorID:  5,
		Items: []BookingItemParams{
			{CourtID: 7, StartTime: windowStart, EndTime: windowEnd},
			{CourtID: 7, StartTime: windowStart.Add(30 * time.Minute), EndTime: windowEnd.Add(30 * time.Minute)},
		},
	})
	assert.ErrorIs(t, err, types.ErrSlotConflict)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCreateBookingUnknownCourt(t *testing.T) {
	mock := newMockDB()
	mock.ExpectBegin()
	mock.
		ExpectQuery(`SELECT (.+) FROM "courts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := CreateBooking(CreateBookingParams{
		BranchID: 1,
		ActorID:  5,
		Items: []BookingItemParams{
			{CourtID: 404, StartTime: windowStart, EndTime: windowEnd},
		},
	})
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCreateBookingClosedCourt(t *testing.T) {
	mock := newMockDB()
	mock.ExpectBegin()
	mock.
		ExpectQuery(`SELECT (.+) FROM "courts"`).
		WillReturnRows(courtRows("maintenance"))
	mock.ExpectRollback()

	_, err := CreateBooking(CreateBookingParams{
		BranchID: 1,
		ActorID:  5,
		Items: []BookingItemParams{
			{CourtID: 7, StartTime: windowStart, EndTime: windowEnd},
		},
	})
	assert.ErrorIs(t, err, types.ErrResourceUnavailable)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCreateBookingNoItems(t *testing.T) {
	mock := newMockDB()

	_, err := CreateBooking(CreateBookingParams{BranchID: 1, ActorID: 5})
	var verr *types.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCreateBookingInvalidInterval(t *testing.T) {
	mock := newMockDB()

	_, err := CreateBooking(CreateBookingParams{
		BranchID: 1,
		ActorID:  5,
		Items: []BookingItemParams{
			{CourtID: 7, StartTime: windowEnd, EndTime: windowStart},
		},
	})
	assert.ErrorIs(t, err, types.ErrInvalidInterval)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func bookingRows(status string) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"id", "reference", "branch_id", "user_id", "status", "payment_status", "currency", "subtotal", "total"}).
		AddRow(31, "BK-20260301-ABCDEF", 1, 5, status, "pending", "usd", 37.5, 37.5)
}

func TestCancelBooking(t *testing.T) {
	mock := newMockDB()
	mock.ExpectBegin()
	mock.
		ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(bookingRows("pending"))
	mock.
		ExpectExec(`UPDATE "bookings"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.
		ExpectExec(`INSERT INTO "change_logs"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.
		ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(bookingRows("cancelled"))
	mock.
		ExpectQuery(`SELECT (.+) FROM "booking_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	reason := "rained out"
	booking, err := CancelBooking(31, 5, &reason)
	assert.Nil(t, err)
	assert.Equal(t, types.BOOKING_CANCELLED, booking.Status)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCancelBookingAlreadyCancelled(t *testing.T) {
	mock := newMockDB()
	mock.ExpectBegin()
	mock.
		ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(bookingRows("cancelled"))
	mock.ExpectRollback()

	_, err := CancelBooking(31, 5, nil)
	assert.ErrorIs(t, err, types.ErrAlreadyCancelled)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCancelBookingNotFound(t *testing.T) {
	mock := newMockDB()
	mock.ExpectBegin()
	mock.
		ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := CancelBooking(404, 5, nil)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestExpirePendingBookings(t *testing.T) {
	mock := newMockDB()
	past := time.Now().Add(-time.Hour)
	mock.ExpectBegin()
	mock.
		ExpectQuery(`SELECT (.+) FROM "bookings"(.+)hold_until < (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "status", "hold_until"}).
			AddRow(31, "pending", past).
			AddRow(32, "pending", past))
	mock.
		ExpectExec(`UPDATE "bookings"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.
		ExpectExec(`INSERT INTO "change_logs"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.
		ExpectExec(`UPDATE "bookings"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.
		ExpectExec(`INSERT INTO "change_logs"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.Nil(t, ExpirePendingBookings())
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestExpirePendingBookingsNoneStale(t *testing.T) {
	mock := newMockDB()
	mock.ExpectBegin()
	mock.
		ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	assert.Nil(t, ExpirePendingBookings())
	assert.Nil(t, mock.ExpectationsWereMet())
}
