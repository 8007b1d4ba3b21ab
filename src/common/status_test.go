package common

import (
	"rbs/src/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBookingStatus(t *testing.T) {
	cases := map[string]types.BookingStatus{
		"succeeded":       types.BOOKING_CONFIRMED,
		"success":         types.BOOKING_CONFIRMED,
		"paid":            types.BOOKING_CONFIRMED,
		"payment_success": types.BOOKING_CONFIRMED,
		"cancel":          types.BOOKING_CANCELLED,
		"complete":        types.BOOKING_COMPLETED,
		"confirmed":       types.BOOKING_CONFIRMED,
		"no_show":         types.BOOKING_NO_SHOW,
		"expired":         types.BOOKING_EXPIRED,
		"  Succeeded  ":   types.BOOKING_CONFIRMED,
		"CANCEL":          types.BOOKING_CANCELLED,
		"garbage":         types.BOOKING_PENDING,
		"":                types.BOOKING_PENDING,
	}
	for raw, want := range cases {
		assert.Equalf(t, want, NormalizeBookingStatus(raw), "raw=%q", raw)
	}
}

func TestNormalizePaymentStatus(t *testing.T) {
	cases := map[string]types.PaymentStatus{
		"succeeded":          types.PAYMENT_SUCCEEDED,
		"paid":               types.PAYMENT_SUCCEEDED,
		"cancel":             types.PAYMENT_CANCELLED,
		"refunded":           types.PAYMENT_REFUNDED,
		"partially_refunded": types.PAYMENT_PARTIALLY_REFUNDED,
		"processing":         types.PAYMENT_PROCESSING,
		"garbage":            types.PAYMENT_PENDING,
		"":                   types.PAYMENT_PENDING,
	}
	for raw, want := range cases {
		assert.Equalf(t, want, NormalizePaymentStatus(raw), "raw=%q", raw)
	}
}

func TestNormalizeTrainerBookingStatus(t *testing.T) {
	s, err := NormalizeTrainerBookingStatus("")
	assert.Nil(t, err)
	assert.Equal(t, types.TRAINER_BOOKING_BOOKED, s)

	s, err = NormalizeTrainerBookingStatus("cancel")
	assert.Nil(t, err)
	assert.Equal(t, types.TRAINER_BOOKING_CANCELLED, s)

	s, err = NormalizeTrainerBookingStatus(" Completed ")
	assert.Nil(t, err)
	assert.Equal(t, types.TRAINER_BOOKING_COMPLETED, s)

	_, err = NormalizeTrainerBookingStatus("paid")
	var verr *types.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestResolveStatusHint(t *testing.T) {
	assert.Equal(t, "succeeded", ResolveStatusHint([]byte(`{"status":"succeeded"}`)))
	assert.Equal(t, "paid", ResolveStatusHint([]byte(`{"booking_status":"paid"}`)))
	assert.Equal(t, "cancel", ResolveStatusHint([]byte(`{"items":[{"status":"cancel"}]}`)))
	// the top-level key wins over the nested one
	assert.Equal(t, "succeeded", ResolveStatusHint([]byte(`{"status":"succeeded","items":[{"status":"cancel"}]}`)))
	assert.Equal(t, "", ResolveStatusHint([]byte(`{"items":[{"court":1}]}`)))
}
