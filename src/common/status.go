package common

import (
	"rbs/src/types"
	"strings"

	"github.com/tidwall/gjson"
)

// Clients send status vocabulary from several UIs, some of it payment
// terminology. Normalization maps every raw token onto the closed booking
// and payment status sets. Pure functions, deterministic for equal input.

var bookingStatusAliases = map[string]types.BookingStatus{
	"succeeded":       types.BOOKING_CONFIRMED,
	"success":         types.BOOKING_CONFIRMED,
	"paid":            types.BOOKING_CONFIRMED,
	"payment_success": types.BOOKING_CONFIRMED,
	"cancel":          types.BOOKING_CANCELLED,
	"complete":        types.BOOKING_COMPLETED,
}

var bookingStatusSet = map[types.BookingStatus]bool{
	types.BOOKING_PENDING:   true,
	types.BOOKING_CONFIRMED: true,
	types.BOOKING_CANCELLED: true,
	types.BOOKING_COMPLETED: true,
	types.BOOKING_NO_SHOW:   true,
	types.BOOKING_EXPIRED:   true,
}

var paymentStatusAliases = map[string]types.PaymentStatus{
	"succeeded":       types.PAYMENT_SUCCEEDED,
	"success":         types.PAYMENT_SUCCEEDED,
	"paid":            types.PAYMENT_SUCCEEDED,
	"payment_success": types.PAYMENT_SUCCEEDED,
	"cancel":          types.PAYMENT_CANCELLED,
	"fail":            types.PAYMENT_FAILED,
}

var paymentStatusSet = map[types.PaymentStatus]bool{
	types.PAYMENT_PENDING:            true,
	types.PAYMENT_PROCESSING:         true,
	types.PAYMENT_SUCCEEDED:          true,
	types.PAYMENT_FAILED:             true,
	types.PAYMENT_CANCELLED:          true,
	types.PAYMENT_REFUNDED:           true,
	types.PAYMENT_PARTIALLY_REFUNDED: true,
}

var trainerBookingStatusSet = map[types.TrainerBookingStatus]bool{
	types.TRAINER_BOOKING_BOOKED:    true,
	types.TRAINER_BOOKING_CANCELLED: true,
	types.TRAINER_BOOKING_COMPLETED: true,
}

func canonicalToken(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizeBookingStatus resolves a raw client token to a canonical booking
// status. Unrecognized tokens fall back to the raw value when it is itself a
// member of the canonical set, otherwise to pending.
func NormalizeBookingStatus(raw string) types.BookingStatus {
	token := canonicalToken(raw)
	if mapped, ok := bookingStatusAliases[token]; ok {
		return mapped
	}
	if s := types.BookingStatus(token); bookingStatusSet[s] {
		return s
	}
	return types.BOOKING_PENDING
}

// NormalizePaymentStatus resolves the payment status carried by the same raw
// token. Absent a recognizable token the payment status stays pending.
func NormalizePaymentStatus(raw string) types.PaymentStatus {
	token := canonicalToken(raw)
	if mapped, ok := paymentStatusAliases[token]; ok {
		return mapped
	}
	if s := types.PaymentStatus(token); paymentStatusSet[s] {
		return s
	}
	return types.PAYMENT_PENDING
}

// NormalizeTrainerBookingStatus validates a raw token against the closed
// trainer-booking status set. Empty input defaults to booked.
func NormalizeTrainerBookingStatus(raw string) (types.TrainerBookingStatus, error) {
	token := canonicalToken(raw)
	if token == "" {
		return types.TRAINER_BOOKING_BOOKED, nil
	}
	if token == "cancel" {
		return types.TRAINER_BOOKING_CANCELLED, nil
	}
	if token == "complete" {
		return types.TRAINER_BOOKING_COMPLETED, nil
	}
	if s := types.TrainerBookingStatus(token); trainerBookingStatusSet[s] {
		return s, nil
	}
	return "", types.NewValidationError("status", "must be one of booked, cancelled, completed")
}

// ResolveStatusHint probes a raw JSON payload for the status token under the
// keys different UIs use. First non-empty hit wins.
func ResolveStatusHint(payload []byte) string {
	body := string(payload)
	for _, key := range []string{"status", "booking_status", "items.0.status"} {
		if v := gjson.Get(body, key); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return ""
}
