package common

import (
	"math"
	"rbs/src/types"
	"time"
)

// Interval validates a booking window and returns its duration in whole
// minutes and fractional hours. End must be strictly after start.
func Interval(start, end time.Time) (int, float64, error) {
	if !end.After(start) {
		return 0, 0, types.ErrInvalidInterval
	}
	d := end.Sub(start)
	minutes := int(d / time.Minute)
	hours := d.Hours()
	return minutes, hours, nil
}

// Subtotal is rate x hours, unrounded. Rounding happens once, at the point
// of persistence, so summing items does not accumulate rounding error.
func Subtotal(hourlyRate float64, hours float64) float64 {
	return hourlyRate * hours
}

// RoundMoney rounds to 2 decimal places, half up.
func RoundMoney(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// AggregateTotal computes subtotal - discount + tax + fee. Each component
// must be independently non-negative, and the discount may not push the
// total below zero.
func AggregateTotal(subtotal, discount, tax, fee float64) (float64, error) {
	if subtotal < 0 {
		return 0, types.NewValidationError("subtotal", "must not be negative")
	}
	if discount < 0 {
		return 0, types.NewValidationError("discount", "must not be negative")
	}
	if tax < 0 {
		return 0, types.NewValidationError("tax", "must not be negative")
	}
	if fee < 0 {
		return 0, types.NewValidationError("fee", "must not be negative")
	}
	total := subtotal - discount + tax + fee
	if total < 0 {
		return 0, types.NewValidationError("discount", "exceeds booking total")
	}
	return total, nil
}
