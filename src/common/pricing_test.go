package common

import (
	"rbs/src/types"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInterval(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	minutes, hours, err := Interval(start, start.Add(90*time.Minute))
	assert.Nil(t, err)
	assert.Equal(t, 90, minutes)
	assert.Equal(t, 1.5, hours)

	_, _, err = Interval(start, start)
	assert.ErrorIs(t, err, types.ErrInvalidInterval)

	_, _, err = Interval(start, start.Add(-time.Hour))
	assert.ErrorIs(t, err, types.ErrInvalidInterval)
}

func TestSubtotal(t *testing.T) {
	assert.Equal(t, 37.5, Subtotal(25.0, 1.5))
	assert.Equal(t, 0.0, Subtotal(25.0, 0))
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 0.13, RoundMoney(0.125))
	assert.Equal(t, 0.38, RoundMoney(0.375))
	assert.Equal(t, 37.5, RoundMoney(37.5))
	assert.Equal(t, 12.34, RoundMoney(12.341))
	assert.Equal(t, 12.35, RoundMoney(12.349))
}

func TestAggregateTotal(t *testing.T) {
	total, err := AggregateTotal(100, 10, 8, 2)
	assert.Nil(t, err)
	assert.Equal(t, 100.0, total)

	total, err = AggregateTotal(37.5, 0, 0, 0)
	assert.Nil(t, err)
	assert.Equal(t, 37.5, total)

	var verr *types.ValidationError
	_, err = AggregateTotal(-1, 0, 0, 0)
	assert.ErrorAs(t, err, &verr)

	_, err = AggregateTotal(100, -5, 0, 0)
	assert.ErrorAs(t, err, &verr)

	_, err = AggregateTotal(100, 0, -1, 0)
	assert.ErrorAs(t, err, &verr)

	_, err = AggregateTotal(100, 0, 0, -1)
	assert.ErrorAs(t, err, &verr)

	_, err = AggregateTotal(50, 200, 0, 0)
	assert.ErrorAs(t, err, &verr)
}
