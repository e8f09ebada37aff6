//go:build !integration

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOfferClock_Remaining(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewOfferClock(start, 0)

	tests := []struct {
		name                 string
		now                  time.Time
		days, hours, minutes int
		seconds              int
	}{
		{name: "one hour in", now: start.Add(time.Hour), days: 6, hours: 23},
		{name: "boundary starts a full window", now: start.Add(7 * 24 * time.Hour), days: 7},
		{name: "second window", now: start.Add(8*24*time.Hour + 90*time.Second), days: 5, hours: 23, minutes: 58, seconds: 30},
		{name: "before start", now: start.Add(-time.Hour), hours: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clock.Remaining(tt.now)

			assert.Equal(t, tt.days, got.Days)
			assert.Equal(t, tt.hours, got.Hours)
			assert.Equal(t, tt.minutes, got.Minutes)
			assert.Equal(t, tt.seconds, got.Seconds)
		})
	}
}

func TestOfferClock_EndsAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := NewOfferClock(start, 24*time.Hour)

	got := clock.Remaining(start.Add(30 * time.Hour))

	assert.Equal(t, start.Add(48*time.Hour), got.EndsAt)
	assert.Equal(t, 24*time.Hour, clock.Period())
	assert.Equal(t, DefaultOfferPeriod, NewOfferClock(start, -time.Second).Period())
}
