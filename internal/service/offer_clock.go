package service

import (
	"time"

	"github.com/guttosm/flashe-service/internal/domain/model"
)

// DefaultOfferPeriod is the length of one offer window.
const DefaultOfferPeriod = 7 * 24 * time.Hour

// OfferClock tracks a repeating offer window. Windows are back to back,
// starting at start, each lasting period; a new one begins the moment the
// previous one ends.
type OfferClock struct {
	start  time.Time
	period time.Duration
}

// NewOfferClock creates an OfferClock. A non-positive period uses DefaultOfferPeriod.
func NewOfferClock(start time.Time, period time.Duration) *OfferClock {
	if period <= 0 {
		period = DefaultOfferPeriod
	}
	return &OfferClock{start: start, period: period}
}

// Period returns the window length.
func (c *OfferClock) Period() time.Duration {
	return c.period
}

// Remaining returns the time left in the window containing now. At an exact
// window boundary the full next window is reported. Times before start count
// backwards into earlier windows.
func (c *OfferClock) Remaining(now time.Time) model.OfferCountdown {
	elapsed := now.Sub(c.start) % c.period
	if elapsed < 0 {
		elapsed += c.period
	}
	left := c.period - elapsed

	total := int64(left / time.Second)
	return model.OfferCountdown{
		Days:    int(total / 86400),
		Hours:   int(total % 86400 / 3600),
		Minutes: int(total % 3600 / 60),
		Seconds: int(total % 60),
		EndsAt:  now.Add(left).UTC(),
	}
}
