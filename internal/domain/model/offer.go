package model

import "time"

// OfferCountdown is the time left in the current offer window.
//
// @Description Time left before the current offer window closes
type OfferCountdown struct {
	Days    int       `json:"days" example:"6"`
	Hours   int       `json:"hours" example:"23"`
	Minutes int       `json:"minutes" example:"59"`
	Seconds int       `json:"seconds" example:"12"`
	EndsAt  time.Time `json:"ends_at"`
}
