package domain

import "time"

// RateLimitRule caps accepted submissions per identifier inside a sliding
// window.
type RateLimitRule struct {
	Requests int
	Window   time.Duration
}

// Decision is the outcome of a rate limit check.
type Decision struct {
	Allowed      bool
	Identifier   string
	CurrentCount int
}
