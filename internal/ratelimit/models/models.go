package models

import (
	"fmt"
	"time"
)

// EndpointClass categorizes endpoints for differentiated rate limiting.
type EndpointClass string

const (
	// ClassContact: contact form relay (5 req/min by default).
	ClassContact EndpointClass = "contact"
	// ClassChat: assistant proxy (20 req/min by default).
	ClassChat EndpointClass = "chat"
	// ClassCarousel: carousel input events (240 req/min by default).
	ClassCarousel EndpointClass = "carousel"
)

// IsValid checks if the endpoint class is one of the supported values.
func (c EndpointClass) IsValid() bool {
	switch c {
	case ClassContact, ClassChat, ClassCarousel:
		return true
	}
	return false
}

// Limit is a request budget over a sliding window.
type Limit struct {
	Requests int
	Window   time.Duration
}

// RateLimitResult represents the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed    bool      `json:"allowed"`
	Limit      int       `json:"limit"`
	Remaining  int       `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
	RetryAfter int       `json:"retry_after,omitempty"` // seconds, only set when not allowed
}

// RateLimitExceededResponse is the API response when rate limit is exceeded.
type RateLimitExceededResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"`
}

// IPKey is the bucket key for an IP within a class.
func IPKey(class EndpointClass, ip string) string {
	return fmt.Sprintf("rl:ip:%s:%s", class, ip)
}
