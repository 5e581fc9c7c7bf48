package models

import (
	"fmt"
	"time"

	id "surveygate/pkg/domain"
)

// Class groups routes that share a per-user quota.
type Class string

const (
	// ClassRead: eligibility and access lookups done on every survey view
	ClassRead Class = "read"
	// ClassBatch: list filtering, which fans out one rule fetch per survey
	ClassBatch Class = "batch"
)

// Limit is a request budget per window.
type Limit struct {
	Requests int
	Window   time.Duration
}

// Result represents the outcome of a rate limit check.
type Result struct {
	Allowed    bool      `json:"allowed"`
	Limit      int       `json:"limit"`
	Remaining  int       `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
	RetryAfter int       `json:"retry_after,omitempty"` // seconds, only set when not allowed
}

// UserKey is the bucket key for a user and class.
func UserKey(userID id.UserID, class Class) string {
	return fmt.Sprintf("user:%s:%s", userID, class)
}

// ExceededResponse is the body written with a 429.
type ExceededResponse struct {
	Error      string    `json:"error"`
	Message    string    `json:"message"`
	QuotaLimit int       `json:"quota_limit"`
	QuotaReset time.Time `json:"quota_reset"`
	RetryAfter int       `json:"retry_after"`
}
