package domain

import "time"

// OTPRecord is the live one-time-passcode state for a single customer
// identifier. At most one record per identifier is meaningful: a later send
// supersedes the earlier one even if it has not expired yet.
type OTPRecord struct {
	Code      string
	IssueID   string // audit correlation id, never the code itself
	IssuedAt  time.Time
	ExpiresAt time.Time
	Verified  bool
}

// Expired reports whether the record is past its expiry at the given instant.
func (r *OTPRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
