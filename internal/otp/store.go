// Package otp owns the process-wide one-time-passcode state. Records are
// deliberately not durable: a restart invalidates outstanding passcodes and
// the customer simply requests a new one.
package otp

import (
	"fmt"
	"sync"
	"time"

	"github.com/bank-mobile-api/internal/domain"
)

// TTL is how long an issued passcode stays valid.
const TTL = 5 * time.Minute

// Store is a keyed, time-bounded passcode store. A new Put for an identifier
// supersedes the previous record even if it has not expired; concurrent Puts
// race under last-write-wins, which is the intended contract.
type Store struct {
	mu      sync.Mutex
	records map[string]*domain.OTPRecord
}

// NewStore creates a Store and starts its background sweep. The sweep only
// bounds memory; expiry is always checked on read.
func NewStore() *Store {
	s := &Store{records: make(map[string]*domain.OTPRecord)}
	go s.sweep()
	return s
}

// Put records a freshly issued passcode for the identifier, overwriting any
// existing record.
func (s *Store) Put(identifier, code, issueID string, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[identifier] = &domain.OTPRecord{
		Code:      code,
		IssueID:   issueID,
		IssuedAt:  now,
		ExpiresAt: now.Add(TTL),
	}
}

// Verify checks a submitted code against the current record. On success the
// record is marked verified; re-verifying an already-verified, unexpired
// record succeeds with no further effect. The record is never deleted here —
// it stays readable for the login precondition until it expires.
func (s *Store) Verify(identifier, code string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[identifier]
	if !ok {
		return fmt.Errorf("no passcode issued for identifier: %w", domain.ErrNotFound)
	}
	if rec.Expired(now) {
		return fmt.Errorf("passcode issued at %s: %w", rec.IssuedAt.Format(time.RFC3339), domain.ErrOTPExpired)
	}
	if rec.Code != code {
		return fmt.Errorf("submitted code does not match: %w", domain.ErrOTPMismatch)
	}
	rec.Verified = true
	return nil
}

// IsVerified reports whether the identifier holds a current record that has
// been verified and has not expired.
func (s *Store) IsVerified(identifier string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[identifier]
	return ok && rec.Verified && !rec.Expired(now)
}

// sweep removes expired records every minute.
func (s *Store) sweep() {
	for {
		time.Sleep(time.Minute)
		now := time.Now()
		s.mu.Lock()
		for identifier, rec := range s.records {
			if rec.Expired(now) {
				delete(s.records, identifier)
			}
		}
		s.mu.Unlock()
	}
}
