package entity

import "time"

// Session is a revocable grant of access tied to one user and one bearer
// token. Sessions are never deleted; sign-out sets LogoutAt.
type Session struct {
	UUID        string
	AccessToken string
	LoginAt     time.Time
	ExpiresAt   time.Time
	LogoutAt    *time.Time

	User *User
}

// Closed reports whether the session has been explicitly signed out.
// LogoutAt is the sole authoritative state; expiry gating is a separate,
// opt-in check in the session authority.
func (s *Session) Closed() bool {
	return s.LogoutAt != nil
}

// Expired reports whether the fixed validity window has elapsed.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
