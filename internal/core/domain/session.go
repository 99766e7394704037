package domain

import "time"

// SessionStatus describes the locally stored session as seen at startup or on
// demand: whether a token exists, when it expires, and the cached identity.
type SessionStatus struct {
	Authenticated bool       `json:"authenticated"`
	TokenExpiry   *time.Time `json:"token_expiry,omitempty"`
	BusinessID    int64      `json:"business_id,omitempty"`
	User          *User      `json:"user,omitempty"`
}
