package domain

import "time"

// MagicLinkPayload is the state stored behind an opaque magic-link token.
// The entry is deleted atomically on first consumption.
type MagicLinkPayload struct {
	Email    string    `json:"email"`
	Host     string    `json:"host,omitempty"`
	Redirect string    `json:"redirect,omitempty"`
	IssuedAt time.Time `json:"iat"`
}
