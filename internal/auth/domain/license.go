package domain

import "time"

// License is one row of the licensing collaborator's view: a purchased
// tier attached to an email address.
type License struct {
	ID        string
	Tier      string
	ExpiresAt *time.Time
	Active    bool
}
