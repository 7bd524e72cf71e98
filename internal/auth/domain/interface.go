package domain

//go:generate mockgen -destination=../../mocks/mock_license_repository.go -package=mocks github.com/savantlab/digital-product-system/internal/auth/domain LicenseRepository
//go:generate mockgen -destination=../../mocks/mock_credential_store.go -package=mocks github.com/savantlab/digital-product-system/internal/auth/domain CredentialStore

import (
	"context"
	"time"
)

type LicenseRepository interface {
	// ActiveLicenses returns the non-expired, active licenses for an email.
	ActiveLicenses(ctx context.Context, email string) ([]License, error)
}

// CredentialStore is the shared expiring key-value store backing one-time
// codes, attempt counters, magic-link payloads and session revocations.
// Every method is a single-key atomic operation.
type CredentialStore interface {
	// StoreCode saves the code and resets the attempt counter, both with ttl.
	// Any previously outstanding code for the email is overwritten.
	StoreCode(ctx context.Context, email, code string, ttl time.Duration) error
	// Code returns the outstanding code, or "" if none is on record.
	Code(ctx context.Context, email string) (string, error)
	// ConsumeCode deletes the code and its attempt counter.
	ConsumeCode(ctx context.Context, email string) error
	// Attempts returns the current failed-attempt count (0 if none).
	Attempts(ctx context.Context, email string) (int, error)
	// RecordFailedAttempt atomically increments the attempt counter and
	// returns the new count.
	RecordFailedAttempt(ctx context.Context, email string) (int, error)

	StoreMagicLink(ctx context.Context, token string, payload *MagicLinkPayload, ttl time.Duration) error
	// ConsumeMagicLink atomically reads and deletes the payload behind token.
	// Returns (nil, nil) if absent; never-issued, expired and already-consumed
	// are indistinguishable.
	ConsumeMagicLink(ctx context.Context, token string) (*MagicLinkPayload, error)

	// RevokeSession denylists a session id for ttl. A non-positive ttl is a
	// no-op: the credential is already past its own expiry.
	RevokeSession(ctx context.Context, jti string, ttl time.Duration) error
	IsSessionRevoked(ctx context.Context, jti string) (bool, error)
}
