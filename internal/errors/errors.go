package errors

import (
	"errors"
)

var (
	ErrCodeExpired         = errors.New("code expired")
	ErrTooManyAttempts     = errors.New("too many attempts")
	ErrInvalidCode         = errors.New("invalid code")
	ErrLinkNotFound        = errors.New("link not found or expired")
	ErrInvalidSession      = errors.New("invalid session")
	ErrSessionExpired      = errors.New("session expired")
	ErrSessionRevoked      = errors.New("session revoked")
	ErrHostMismatch        = errors.New("session pinned to another host")
	ErrNotEntitled         = errors.New("no entitlement for host")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
