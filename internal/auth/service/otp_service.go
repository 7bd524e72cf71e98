package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"log"
	"time"

	"github.com/savantlab/digital-product-system/internal/auth/domain"
	autherror "github.com/savantlab/digital-product-system/internal/errors"
)

type OTPService struct {
	store       domain.CredentialStore
	ttl         time.Duration
	maxAttempts int
}

func NewOTPService(store domain.CredentialStore, ttlMinutes, maxAttempts int) *OTPService {
	return &OTPService{
		store:       store,
		ttl:         time.Duration(ttlMinutes) * time.Minute,
		maxAttempts: maxAttempts,
	}
}

// Issue generates a fresh 6-digit code and stores it with the attempt
// counter reset, replacing any outstanding code for the email.
func (s *OTPService) Issue(ctx context.Context, email string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}
	if err := s.store.StoreCode(ctx, email, code, s.ttl); err != nil {
		return "", autherror.ErrUpstreamUnavailable
	}
	return code, nil
}

// Verify checks a submitted code against the stored one. The code is
// single-use: both it and the attempt counter are deleted on success.
func (s *OTPService) Verify(ctx context.Context, email, code string) error {
	stored, err := s.store.Code(ctx, email)
	if err != nil {
		return autherror.ErrUpstreamUnavailable
	}
	if stored == "" {
		return autherror.ErrCodeExpired
	}

	attempts, err := s.store.Attempts(ctx, email)
	if err != nil {
		return autherror.ErrUpstreamUnavailable
	}
	if attempts >= s.maxAttempts {
		return autherror.ErrTooManyAttempts
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		if _, err := s.store.RecordFailedAttempt(ctx, email); err != nil {
			log.Printf("warn: failed to record OTP attempt for %s: %v", email, err)
		}
		return autherror.ErrInvalidCode
	}

	if err := s.store.ConsumeCode(ctx, email); err != nil {
		return autherror.ErrUpstreamUnavailable
	}

	return nil
}

// generateCode draws a uniform 6-digit code. A 32-bit source reduced mod
// 1e6 carries negligible bias over the 000000-999999 space.
func generateCode() (string, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint32(buf[:]) % 1000000

	return fmt.Sprintf("%06d", n), nil
}
