package service

//go:generate mockgen -destination=../../mocks/mock_session_manager.go -package=mocks github.com/savantlab/digital-product-system/internal/auth/service SessionManager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/savantlab/digital-product-system/internal/auth/domain"
	autherror "github.com/savantlab/digital-product-system/internal/errors"
)

type SessionManager interface {
	Issue(email, host string) (string, error)
	Verify(ctx context.Context, token, host string) (string, error)
	Revoke(ctx context.Context, token string) error
}

// SessionClaims is the signed session credential: subject email, a unique
// session id (jti) for revocation, and an optional host pin.
type SessionClaims struct {
	jwt.RegisteredClaims
	Host string `json:"host,omitempty"`
}

type SessionService struct {
	secret []byte
	ttl    time.Duration
	store  domain.CredentialStore
}

func NewSessionService(secret string, ttlMinutes int, store domain.CredentialStore) *SessionService {
	return &SessionService{
		secret: []byte(secret),
		ttl:    time.Duration(ttlMinutes) * time.Minute,
		store:  store,
	}
}

// Issue mints a signed HS256 credential valid for the configured session
// lifetime. When host is non-empty the session is pinned to it.
func (s *SessionService) Issue(email, host string) (string, error) {
	now := time.Now()

	claims := SessionClaims{
		Host: host,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify validates the signature and expiry, checks the revocation set
// (one read, no writes) and enforces the host pin. Returns the subject
// email on success.
func (s *SessionService) Verify(ctx context.Context, token, host string) (string, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, s.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", autherror.ErrSessionExpired
		}
		return "", autherror.ErrInvalidSession
	}
	if !parsed.Valid {
		return "", autherror.ErrInvalidSession
	}

	revoked, err := s.store.IsSessionRevoked(ctx, claims.ID)
	if err != nil {
		return "", autherror.ErrUpstreamUnavailable
	}
	if revoked {
		return "", autherror.ErrSessionRevoked
	}

	if claims.Host != "" && host != "" && claims.Host != host {
		return "", autherror.ErrHostMismatch
	}

	return claims.Subject, nil
}

// Revoke denylists the credential's session id for its remaining lifetime.
// Expiry is deliberately not validated: a just-expired credential can still
// be logged out. An undecodable credential is a silent no-op so that logout
// always appears to succeed.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	claims := &SessionClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, err := parser.ParseWithClaims(token, claims, s.keyFunc); err != nil {
		return nil
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	return s.store.RevokeSession(ctx, claims.ID, ttl)
}

func (s *SessionService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return s.secret, nil
}
