package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/savantlab/digital-product-system/internal/auth/domain"
	autherror "github.com/savantlab/digital-product-system/internal/errors"
)

const magicTokenBytes = 24

type MagicLinkService struct {
	store   domain.CredentialStore
	ttl     time.Duration
	baseURL string
}

func NewMagicLinkService(store domain.CredentialStore, ttlMinutes int, baseURL string) *MagicLinkService {
	return &MagicLinkService{
		store:   store,
		ttl:     time.Duration(ttlMinutes) * time.Minute,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Issue stores a payload behind a fresh opaque token and returns the
// fully-qualified callback URL embedding it.
func (s *MagicLinkService) Issue(ctx context.Context, email, host string) (string, error) {
	buf := make([]byte, magicTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	payload := &domain.MagicLinkPayload{
		Email:    email,
		Host:     host,
		IssuedAt: time.Now().UTC(),
	}
	if err := s.store.StoreMagicLink(ctx, token, payload, s.ttl); err != nil {
		return "", autherror.ErrUpstreamUnavailable
	}

	return fmt.Sprintf("%s/api/auth/callback?token=%s", s.baseURL, token), nil
}

// Consume atomically reads and deletes the payload. Never-issued, expired
// and already-consumed tokens all come back as ErrLinkNotFound.
func (s *MagicLinkService) Consume(ctx context.Context, token string) (*domain.MagicLinkPayload, error) {
	if token == "" {
		return nil, autherror.ErrLinkNotFound
	}

	payload, err := s.store.ConsumeMagicLink(ctx, token)
	if err != nil {
		return nil, autherror.ErrUpstreamUnavailable
	}
	if payload == nil {
		return nil, autherror.ErrLinkNotFound
	}

	return payload, nil
}
