package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savantlab/digital-product-system/internal/auth/domain"
	autherror "github.com/savantlab/digital-product-system/internal/errors"
	"github.com/savantlab/digital-product-system/internal/mocks"
)

func TestMagicLinkService_Issue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockCredentialStore(ctrl)
	s := NewMagicLinkService(mockStore, 15, "https://events.example.com/")
	ctx := context.Background()

	var storedToken string
	mockStore.EXPECT().
		StoreMagicLink(gomock.Any(), gomock.Any(), gomock.Any(), 15*time.Minute).
		DoAndReturn(func(_ context.Context, token string, payload *domain.MagicLinkPayload, _ time.Duration) error {
			storedToken = token
			assert.Equal(t, "alice@x.com", payload.Email)
			assert.Equal(t, "book.example.com", payload.Host)
			assert.False(t, payload.IssuedAt.IsZero())
			return nil
		})

	url, err := s.Issue(ctx, "alice@x.com", "book.example.com")
	require.NoError(t, err)

	// 24 bytes of entropy is 32 chars in unpadded URL-safe base64.
	assert.Len(t, storedToken, 32)
	assert.Equal(t, "https://events.example.com/api/auth/callback?token="+storedToken, url)
	assert.False(t, strings.ContainsAny(storedToken, "+/="))
}

func TestMagicLinkService_Consume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockCredentialStore(ctrl)
	s := NewMagicLinkService(mockStore, 15, "https://events.example.com")
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		payload := &domain.MagicLinkPayload{Email: "alice@x.com", Host: "book.example.com"}
		mockStore.EXPECT().ConsumeMagicLink(gomock.Any(), "tok123").Return(payload, nil)

		got, err := s.Consume(ctx, "tok123")
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("absent, expired and reused are indistinguishable", func(t *testing.T) {
		mockStore.EXPECT().ConsumeMagicLink(gomock.Any(), "tok123").Return(nil, nil)

		_, err := s.Consume(ctx, "tok123")
		assert.Equal(t, autherror.ErrLinkNotFound, err)
	})

	t.Run("empty token short-circuits", func(t *testing.T) {
		_, err := s.Consume(ctx, "")
		assert.Equal(t, autherror.ErrLinkNotFound, err)
	})

	t.Run("store unavailable fails closed", func(t *testing.T) {
		mockStore.EXPECT().ConsumeMagicLink(gomock.Any(), "tok123").Return(nil, assert.AnError)

		_, err := s.Consume(ctx, "tok123")
		assert.Equal(t, autherror.ErrUpstreamUnavailable, err)
	})
}
