package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	autherror "github.com/savantlab/digital-product-system/internal/errors"
	"github.com/savantlab/digital-product-system/internal/mocks"
)

const testSecret = "test-signing-secret"

func TestSessionService_IssueAndVerify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockCredentialStore(ctrl)
	s := NewSessionService(testSecret, 60, mockStore)
	ctx := context.Background()

	t.Run("round trip returns subject", func(t *testing.T) {
		token, err := s.Issue("bob@y.com", "book.example.com")
		require.NoError(t, err)

		mockStore.EXPECT().IsSessionRevoked(gomock.Any(), gomock.Any()).Return(false, nil)

		email, err := s.Verify(ctx, token, "book.example.com")
		require.NoError(t, err)
		assert.Equal(t, "bob@y.com", email)
	})

	t.Run("host pin rejects another host", func(t *testing.T) {
		token, err := s.Issue("bob@y.com", "book.example.com")
		require.NoError(t, err)

		mockStore.EXPECT().IsSessionRevoked(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err = s.Verify(ctx, token, "lab.example.com")
		assert.Equal(t, autherror.ErrHostMismatch, err)
	})

	t.Run("unpinned session passes any host", func(t *testing.T) {
		token, err := s.Issue("bob@y.com", "")
		require.NoError(t, err)

		mockStore.EXPECT().IsSessionRevoked(gomock.Any(), gomock.Any()).Return(false, nil)

		email, err := s.Verify(ctx, token, "lab.example.com")
		require.NoError(t, err)
		assert.Equal(t, "bob@y.com", email)
	})

	t.Run("revoked session fails regardless of validity", func(t *testing.T) {
		token, err := s.Issue("bob@y.com", "")
		require.NoError(t, err)

		mockStore.EXPECT().IsSessionRevoked(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err = s.Verify(ctx, token, "")
		assert.Equal(t, autherror.ErrSessionRevoked, err)
	})

	t.Run("expired credential", func(t *testing.T) {
		expired := NewSessionService(testSecret, -1, mockStore)
		token, err := expired.Issue("bob@y.com", "")
		require.NoError(t, err)

		_, err = s.Verify(ctx, token, "")
		assert.Equal(t, autherror.ErrSessionExpired, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := s.Verify(ctx, "not-a-jwt", "")
		assert.Equal(t, autherror.ErrInvalidSession, err)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := NewSessionService("some-other-secret", 60, mockStore)
		token, err := other.Issue("mallory@z.com", "")
		require.NoError(t, err)

		_, err = s.Verify(ctx, token, "")
		assert.Equal(t, autherror.ErrInvalidSession, err)
	})

	t.Run("store unavailable fails closed", func(t *testing.T) {
		token, err := s.Issue("bob@y.com", "")
		require.NoError(t, err)

		mockStore.EXPECT().IsSessionRevoked(gomock.Any(), gomock.Any()).Return(false, assert.AnError)

		_, err = s.Verify(ctx, token, "")
		assert.Equal(t, autherror.ErrUpstreamUnavailable, err)
	})
}

func TestSessionService_Revoke(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockCredentialStore(ctrl)
	s := NewSessionService(testSecret, 60, mockStore)
	ctx := context.Background()

	t.Run("denylists jti with remaining lifetime", func(t *testing.T) {
		token, err := s.Issue("bob@y.com", "")
		require.NoError(t, err)

		mockStore.EXPECT().
			RevokeSession(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, jti string, ttl time.Duration) error {
				assert.NotEmpty(t, jti)
				assert.Greater(t, ttl, time.Duration(0))
				assert.LessOrEqual(t, ttl, 60*time.Minute)
				return nil
			})

		assert.NoError(t, s.Revoke(ctx, token))
	})

	t.Run("undecodable credential is a silent no-op", func(t *testing.T) {
		assert.NoError(t, s.Revoke(ctx, "garbage"))
	})

	t.Run("already expired credential is a no-op", func(t *testing.T) {
		expired := NewSessionService(testSecret, -1, mockStore)
		token, err := expired.Issue("bob@y.com", "")
		require.NoError(t, err)

		assert.NoError(t, s.Revoke(ctx, token))
	})

	t.Run("revocation survives even past expiry parsing", func(t *testing.T) {
		// Revoke parses without claims validation, so an expired-but-signed
		// token still decodes; jti extraction must work.
		claims := SessionClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "bob@y.com",
				ID:        "some-jti",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		mockStore.EXPECT().RevokeSession(gomock.Any(), "some-jti", gomock.Any()).Return(nil)

		assert.NoError(t, s.Revoke(ctx, token))
	})
}
