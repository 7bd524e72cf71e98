package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_URL", "postgres://localhost:5432/app")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg := Load()

	assert.Equal(t, "8001", cfg.Port)
	assert.Equal(t, 4320, cfg.SessionTTLMin)
	assert.Equal(t, 15, cfg.MagicLinkTTLMin)
	assert.Equal(t, 10, cfg.OTPTTLMin)
	assert.Equal(t, 5, cfg.OTPAttemptMax)
	assert.Equal(t, "*", cfg.AllowedOrigins)
	assert.True(t, cfg.EntitlementFailOpen)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_TTL_MIN", "60")
	t.Setenv("OTP_ATTEMPT_MAX", "3")
	t.Setenv("ENTITLEMENT_FAIL_OPEN", "false")
	t.Setenv("BOOK_DOMAIN", "Book.Example.Com")

	cfg := Load()

	assert.Equal(t, 60, cfg.SessionTTLMin)
	assert.Equal(t, 3, cfg.OTPAttemptMax)
	assert.False(t, cfg.EntitlementFailOpen)
	assert.Equal(t, "book.example.com", cfg.BookDomain)
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("OTP_TTL_MIN", "not-a-number")

	cfg := Load()

	assert.Equal(t, 10, cfg.OTPTTLMin)
}

func TestTierEntitlements(t *testing.T) {
	setRequiredEnv(t)

	t.Run("defaults", func(t *testing.T) {
		cfg := Load()

		require.Contains(t, cfg.TierEntitlements, "academic")
		assert.ElementsMatch(t, []string{"book", "app", "lab"}, cfg.TierEntitlements["academic"])
		assert.ElementsMatch(t, []string{"book", "app"}, cfg.TierEntitlements["individual"])
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv("ENTITLEMENTS_INDIVIDUAL", "book, app, lab")

		cfg := Load()

		assert.ElementsMatch(t, []string{"book", "app", "lab"}, cfg.TierEntitlements["individual"])
	})
}
