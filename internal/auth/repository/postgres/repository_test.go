package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "github.com/savantlab/digital-product-system/internal/auth/repository/postgres"
)

// TestActiveLicenses covers the licensing lookup used by both the
// registration check and the entitlement gate.
func TestActiveLicenses(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewLicenseRepository(mock)
	columns := []string{"id", "license_tier", "expiration_date", "is_active"}
	ctx := context.Background()

	t.Run("returns active licenses", func(t *testing.T) {
		expiry := time.Now().Add(30 * 24 * time.Hour)
		mock.ExpectQuery("SELECT l.id").
			WithArgs("alice@x.com").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("lic-1", "academic", &expiry, true).
				AddRow("lic-2", "individual", (*time.Time)(nil), true))

		licenses, err := r.ActiveLicenses(ctx, "alice@x.com")
		require.NoError(t, err)
		require.Len(t, licenses, 2)
		assert.Equal(t, "lic-1", licenses[0].ID)
		assert.Equal(t, "academic", licenses[0].Tier)
		assert.NotNil(t, licenses[0].ExpiresAt)
		assert.Nil(t, licenses[1].ExpiresAt)
	})

	t.Run("no rows means no licenses", func(t *testing.T) {
		mock.ExpectQuery("SELECT l.id").
			WithArgs("nobody@x.com").
			WillReturnRows(pgxmock.NewRows(columns))

		licenses, err := r.ActiveLicenses(ctx, "nobody@x.com")
		require.NoError(t, err)
		assert.Empty(t, licenses)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT l.id").
			WithArgs("alice@x.com").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.ActiveLicenses(ctx, "alice@x.com")
		assert.Error(t, err)
	})
}
