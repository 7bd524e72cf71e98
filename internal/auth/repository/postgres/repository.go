package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/savantlab/digital-product-system/internal/auth/domain"
)

// Querier is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type LicenseRepository struct {
	db Querier
}

func NewLicenseRepository(db Querier) *LicenseRepository {
	return &LicenseRepository{db: db}
}

// ActiveLicenses returns all active, non-expired licenses attached to the
// email. Licensing rows live in the storefront's schema; this is a
// read-only view of it.
func (r *LicenseRepository) ActiveLicenses(ctx context.Context, email string) ([]domain.License, error) {
	query := `
		SELECT l.id::text, l.license_tier, l.expiration_date, COALESCE(l.is_active, true)
		FROM licenses l
		JOIN license_users u ON u.license_id = l.id
		WHERE LOWER(u.email) = LOWER($1)
		  AND COALESCE(l.is_active, true) = true
		  AND (l.expiration_date IS NULL OR l.expiration_date > NOW());
	`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query licenses for %s: %w", email, err)
	}
	defer rows.Close()

	var licenses []domain.License
	for rows.Next() {
		var lic domain.License
		if err := rows.Scan(&lic.ID, &lic.Tier, &lic.ExpiresAt, &lic.Active); err != nil {
			return nil, fmt.Errorf("failed to scan license row: %w", err)
		}
		licenses = append(licenses, lic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read license rows: %w", err)
	}

	return licenses, nil
}
