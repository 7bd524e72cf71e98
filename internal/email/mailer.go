package email

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=mocks github.com/savantlab/digital-product-system/internal/email Mailer,SuppressionList

import "context"

// Vars holds the template variables for a single message.
type Vars map[string]interface{}

// Mailer delivers a templated transactional email.
type Mailer interface {
	Send(ctx context.Context, template, to string, vars Vars) error
}

// SuppressionList tracks recipients that bounced or complained and must
// not be emailed again. Entries persist in the shared store across
// restarts and are only added, never aged out.
type SuppressionList interface {
	Add(ctx context.Context, email string) error
	IsSuppressed(ctx context.Context, email string) (bool, error)
}
