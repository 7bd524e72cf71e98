package service

import (
	"context"
	"strings"

	"github.com/savantlab/digital-product-system/config"
	"github.com/savantlab/digital-product-system/internal/auth/domain"
	autherror "github.com/savantlab/digital-product-system/internal/errors"
)

// EntitlementService decides whether an authenticated identity may access
// a given host, based on the scopes granted by its active license tiers.
type EntitlementService struct {
	licenses domain.LicenseRepository
	scopes   map[string]string
	tiers    map[string][]string
	failOpen bool
}

func NewEntitlementService(licenses domain.LicenseRepository, cfg *config.Config) *EntitlementService {
	scopes := make(map[string]string)
	if cfg.BookDomain != "" {
		scopes[cfg.BookDomain] = "book"
	}
	if cfg.LabDomain != "" {
		scopes[cfg.LabDomain] = "lab"
	}
	if cfg.AppDomain != "" {
		scopes[cfg.AppDomain] = "app"
	}

	return &EntitlementService{
		licenses: licenses,
		scopes:   scopes,
		tiers:    cfg.TierEntitlements,
		failOpen: cfg.EntitlementFailOpen,
	}
}

// Check returns nil when email may access host. Licensing lookup failures
// fail closed; a host mapping to no known scope follows the configured
// fail-open default so that infrastructure hosts are not blocked.
func (s *EntitlementService) Check(ctx context.Context, email, host string) error {
	scope := s.scopeForHost(host)
	if scope == "" {
		if s.failOpen {
			return nil
		}
		return autherror.ErrNotEntitled
	}

	licenses, err := s.licenses.ActiveLicenses(ctx, email)
	if err != nil {
		return autherror.ErrUpstreamUnavailable
	}

	for _, lic := range licenses {
		for _, granted := range s.tiers[strings.ToLower(lic.Tier)] {
			if granted == scope {
				return nil
			}
		}
	}

	return autherror.ErrNotEntitled
}

// scopeForHost resolves via the explicit domain map first, then falls back
// to subdomain-prefix heuristics.
func (s *EntitlementService) scopeForHost(host string) string {
	h := strings.ToLower(strings.TrimSpace(host))
	if h == "" {
		return ""
	}
	if scope, ok := s.scopes[h]; ok {
		return scope
	}

	for _, scope := range []string{"book", "lab", "app"} {
		if strings.HasPrefix(h, scope+".") {
			return scope
		}
	}

	return ""
}
