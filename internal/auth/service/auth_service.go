package service

import (
	"context"
	"log"
	"strings"

	"github.com/savantlab/digital-product-system/internal/auth/domain"
	"github.com/savantlab/digital-product-system/internal/auth/dto"
	"github.com/savantlab/digital-product-system/internal/email"
)

// AuthService orchestrates the passwordless login flow: start issues a
// one-time proof and hands it to the mailer, verify/callback exchange the
// proof for a session, authz answers the per-request forward-auth check.
type AuthService struct {
	licenses     domain.LicenseRepository
	otp          *OTPService
	links        *MagicLinkService
	sessions     SessionManager
	entitlements *EntitlementService
	mailer       email.Mailer
	otpTTLMin    int
	linkTTLMin   int
}

func NewAuthService(
	licenses domain.LicenseRepository,
	otp *OTPService,
	links *MagicLinkService,
	sessions SessionManager,
	entitlements *EntitlementService,
	mailer email.Mailer,
	otpTTLMin, linkTTLMin int,
) *AuthService {
	return &AuthService{
		licenses:     licenses,
		otp:          otp,
		links:        links,
		sessions:     sessions,
		entitlements: entitlements,
		mailer:       mailer,
		otpTTLMin:    otpTTLMin,
		linkTTLMin:   linkTTLMin,
	}
}

// StartLogin issues an OTP (or magic link) and emails it. It never reports
// failure to the caller: whether the email is registered, whether issuance
// worked and whether delivery succeeded must all be indistinguishable at
// the boundary.
func (s *AuthService) StartLogin(ctx context.Context, in dto.StartInput) {
	addr := normalizeEmail(in.Email)
	host := strings.ToLower(strings.TrimSpace(in.Host))

	registered, err := s.isRegistered(ctx, addr)
	if err != nil {
		log.Printf("warn: registration lookup failed for %s: %v", addr, err)
		return
	}
	if !registered {
		return
	}

	if in.Method == "link" {
		url, err := s.links.Issue(ctx, addr, host)
		if err != nil {
			log.Printf("warn: magic link issuance failed for %s: %v", addr, err)
			return
		}
		s.deliver(ctx, "magic_link", addr, email.Vars{
			"first_name": in.FirstName,
			"url":        url,
			"minutes":    s.linkTTLMin,
		})
		return
	}

	code, err := s.otp.Issue(ctx, addr)
	if err != nil {
		log.Printf("warn: OTP issuance failed for %s: %v", addr, err)
		return
	}
	s.deliver(ctx, "otp_code", addr, email.Vars{
		"first_name": in.FirstName,
		"code":       code,
		"minutes":    s.otpTTLMin,
		"host":       host,
	})
}

// VerifyCode checks the submitted OTP and mints a session on success.
func (s *AuthService) VerifyCode(ctx context.Context, in dto.VerifyInput) (string, error) {
	addr := normalizeEmail(in.Email)
	host := strings.ToLower(strings.TrimSpace(in.Host))

	if err := s.otp.Verify(ctx, addr, strings.TrimSpace(in.Code)); err != nil {
		return "", err
	}

	return s.sessions.Issue(addr, host)
}

// Callback consumes a magic-link token and mints a session. Returns the
// session credential and the post-login redirect target.
func (s *AuthService) Callback(ctx context.Context, token string) (session, redirect string, err error) {
	payload, err := s.links.Consume(ctx, token)
	if err != nil {
		return "", "", err
	}

	session, err = s.sessions.Issue(payload.Email, payload.Host)
	if err != nil {
		return "", "", err
	}

	redirect = payload.Redirect
	if redirect == "" {
		redirect = "https://" + payload.Host
	}

	return session, redirect, nil
}

// Logout revokes the presented credential. It always succeeds from the
// client's point of view.
func (s *AuthService) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.sessions.Revoke(ctx, token); err != nil {
		log.Printf("warn: session revocation failed: %v", err)
	}
}

// Authz is the forward-auth check: validate the session, then gate on the
// requesting host's entitlement. Side-effect-free.
func (s *AuthService) Authz(ctx context.Context, token, host string) (string, error) {
	addr, err := s.sessions.Verify(ctx, token, host)
	if err != nil {
		return "", err
	}

	if err := s.entitlements.Check(ctx, addr, host); err != nil {
		return "", err
	}

	return addr, nil
}

// isRegistered treats any holder of an active license as registered.
func (s *AuthService) isRegistered(ctx context.Context, addr string) (bool, error) {
	licenses, err := s.licenses.ActiveLicenses(ctx, addr)
	if err != nil {
		return false, err
	}
	return len(licenses) > 0, nil
}

func (s *AuthService) deliver(ctx context.Context, template, to string, vars email.Vars) {
	if err := s.mailer.Send(ctx, template, to, vars); err != nil {
		log.Printf("warn: %s delivery to %s failed: %v", template, to, err)
	}
}

func normalizeEmail(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}
