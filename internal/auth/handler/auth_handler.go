package handler

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/savantlab/digital-product-system/config"
	"github.com/savantlab/digital-product-system/internal/auth/dto"
	"github.com/savantlab/digital-product-system/internal/auth/service"
	autherror "github.com/savantlab/digital-product-system/internal/errors"
)

const sessionCookieName = "session"

type AuthHandler struct {
	authService *service.AuthService
	cfg         *config.Config
	validate    *validator.Validate
}

func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
		validate:    validator.New(),
	}
}

// Start begins a login. The response is 200 {ok:true} for registered and
// unregistered emails alike.
func (h *AuthHandler) Start(c *fiber.Ctx) error {
	var input dto.StartInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "email required"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "email required"})
	}

	h.authService.StartLogin(c.Context(), input)

	return c.JSON(fiber.Map{"ok": true})
}

// Verify exchanges an OTP for a session cookie. All verification failures
// collapse to a generic 401; the cause is logged, never echoed.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	var input dto.VerifyInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "email and code required"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "email and code required"})
	}

	token, err := h.authService.VerifyCode(c.Context(), input)
	if err != nil {
		log.Printf("auth verify failed for %s: %v", input.Email, err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"ok": false, "error": "unauthorized"})
	}

	h.setSessionCookie(c, token)

	return c.JSON(fiber.Map{"ok": true})
}

// Callback consumes a magic-link token and redirects with a session cookie.
func (h *AuthHandler) Callback(c *fiber.Ctx) error {
	token, redirect, err := h.authService.Callback(c.Context(), c.Query("token"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).SendString("Invalid or expired link")
	}

	h.setSessionCookie(c, token)

	return c.Redirect(redirect, fiber.StatusFound)
}

// Logout revokes the presented session and clears the cookie. Always 200.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := c.Cookies(sessionCookieName); token != "" {
		h.authService.Logout(c.Context(), token)
	}

	h.clearSessionCookie(c)

	return c.JSON(fiber.Map{"ok": true})
}

// Authz is the forward-auth endpoint called by the upstream proxy on every
// request: 200 authorized, 401 unauthenticated, 403 unentitled.
func (h *AuthHandler) Authz(c *fiber.Ctx) error {
	host := strings.ToLower(c.Get("X-Forwarded-Host"))
	if host == "" {
		host = strings.ToLower(c.Hostname())
	}

	token := c.Cookies(sessionCookieName)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).SendString("unauthorized")
	}

	if _, err := h.authService.Authz(c.Context(), token, host); err != nil {
		if errors.Is(err, autherror.ErrNotEntitled) {
			return c.Status(fiber.StatusForbidden).SendString("forbidden")
		}
		return c.Status(fiber.StatusUnauthorized).SendString("unauthorized")
	}

	return c.SendString("ok")
}

func (h *AuthHandler) Healthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		MaxAge:   h.cfg.SessionTTLMin * 60,
		Domain:   h.cfg.CookieDomain,
		Secure:   true,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		Domain:   h.cfg.CookieDomain,
		Secure:   true,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
