package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler, wh *MailgunWebhookHandler, limiter *RateLimiter) {
	app.Post("/api/auth/start", limiter.Limit, h.Start)
	app.Post("/api/auth/verify", h.Verify)
	app.Get("/api/auth/callback", h.Callback)
	app.Post("/api/auth/logout", h.Logout)

	// Forward-auth check, invoked by the upstream proxy once per request.
	app.Get("/api/authz", h.Authz)

	app.Post("/api/email/mailgun/webhook", wh.Handle)
	app.Get("/healthz", h.Healthz)
}
