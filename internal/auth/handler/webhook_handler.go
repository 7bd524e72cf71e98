package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/savantlab/digital-product-system/internal/email"
)

// MailgunWebhookHandler receives delivery events from Mailgun and feeds
// bounce/complaint recipients into the suppression list.
type MailgunWebhookHandler struct {
	signingKey   string
	suppressions email.SuppressionList
}

func NewMailgunWebhookHandler(signingKey string, suppressions email.SuppressionList) *MailgunWebhookHandler {
	return &MailgunWebhookHandler{signingKey: signingKey, suppressions: suppressions}
}

func (h *MailgunWebhookHandler) Handle(c *fiber.Ctx) error {
	if h.signingKey == "" {
		return c.Status(fiber.StatusBadRequest).SendString("signing key missing")
	}

	token := c.FormValue("token")
	timestamp := c.FormValue("timestamp")
	signature := c.FormValue("signature")

	mac := hmac.New(sha256.New, []byte(h.signingKey))
	mac.Write([]byte(timestamp + token))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return c.Status(fiber.StatusForbidden).SendString("invalid signature")
	}

	var event struct {
		Event     string `json:"event"`
		Recipient string `json:"recipient"`
	}
	if raw := c.FormValue("event-data"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &event); err != nil {
			log.Printf("warn: undecodable mailgun event: %v", err)
			return c.SendString("ok")
		}
	} else {
		event.Event = c.FormValue("event")
		event.Recipient = c.FormValue("recipient")
	}

	if (event.Event == "complained" || event.Event == "bounced") && event.Recipient != "" {
		if err := h.suppressions.Add(c.Context(), event.Recipient); err != nil {
			log.Printf("warn: failed to suppress %s: %v", event.Recipient, err)
		}
	}

	return c.SendString("ok")
}
