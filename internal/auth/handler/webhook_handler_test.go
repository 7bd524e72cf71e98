package handler_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savantlab/digital-product-system/internal/auth/handler"
	"github.com/savantlab/digital-product-system/internal/mocks"
)

func mailgunSignature(key, timestamp, token string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(timestamp + token))
	return hex.EncodeToString(mac.Sum(nil))
}

func postWebhook(t *testing.T, app *fiber.App, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/email/mailgun/webhook", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestMailgunWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	suppressions := mocks.NewMockSuppressionList(ctrl)
	wh := handler.NewMailgunWebhookHandler("test-signing-key", suppressions)

	app := fiber.New()
	app.Post("/api/email/mailgun/webhook", wh.Handle)

	signedForm := func(extra url.Values) url.Values {
		form := url.Values{}
		form.Set("timestamp", "1700000000")
		form.Set("token", "webhook-token")
		form.Set("signature", mailgunSignature("test-signing-key", "1700000000", "webhook-token"))
		for k, vs := range extra {
			for _, v := range vs {
				form.Add(k, v)
			}
		}
		return form
	}

	t.Run("bounce suppresses the recipient", func(t *testing.T) {
		suppressions.EXPECT().Add(gomock.Any(), "bounced@x.com").Return(nil)

		form := signedForm(url.Values{
			"event-data": {`{"event":"bounced","recipient":"bounced@x.com"}`},
		})
		resp := postWebhook(t, app, form)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("complaint via flat form fields", func(t *testing.T) {
		suppressions.EXPECT().Add(gomock.Any(), "angry@x.com").Return(nil)

		form := signedForm(url.Values{
			"event":     {"complained"},
			"recipient": {"angry@x.com"},
		})
		resp := postWebhook(t, app, form)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("delivered events are ignored", func(t *testing.T) {
		form := signedForm(url.Values{
			"event-data": {`{"event":"delivered","recipient":"fine@x.com"}`},
		})
		resp := postWebhook(t, app, form)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("invalid signature", func(t *testing.T) {
		form := signedForm(nil)
		form.Set("signature", "deadbeef")

		resp := postWebhook(t, app, form)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("missing signing key", func(t *testing.T) {
		unconfigured := handler.NewMailgunWebhookHandler("", suppressions)
		app2 := fiber.New()
		app2.Post("/api/email/mailgun/webhook", unconfigured.Handle)

		resp := postWebhook(t, app2, signedForm(nil))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
