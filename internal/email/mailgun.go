package email

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/savantlab/digital-product-system/config"
)

// MailgunClient sends templated messages through the Mailgun REST API.
type MailgunClient struct {
	httpClient   *http.Client
	apiBase      string
	domain       string
	apiKey       string
	from         string
	suppressions SuppressionList
}

func NewMailgunClient(cfg *config.Config, suppressions SuppressionList) *MailgunClient {
	from := cfg.MailgunFrom
	if from == "" {
		from = fmt.Sprintf("Parallel Critiques <no-reply@%s>", cfg.MailgunDomain)
	}

	return &MailgunClient{
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		apiBase:      "https://api.mailgun.net/v3",
		domain:       cfg.MailgunDomain,
		apiKey:       cfg.MailgunAPIKey,
		from:         from,
		suppressions: suppressions,
	}
}

func (c *MailgunClient) Send(ctx context.Context, template, to string, vars Vars) error {
	if c.domain == "" || c.apiKey == "" {
		return fmt.Errorf("mailgun not configured")
	}

	if c.suppressions != nil {
		suppressed, err := c.suppressions.IsSuppressed(ctx, to)
		if err != nil {
			log.Printf("warn: suppression lookup failed for %s: %v", to, err)
		} else if suppressed {
			log.Printf("skipping %s email to suppressed recipient %s", template, to)
			return nil
		}
	}

	subject, body, err := Render(template, vars)
	if err != nil {
		return err
	}

	form := url.Values{}
	form.Set("from", c.from)
	form.Set("to", to)
	form.Set("subject", subject)
	form.Set("html", body)
	form.Set("o:tag", template)

	endpoint := fmt.Sprintf("%s/%s/messages", c.apiBase, c.domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("api", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mailgun request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mailgun returned status %d", resp.StatusCode)
	}

	return nil
}
