package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Env            string
	Port           string
	DBURL          string
	RedisURL       string
	JWTSecret      string
	AuthBaseURL    string
	CookieDomain   string
	AllowedOrigins string

	SessionTTLMin   int
	MagicLinkTTLMin int
	OTPTTLMin       int
	OTPAttemptMax   int

	StartRatePerMin int
	StartRateBurst  int

	BookDomain string
	LabDomain  string
	AppDomain  string

	EntitlementFailOpen bool
	TierEntitlements    map[string][]string

	MailgunDomain     string
	MailgunAPIKey     string
	MailgunFrom       string
	MailgunSigningKey string
}

func Load() *Config {
	return &Config{
		Env:            getEnv("ENV", "development"),
		Port:           getEnv("PORT", "8001"),
		DBURL:          mustGetEnv("DB_URL"),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),
		JWTSecret:      mustGetEnv("JWT_SECRET"),
		AuthBaseURL:    getEnv("AUTH_BASE_URL", ""),
		CookieDomain:   getEnv("COOKIE_DOMAIN", ""),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),

		SessionTTLMin:   getEnvAsInt("SESSION_TTL_MIN", 4320),
		MagicLinkTTLMin: getEnvAsInt("MAGIC_TTL_MIN", 15),
		OTPTTLMin:       getEnvAsInt("OTP_TTL_MIN", 10),
		OTPAttemptMax:   getEnvAsInt("OTP_ATTEMPT_MAX", 5),

		StartRatePerMin: getEnvAsInt("AUTH_START_RATE_PER_MIN", 10),
		StartRateBurst:  getEnvAsInt("AUTH_START_RATE_BURST", 5),

		BookDomain: strings.ToLower(getEnv("BOOK_DOMAIN", "")),
		LabDomain:  strings.ToLower(getEnv("LAB_DOMAIN", "")),
		AppDomain:  strings.ToLower(getEnv("APP_DOMAIN", "")),

		EntitlementFailOpen: getEnvAsBool("ENTITLEMENT_FAIL_OPEN", true),
		TierEntitlements:    loadTierEntitlements(),

		MailgunDomain:     getEnv("MAILGUN_DOMAIN", ""),
		MailgunAPIKey:     getEnv("MAILGUN_API_KEY", ""),
		MailgunFrom:       getEnv("MAILGUN_FROM", ""),
		MailgunSigningKey: getEnv("MAILGUN_SIGNING_KEY", ""),
	}
}

// loadTierEntitlements returns the tier-to-scope map, with optional
// comma-separated per-tier overrides from the environment.
func loadTierEntitlements() map[string][]string {
	ent := map[string][]string{
		"individual": {"book", "app"},
		"academic":   {"book", "app", "lab"},
		"corporate":  {"book", "app", "lab"},
		"enterprise": {"book", "app", "lab"},
	}

	overrides := map[string]string{
		"individual": "ENTITLEMENTS_INDIVIDUAL",
		"academic":   "ENTITLEMENTS_ACADEMIC",
		"corporate":  "ENTITLEMENTS_CORPORATE",
		"enterprise": "ENTITLEMENTS_ENTERPRISE",
	}

	for tier, envKey := range overrides {
		raw := os.Getenv(envKey)
		if raw == "" {
			continue
		}
		var scopes []string
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				scopes = append(scopes, s)
			}
		}
		if len(scopes) > 0 {
			ent[tier] = scopes
		}
	}

	return ent
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %t", key, defaultVal)
		return defaultVal
	}
	return val
}
