package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/savantlab/digital-product-system/config"
	"github.com/savantlab/digital-product-system/db"
	"github.com/savantlab/digital-product-system/internal/auth/handler"
	repo "github.com/savantlab/digital-product-system/internal/auth/repository/postgres"
	"github.com/savantlab/digital-product-system/internal/auth/repository/redisstore"
	"github.com/savantlab/digital-product-system/internal/auth/service"
	"github.com/savantlab/digital-product-system/internal/email"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to connect to PostgreSQL: %v", err)
	}

	rdb, err := redisstore.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to Redis: %v", err)
	}

	store := redisstore.NewStore(rdb)
	licenseRepo := repo.NewLicenseRepository(dbPool)
	suppressions := email.NewRedisSuppressionList(rdb)
	mailer := email.NewMailgunClient(cfg, suppressions)

	otpService := service.NewOTPService(store, cfg.OTPTTLMin, cfg.OTPAttemptMax)
	linkService := service.NewMagicLinkService(store, cfg.MagicLinkTTLMin, cfg.AuthBaseURL)
	sessionService := service.NewSessionService(cfg.JWTSecret, cfg.SessionTTLMin, store)
	entitlementService := service.NewEntitlementService(licenseRepo, cfg)
	authService := service.NewAuthService(licenseRepo, otpService, linkService,
		sessionService, entitlementService, mailer, cfg.OTPTTLMin, cfg.MagicLinkTTLMin)

	authHandler := handler.NewAuthHandler(authService, cfg)
	webhookHandler := handler.NewMailgunWebhookHandler(cfg.MailgunSigningKey, suppressions)
	limiter := handler.NewRateLimiter(cfg.StartRatePerMin, cfg.StartRateBurst)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: cfg.AllowedOrigins != "*",
		AllowHeaders:     "Content-Type, Authorization",
	}))
	handler.RegisterRoutes(app, authHandler, webhookHandler, limiter)

	log.Fatal(app.Listen(":" + cfg.Port))
}
