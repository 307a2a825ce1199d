package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/astrofolio/backend/internal/config"
	"github.com/astrofolio/backend/internal/handler"
	"github.com/astrofolio/backend/internal/logging"
	"github.com/astrofolio/backend/internal/mailer"
	"github.com/astrofolio/backend/internal/repository"
	"github.com/astrofolio/backend/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	submissionRepo := repository.NewPgSubmissionRepository(pool)
	m := newMailer(cfg)
	contactService := service.NewContactService(submissionRepo, m, service.Options{
		OwnerEmail: cfg.Mail.OwnerEmail,
		OwnerName:  cfg.Mail.OwnerName,
		From:       cfg.Mail.From,
		CTAURL:     cfg.Mail.CTAURL,
	})

	h := handler.New(pool, cfg.AllowedOrigin)
	contactHandler := handler.NewContactHandler(contactService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("/api/contact", contactHandler.Submit)

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      handler.RequestLogger(h.CORS(handler.Recover(handler.SecurityHeaders(mux)))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// newMailer selects the delivery backend from configuration. Missing
// credentials degrade to the Disabled mailer: submissions still persist and
// respond 200, the sends fail and get logged.
func newMailer(cfg *config.Config) mailer.Mailer {
	if !cfg.Mail.Configured() {
		slog.Warn("mail delivery not configured, contact emails will fail soft")
		return mailer.Disabled{}
	}
	switch cfg.Mail.Provider {
	case config.MailProviderResend:
		return mailer.NewResendMailer(cfg.Mail.ResendAPIKey)
	default:
		m, err := mailer.NewSMTPMailer(cfg.Mail.SMTPHost, cfg.Mail.SMTPPort, cfg.Mail.SMTPUser, cfg.Mail.SMTPPassword)
		if err != nil {
			logging.Fatal("smtp mailer init failed", "error", err)
		}
		return m
	}
}
