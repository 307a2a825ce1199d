package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.AllowedOrigin != "*" {
		t.Errorf("expected wildcard origin, got %q", cfg.AllowedOrigin)
	}
	if cfg.Mail.Provider != MailProviderSMTP {
		t.Errorf("expected smtp default provider, got %q", cfg.Mail.Provider)
	}
}

func TestLoad_RejectsUnknownProvider(t *testing.T) {
	t.Setenv("MAIL_PROVIDER", "carrier-pigeon")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an unknown provider")
	}
}

func TestLoad_SMTPUserFallsBackAsSenderAndOwner(t *testing.T) {
	t.Setenv("SMTP_USER", "me@example.com")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mail.From != "me@example.com" {
		t.Errorf("expected From fallback, got %q", cfg.Mail.From)
	}
	if cfg.Mail.OwnerEmail != "me@example.com" {
		t.Errorf("expected OwnerEmail fallback, got %q", cfg.Mail.OwnerEmail)
	}
}

func TestMailConfigConfigured(t *testing.T) {
	smtp := MailConfig{Provider: MailProviderSMTP, SMTPUser: "u", SMTPPassword: "p", OwnerEmail: "o@e.com"}
	if !smtp.Configured() {
		t.Error("expected smtp config with credentials to be configured")
	}
	smtp.SMTPPassword = ""
	if smtp.Configured() {
		t.Error("expected smtp config without password to be unconfigured")
	}

	rs := MailConfig{Provider: MailProviderResend, ResendAPIKey: "k", From: "f@e.com", OwnerEmail: "o@e.com"}
	if !rs.Configured() {
		t.Error("expected resend config with key to be configured")
	}
	rs.ResendAPIKey = ""
	if rs.Configured() {
		t.Error("expected resend config without key to be unconfigured")
	}
}
