package mailer

import (
	"strings"
	"testing"
)

func TestRenderOwnerNotification_IncludesFields(t *testing.T) {
	html, err := RenderOwnerNotification(NotificationData{
		Name:    "Ann",
		Email:   "ann@example.com",
		Message: "Hello there",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Ann", "mailto:ann@example.com", "Hello there"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected body to contain %q", want)
		}
	}
}

// TestRenderOwnerNotification_NoDoubleEscaping verifies that pre-escaped
// values pass through verbatim; the renderer must not escape a second time.
func TestRenderOwnerNotification_NoDoubleEscaping(t *testing.T) {
	html, err := RenderOwnerNotification(NotificationData{
		Name:    "&lt;b&gt;Ann&lt;/b&gt;",
		Email:   "ann@example.com",
		Message: "a &amp; b",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "&lt;b&gt;Ann&lt;/b&gt;") {
		t.Error("expected the escaped name verbatim")
	}
	if strings.Contains(html, "&amp;lt;") || strings.Contains(html, "&amp;amp;") {
		t.Error("renderer escaped an already-escaped value")
	}
}

func TestRenderAutoReply_WithCTA(t *testing.T) {
	html, err := RenderAutoReply(ReplyData{
		Name:      "Ann",
		OwnerName: "Site Owner",
		CTAURL:    "https://example.com/connect",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "Hi Ann!") {
		t.Error("expected greeting by name")
	}
	if !strings.Contains(html, `href="https://example.com/connect"`) {
		t.Error("expected the call-to-action link")
	}
	if !strings.Contains(html, "Site Owner") {
		t.Error("expected the owner signature")
	}
}

func TestRenderAutoReply_WithoutCTA(t *testing.T) {
	html, err := RenderAutoReply(ReplyData{Name: "Ann", OwnerName: "Site Owner"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "Connect on LinkedIn") {
		t.Error("expected no call-to-action block when CTAURL is empty")
	}
}

func TestMessageSender(t *testing.T) {
	m := Message{FromName: "Portfolio Contact", From: "noreply@example.com"}
	if got := m.Sender(); got != `"Portfolio Contact" <noreply@example.com>` {
		t.Errorf("unexpected sender %q", got)
	}

	plain := Message{From: "noreply@example.com"}
	if got := plain.Sender(); got != "noreply@example.com" {
		t.Errorf("unexpected sender %q", got)
	}
}
