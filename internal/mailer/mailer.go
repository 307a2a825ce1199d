// Package mailer provides the email-delivery capability behind the contact
// pipeline. Two interchangeable backends exist: SMTP (go-mail) and the
// Resend HTTP API. The handler treats delivery as fire-and-forget; errors
// are reported to the caller but never retried here.
package mailer

import (
	"context"
	"errors"
	"fmt"
)

// Message is one outbound email. HTML is the fully rendered body; any
// user-supplied values in it must already be escaped.
type Message struct {
	FromName string
	From     string
	To       string
	Subject  string
	HTML     string
}

// Sender returns the RFC 5322 from value, with the display name when set.
func (m Message) Sender() string {
	if m.FromName == "" {
		return m.From
	}
	return fmt.Sprintf("%q <%s>", m.FromName, m.From)
}

// Mailer sends a single message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// ErrNotConfigured is returned by the Disabled mailer on every send.
var ErrNotConfigured = errors.New("mail delivery not configured")

// Disabled is the Mailer used when delivery credentials are missing. Every
// send fails, which surfaces as a logged stage failure while the contact
// request itself still succeeds.
type Disabled struct{}

func (Disabled) Send(context.Context, Message) error { return ErrNotConfigured }
