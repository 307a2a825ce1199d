package mailer

import (
	"bytes"
	"text/template"
)

// The bodies are rendered with text/template on purpose: the pipeline
// escapes user-supplied values exactly once before they reach this package,
// and html/template would escape them a second time.

// NotificationData fills the owner-notification body. All fields must be
// pre-escaped.
type NotificationData struct {
	Name    string
	Email   string
	Message string
}

// ReplyData fills the auto-reply body. Name must be pre-escaped; OwnerName
// and CTAURL come from configuration.
type ReplyData struct {
	Name      string
	OwnerName string
	CTAURL    string
}

var notificationTmpl = template.Must(template.New("notification").Parse(`<div style="font-family: 'Segoe UI', Arial, sans-serif; max-width: 560px; margin: 0 auto; padding: 32px; background: #0f172a; color: #e2e8f0; border-radius: 16px;">
  <h2 style="color: #60a5fa; margin-bottom: 24px;">New Portfolio Message</h2>
  <div style="background: #1e293b; padding: 20px; border-radius: 12px; margin-bottom: 16px;">
    <p style="margin: 0 0 8px;"><strong style="color: #94a3b8;">From:</strong> {{.Name}}</p>
    <p style="margin: 0 0 8px;"><strong style="color: #94a3b8;">Email:</strong> <a href="mailto:{{.Email}}" style="color: #60a5fa;">{{.Email}}</a></p>
  </div>
  <div style="background: #1e293b; padding: 20px; border-radius: 12px;">
    <p style="margin: 0 0 8px;"><strong style="color: #94a3b8;">Message:</strong></p>
    <p style="margin: 0; white-space: pre-wrap; line-height: 1.6;">{{.Message}}</p>
  </div>
  <p style="color: #64748b; font-size: 0.8rem; margin-top: 20px; text-align: center;">Sent from your portfolio website</p>
</div>`))

var replyTmpl = template.Must(template.New("reply").Parse(`<div style="font-family: 'Segoe UI', Arial, sans-serif; max-width: 560px; margin: 0 auto; padding: 32px; background: #0f172a; color: #e2e8f0; border-radius: 16px;">
  <h2 style="color: #60a5fa; margin-bottom: 16px;">Hi {{.Name}}!</h2>
  <p style="line-height: 1.7; margin-bottom: 16px;">Thank you so much for reaching out through my portfolio. I've received your message and will get back to you <strong>within 24 hours</strong>.</p>
{{- if .CTAURL}}
  <p style="line-height: 1.7; margin-bottom: 16px;">In the meantime, feel free to connect with me:</p>
  <div style="text-align: center; margin: 24px 0;">
    <a href="{{.CTAURL}}" style="display: inline-block; padding: 12px 28px; background: linear-gradient(135deg, #3b82f6, #8b5cf6); color: white; text-decoration: none; border-radius: 8px; font-weight: 600;">Connect on LinkedIn</a>
  </div>
{{- end}}
  <p style="line-height: 1.7;">Looking forward to our conversation!</p>
  <p style="line-height: 1.7; margin-top: 24px;">Best regards,<br><strong>{{.OwnerName}}</strong></p>
</div>`))

// RenderOwnerNotification renders the HTML body of the message sent to the
// site owner.
func RenderOwnerNotification(d NotificationData) (string, error) {
	var buf bytes.Buffer
	if err := notificationTmpl.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderAutoReply renders the HTML body of the thank-you message sent back
// to the submitter.
func RenderAutoReply(d ReplyData) (string, error) {
	var buf bytes.Buffer
	if err := replyTmpl.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}
