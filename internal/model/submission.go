package model

import "time"

// Submission represents a message submitted via the portfolio contact form.
// Name, Email and Message hold the sanitised values (trimmed, HTML-escaped,
// length-capped) — never the raw request input.
type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
