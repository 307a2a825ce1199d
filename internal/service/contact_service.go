package service

import (
	"context"
	"errors"

	"github.com/astrofolio/backend/internal/model"
)

// Gate errors. These terminate a submission before any side effect and map
// to client-facing 4xx responses in the handler.
var (
	ErrMissingFields = errors.New("all fields are required")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrRateLimited   = errors.New("too many messages")
)

// Stage tags used when logging best-effort failures.
const (
	StageDB     = "db"
	StageNotify = "notify"
	StageReply  = "reply"
)

// StageOutcome records how one best-effort pipeline stage ended.
type StageOutcome struct {
	Stage string
	Err   error
}

// OK reports whether the stage succeeded.
func (o StageOutcome) OK() bool { return o.Err == nil }

// SubmitResult carries the sanitised submission and the outcome of each
// best-effort stage. Any stage may have failed; the submission as a whole
// still counts as accepted.
type SubmitResult struct {
	Submission *model.Submission
	Persist    StageOutcome
	Notify     StageOutcome
	Reply      StageOutcome
}

// Failures returns "stage: error" strings for each failed stage, in
// pipeline order. Empty when everything succeeded.
func (r *SubmitResult) Failures() []string {
	var out []string
	for _, o := range []StageOutcome{r.Persist, r.Notify, r.Reply} {
		if !o.OK() {
			out = append(out, o.Stage+": "+o.Err.Error())
		}
	}
	return out
}

// ContactService runs the contact-form pipeline:
// validate → rate-limit → persist → notify owner → auto-reply.
type ContactService interface {
	// Submit processes one raw submission. A gate failure (missing fields,
	// bad email, rate limit) returns a nil result and one of the sentinel
	// errors above. Once past the gates the returned error is always nil;
	// per-stage failures are reported in the result instead.
	Submit(ctx context.Context, name, email, message string) (*SubmitResult, error)
}
