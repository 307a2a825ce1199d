package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/astrofolio/backend/internal/mailer"
	"github.com/astrofolio/backend/internal/model"
	"github.com/astrofolio/backend/internal/repository"
	"github.com/google/uuid"
)

// Rate-limit policy: at most rateLimitMax submissions per address within a
// trailing rateLimitWindow, counted from persisted rows.
const (
	rateLimitWindow = 5 * time.Minute
	rateLimitMax    = 3
)

// Options carries the fixed identities used in outbound email.
type Options struct {
	// OwnerEmail receives the notification for every submission.
	OwnerEmail string
	// OwnerName signs the auto-reply.
	OwnerName string
	// From is the envelope sender for both messages.
	From string
	// CTAURL, when set, becomes the call-to-action link in the auto-reply.
	CTAURL string
}

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo   repository.SubmissionRepository
	mailer mailer.Mailer
	opts   Options
	now    func() time.Time
}

// NewContactService creates a ContactService backed by the given repository
// and mailer.
func NewContactService(repo repository.SubmissionRepository, m mailer.Mailer, opts Options) ContactService {
	return &contactServiceImpl{repo: repo, mailer: m, opts: opts, now: time.Now}
}

// Submit runs the pipeline. Validation and the rate gate are hard stops;
// persistence and the two sends are best-effort and always all attempted.
func (s *contactServiceImpl) Submit(ctx context.Context, name, email, message string) (*SubmitResult, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	if name == "" || email == "" || message == "" {
		return nil, ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	sub := &model.Submission{
		ID:        uuid.NewString(),
		Name:      sanitizeText(name),
		Email:     sanitizeEmail(email),
		Message:   sanitizeText(message),
		CreatedAt: s.now().UTC(),
	}

	if err := s.checkRateLimit(ctx, sub.Email); err != nil {
		return nil, err
	}

	res := &SubmitResult{
		Submission: sub,
		Persist:    StageOutcome{Stage: StageDB},
		Notify:     StageOutcome{Stage: StageNotify},
		Reply:      StageOutcome{Stage: StageReply},
	}
	res.Persist.Err = s.repo.Save(ctx, sub)
	res.Notify.Err = s.notifyOwner(ctx, sub)
	res.Reply.Err = s.sendAutoReply(ctx, sub)
	return res, nil
}

// checkRateLimit allows at most rateLimitMax submissions per address within
// the trailing window. Fail-open: when the count query itself errors the
// submission is allowed — a store outage must not block the contact path.
func (s *contactServiceImpl) checkRateLimit(ctx context.Context, email string) error {
	since := s.now().UTC().Add(-rateLimitWindow)
	n, err := s.repo.CountRecentByEmail(ctx, email, since)
	if err != nil {
		slog.Warn("rate limit check failed, allowing submission", "email", email, "error", err)
		return nil
	}
	if n >= rateLimitMax {
		return ErrRateLimited
	}
	return nil
}

func (s *contactServiceImpl) notifyOwner(ctx context.Context, sub *model.Submission) error {
	html, err := mailer.RenderOwnerNotification(mailer.NotificationData{
		Name:    sub.Name,
		Email:   sub.Email,
		Message: sub.Message,
	})
	if err != nil {
		return err
	}
	return s.mailer.Send(ctx, mailer.Message{
		FromName: "Portfolio Contact",
		From:     s.opts.From,
		To:       s.opts.OwnerEmail,
		Subject:  "New message from " + sub.Name,
		HTML:     html,
	})
}

func (s *contactServiceImpl) sendAutoReply(ctx context.Context, sub *model.Submission) error {
	html, err := mailer.RenderAutoReply(mailer.ReplyData{
		Name:      sub.Name,
		OwnerName: s.opts.OwnerName,
		CTAURL:    s.opts.CTAURL,
	})
	if err != nil {
		return err
	}
	return s.mailer.Send(ctx, mailer.Message{
		FromName: s.opts.OwnerName,
		From:     s.opts.From,
		To:       sub.Email,
		Subject:  "Thanks for reaching out!",
		HTML:     html,
	})
}
