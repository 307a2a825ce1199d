package repository

import (
	"context"
	"time"

	"github.com/astrofolio/backend/internal/model"
)

// SubmissionRepository defines the persistence interface for contact
// submissions. It is defined here (in repository) to avoid an import cycle
// with service.
//
// Submissions are insert-only; there is no update or delete path.
type SubmissionRepository interface {
	// Save inserts one submission row.
	Save(ctx context.Context, sub *model.Submission) error

	// CountRecentByEmail returns how many submissions from the given email
	// address (case-insensitive) were created at or after since. It backs
	// the rate-limit gate.
	CountRecentByEmail(ctx context.Context, email string, since time.Time) (int, error)
}
