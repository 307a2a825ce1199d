package repository

import (
	"context"
	"time"

	"github.com/astrofolio/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgSubmissionRepository is the PostgreSQL implementation of SubmissionRepository.
type PgSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubmissionRepository creates a PgSubmissionRepository backed by the given pool.
func NewPgSubmissionRepository(pool *pgxpool.Pool) *PgSubmissionRepository {
	return &PgSubmissionRepository{pool: pool}
}

// Ensure PgSubmissionRepository implements SubmissionRepository at compile time.
var _ SubmissionRepository = (*PgSubmissionRepository)(nil)

// Save inserts a new messages row. ID and CreatedAt are assigned by the
// caller before the insert.
func (r *PgSubmissionRepository) Save(ctx context.Context, sub *model.Submission) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO messages (id, name, email, message, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		sub.ID, sub.Name, sub.Email, sub.Message, sub.CreatedAt,
	)
	return err
}

// CountRecentByEmail counts submissions from the given address created at or
// after since. Addresses are stored lower-cased, but the comparison folds
// case anyway so the count cannot be dodged by varying capitalisation.
func (r *PgSubmissionRepository) CountRecentByEmail(ctx context.Context, email string, since time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM messages
		 WHERE lower(email) = lower($1) AND created_at >= $2`,
		email, since,
	).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}
