package postgres

import (
	"context"
	"database/sql"

	"github.com/coursebill/coursebill/internal/domain/sequence"
	ierr "github.com/coursebill/coursebill/internal/errors"
	"github.com/coursebill/coursebill/internal/logger"
	"github.com/coursebill/coursebill/internal/postgres"
	"github.com/cockroachdb/errors"
	"github.com/lib/pq"
)

type sequenceRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewSequenceRepository(db postgres.IClient, logger *logger.Logger) sequence.Repository {
	return &sequenceRepository{db: db, logger: logger}
}

// Increment performs the atomic increment-and-fetch in a single statement.
// The upsert creates the row at 1 on first use; concurrent callers serialize
// on the row lock, so returned values are contiguous and never duplicated.
func (r *sequenceRepository) Increment(ctx context.Context, key string) (int64, error) {
	query := `
	INSERT INTO counters (key, seq, created_at, updated_at)
	VALUES ($1, 1, now(), now())
	ON CONFLICT (key) DO UPDATE
	SET seq = counters.seq + 1, updated_at = now()
	RETURNING seq`

	var seq int64
	err := r.db.GetQuerier(ctx).QueryRowContext(ctx, query, key).Scan(&seq)
	if err != nil {
		if isTransientConflict(err) {
			return 0, ierr.WithError(err).
				WithHintf("counter %s hit a transient conflict", key).
				Mark(ierr.ErrSequenceConflict)
		}
		return 0, ierr.WithError(err).
			WithHint("failed to increment counter").
			Mark(ierr.ErrDatabase)
	}
	return seq, nil
}

func (r *sequenceRepository) Get(ctx context.Context, key string) (*sequence.Counter, error) {
	query := `SELECT * FROM counters WHERE key = $1`

	var c sequence.Counter
	err := r.db.GetQuerier(ctx).GetContext(ctx, &c, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewError("counter not found").
				WithHintf("counter %s does not exist", key).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to get counter").
			Mark(ierr.ErrDatabase)
	}
	return &c, nil
}

// isTransientConflict matches the postgres error classes a retry can cure:
// serialization failures, deadlocks, and the unique-violation race two
// first-use upserts of the same key can produce.
func isTransientConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code {
	case "40001", "40P01", "23505":
		return true
	}
	return false
}
