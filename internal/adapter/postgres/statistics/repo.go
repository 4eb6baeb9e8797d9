// Package statistics persists per-user practice counters.
package statistics

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/rapidlingo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
)

const table = "user_statistics"

// Repo provides statistics persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new statistics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the user's statistics. A user with no row has zero statistics.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (domain.Statistics, error) {
	return r.get(ctx, userID, "")
}

// GetForUpdate is Get with a row lock, for read-modify-write inside a transaction.
func (r *Repo) GetForUpdate(ctx context.Context, userID uuid.UUID) (domain.Statistics, error) {
	return r.get(ctx, userID, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, userID uuid.UUID, suffix string) (domain.Statistics, error) {
	query := postgres.Builder().
		Select("sentences_completed", "total_attempts", "streak", "best_streak").
		From(table).
		Where(sq.Eq{"user_id": userID})
	if suffix != "" {
		query = query.Suffix(suffix)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("build get statistics: %w", err)
	}

	var s domain.Statistics
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).
		Scan(&s.SentencesCompleted, &s.TotalAttempts, &s.Streak, &s.BestStreak)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Statistics{}, nil
	}
	if err != nil {
		return domain.Statistics{}, postgres.MapError(err, "user_statistics", userID.String())
	}

	return s, nil
}

// Save upserts the user's statistics.
func (r *Repo) Save(ctx context.Context, userID uuid.UUID, s domain.Statistics) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "sentences_completed", "total_attempts", "streak", "best_streak").
		Values(userID, s.SentencesCompleted, s.TotalAttempts, s.Streak, s.BestStreak).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			sentences_completed = EXCLUDED.sentences_completed,
			total_attempts = EXCLUDED.total_attempts,
			streak = EXCLUDED.streak,
			best_streak = EXCLUDED.best_streak,
			updated_at = now()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build save statistics: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "user_statistics", userID.String())
	}
	return nil
}
