// Package translation stores exercises a learner has seen, keyed by source
// sentence per user and language pair, with a mastery counter.
package translation

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/rapidlingo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
)

const table = "translations"

var columns = []string{
	"id", "user_id", "from_language", "to_language",
	"from_sentence", "to_sentence", "number_of_times_correct", "created_at",
}

// Repo provides translation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new translation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// InsertBatch stores exercises for the user and language pair. Source
// sentences already stored (or repeated within the batch) are skipped.
func (r *Repo) InsertBatch(ctx context.Context, userID uuid.UUID, from, to string, exercises []domain.Exercise) (domain.BatchInsertResult, error) {
	if len(exercises) == 0 {
		return domain.BatchInsertResult{}, nil
	}

	insert := postgres.Builder().
		Insert(table).
		Columns("user_id", "from_language", "to_language", "from_sentence", "to_sentence")
	for _, ex := range exercises {
		insert = insert.Values(userID, from, to, ex.SourceSentence, ex.TargetSentence)
	}
	insert = insert.Suffix("ON CONFLICT (user_id, from_language, to_language, from_sentence) DO NOTHING RETURNING id")

	sql, args, err := insert.ToSql()
	if err != nil {
		return domain.BatchInsertResult{}, fmt.Errorf("build insert translations: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return domain.BatchInsertResult{}, postgres.MapError(err, "translations", userID.String())
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return domain.BatchInsertResult{}, postgres.MapError(err, "translations", userID.String())
	}

	return domain.BatchInsertResult{
		Inserted: len(ids),
		Skipped:  len(exercises) - len(ids),
	}, nil
}

// IncrementCorrect bumps the mastery counter of the stored translation.
// Returns domain.ErrNotFound if no such translation is stored.
func (r *Repo) IncrementCorrect(ctx context.Context, key domain.TranslationKey) error {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("number_of_times_correct", sq.Expr("number_of_times_correct + 1")).
		Where(sq.Eq{
			"user_id":       key.UserID,
			"from_language": key.FromLanguage,
			"to_language":   key.ToLanguage,
			"from_sentence": key.SourceSentence,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build increment correct: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "translation", key.SourceSentence)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("translation %q: %w", key.SourceSentence, domain.ErrNotFound)
	}

	return nil
}

// ListForPractice returns up to limit random stored translations whose
// mastery counter is below threshold. Each row appears at most once.
func (r *Repo) ListForPractice(ctx context.Context, userID uuid.UUID, from, to string, threshold, limit int) ([]domain.TranslationRecord, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "from_language": from, "to_language": to}).
		Where(sq.Lt{"number_of_times_correct": threshold}).
		OrderBy("random()").
		Limit(uint64(limit))

	return r.list(ctx, query, userID)
}

// ListRecent returns the most recently stored translations, newest first.
func (r *Repo) ListRecent(ctx context.Context, userID uuid.UUID, from, to string, limit int) ([]domain.TranslationRecord, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "from_language": from, "to_language": to}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit))

	return r.list(ctx, query, userID)
}

// RecentTargets returns the target sentences of the most recently stored
// translations, newest first.
func (r *Repo) RecentTargets(ctx context.Context, userID uuid.UUID, from, to string, limit int) ([]string, error) {
	recs, err := r.ListRecent(ctx, userID, from, to, limit)
	if err != nil {
		return nil, err
	}

	targets := make([]string, len(recs))
	for i, rec := range recs {
		targets[i] = rec.TargetSentence
	}
	return targets, nil
}

// Count returns the number of stored translations for the user and pair.
func (r *Repo) Count(ctx context.Context, userID uuid.UUID, from, to string) (int, error) {
	sql, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(sq.Eq{"user_id": userID, "from_language": from, "to_language": to}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count translations: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "translations", userID.String())
	}
	return n, nil
}

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder, userID uuid.UUID) ([]domain.TranslationRecord, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list translations: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "translations", userID.String())
	}

	recs, err := pgx.CollectRows(rows, scanRecord)
	if err != nil {
		return nil, postgres.MapError(err, "translations", userID.String())
	}
	return recs, nil
}

func scanRecord(row pgx.CollectableRow) (domain.TranslationRecord, error) {
	var rec domain.TranslationRecord
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.FromLanguage, &rec.ToLanguage,
		&rec.SourceSentence, &rec.TargetSentence, &rec.TimesCorrect, &rec.CreatedAt,
	)
	return rec, err
}
