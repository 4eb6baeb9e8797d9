package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
)

// SeedTranslation inserts one stored translation and returns it.
func SeedTranslation(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, from, to, source, target string, timesCorrect int) domain.TranslationRecord {
	t.Helper()

	rec := domain.TranslationRecord{
		UserID:         userID,
		FromLanguage:   from,
		ToLanguage:     to,
		SourceSentence: source,
		TargetSentence: target,
		TimesCorrect:   timesCorrect,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO translations (user_id, from_language, to_language, from_sentence, to_sentence, number_of_times_correct)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		userID, from, to, source, target, timesCorrect,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTranslation: %v", err)
	}

	return rec
}
