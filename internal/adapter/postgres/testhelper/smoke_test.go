package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)
	ctx := context.Background()

	var applied int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM goose_db_version WHERE version_id > 0`).Scan(&applied); err != nil {
		t.Fatalf("read goose versions: %v", err)
	}
	if applied < 2 {
		t.Fatalf("expected migrations applied, got %d versions", applied)
	}

	rec := SeedTranslation(t, pool, uuid.New(), "en", "es", "Good morning", "Buenos días", 2)

	var target string
	var correct int
	err := pool.QueryRow(ctx,
		`SELECT to_sentence, number_of_times_correct FROM translations WHERE id = $1`,
		rec.ID,
	).Scan(&target, &correct)
	if err != nil {
		t.Fatalf("expected translation in DB, got error: %v", err)
	}
	if target != "Buenos días" || correct != 2 {
		t.Fatalf("got (%q, %d), want (%q, 2)", target, correct, "Buenos días")
	}
}
