// Package seeder imports sentence-pair datasets into the translation store.
package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
)

// TranslationBulkRepo defines the batch repository contract consumed by the
// seeder pipeline. Implemented by translation.Repo.
type TranslationBulkRepo interface {
	// InsertBatch skips source sentences the user already has for the pair.
	InsertBatch(ctx context.Context, userID uuid.UUID, from, to string, exercises []domain.Exercise) (domain.BatchInsertResult, error)
}
