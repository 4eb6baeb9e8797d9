package seeder_test

import (
	"github.com/heartmarshall/rapidlingo-backend/internal/adapter/postgres/translation"
	"github.com/heartmarshall/rapidlingo-backend/internal/app/seeder"
)

// Compile-time check: *translation.Repo must satisfy TranslationBulkRepo.
var _ seeder.TranslationBulkRepo = (*translation.Repo)(nil)
