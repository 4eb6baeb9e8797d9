package domain

import (
	"time"

	"github.com/google/uuid"
)

// TranslationKey identifies a stored translation: one source sentence per
// user and language pair.
type TranslationKey struct {
	UserID         uuid.UUID
	FromLanguage   string
	ToLanguage     string
	SourceSentence string
}

// TranslationRecord is a persisted exercise with its mastery counter.
type TranslationRecord struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	FromLanguage   string
	ToLanguage     string
	SourceSentence string
	TargetSentence string
	TimesCorrect   int
	CreatedAt      time.Time
}

// Exercise converts the record into a playable exercise.
func (r TranslationRecord) Exercise() Exercise {
	return Exercise{
		ID:             r.ID,
		SourceSentence: r.SourceSentence,
		TargetSentence: CollapseSpace(r.TargetSentence),
	}
}

// BatchInsertResult summarizes a batch insert that skips already stored
// source sentences.
type BatchInsertResult struct {
	Inserted int
	Skipped  int
}
