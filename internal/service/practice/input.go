package practice

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
)

const (
	maxSentenceLength = 30
	maxRepetitions    = 10
	maxThemeLength    = 100
)

// SettingsInput holds a new practice configuration. Zero values fall back to
// the configured defaults.
type SettingsInput struct {
	FromLanguage   string
	ToLanguage     string
	Theme          string
	SentenceLength int
	Count          int
	Repetitions    int
}

// withDefaults fills unset fields from d.
func (i SettingsInput) withDefaults(d domain.PracticeSettings) SettingsInput {
	if i.FromLanguage == "" {
		i.FromLanguage = d.FromLanguage
	}
	if i.ToLanguage == "" {
		i.ToLanguage = d.ToLanguage
	}
	if i.SentenceLength == 0 {
		i.SentenceLength = d.SentenceLength
	}
	if i.Count == 0 {
		i.Count = d.Count
	}
	if i.Repetitions == 0 {
		i.Repetitions = d.Repetitions
	}
	return i
}

// Validate checks all fields and collects all errors.
func (i *SettingsInput) Validate(maxCount int) error {
	var errs []domain.FieldError

	from, fromOK := domain.LookupLanguage(i.FromLanguage)
	if !fromOK {
		errs = append(errs, domain.FieldError{Field: "from_language", Message: "unsupported language"})
	}
	to, toOK := domain.LookupLanguage(i.ToLanguage)
	if !toOK {
		errs = append(errs, domain.FieldError{Field: "to_language", Message: "unsupported language"})
	}
	if fromOK && toOK && from.Code == to.Code {
		errs = append(errs, domain.FieldError{Field: "to_language", Message: "must differ from from_language"})
	}
	if utf8.RuneCountInString(i.Theme) > maxThemeLength {
		errs = append(errs, domain.FieldError{Field: "theme", Message: "max 100 characters"})
	}
	if i.SentenceLength < 1 || i.SentenceLength > maxSentenceLength {
		errs = append(errs, domain.FieldError{Field: "sentence_length", Message: "must be between 1 and 30"})
	}
	if i.Count < 1 || (maxCount > 0 && i.Count > maxCount) {
		errs = append(errs, domain.FieldError{Field: "count", Message: "out of allowed range"})
	}
	if i.Repetitions < 1 || i.Repetitions > maxRepetitions {
		errs = append(errs, domain.FieldError{Field: "repetitions", Message: "must be between 1 and 10"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// settings normalizes a validated input.
func (i SettingsInput) settings() domain.PracticeSettings {
	from, _ := domain.LookupLanguage(i.FromLanguage)
	to, _ := domain.LookupLanguage(i.ToLanguage)
	return domain.PracticeSettings{
		FromLanguage:   from.Code,
		ToLanguage:     to.Code,
		Theme:          strings.Join(strings.Fields(i.Theme), " "),
		SentenceLength: i.SentenceLength,
		Count:          i.Count,
		Repetitions:    i.Repetitions,
	}
}

// ReplenishInput holds an optional override of how many exercises to fetch.
type ReplenishInput struct {
	Count int
}

// Validate checks all fields and collects all errors.
func (i *ReplenishInput) Validate(maxCount int) error {
	var errs []domain.FieldError

	if i.Count < 0 || (maxCount > 0 && i.Count > maxCount) {
		errs = append(errs, domain.FieldError{Field: "count", Message: "out of allowed range"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ClickInput identifies the clicked token by its position in the sentence.
type ClickInput struct {
	OriginalIndex int
}

// Validate checks all fields and collects all errors.
func (i *ClickInput) Validate() error {
	if i.OriginalIndex < 0 {
		return domain.NewValidationError("original_index", "must be non-negative")
	}
	return nil
}
