package domain

import (
	"fmt"
	"strings"
)

// PracticeSettings is the learner's exercise configuration. Changing any of
// its fields replaces the exercise queue wholesale.
type PracticeSettings struct {
	FromLanguage   string `json:"fromLanguage"`
	ToLanguage     string `json:"toLanguage"`
	Theme          string `json:"theme"`
	SentenceLength int    `json:"sentenceLength"`
	Count          int    `json:"count"`
	Repetitions    int    `json:"repetitions"`
}

// GenerationKey identifies a replenishment request: concurrent requests with
// the same key are coalesced.
func (s PracticeSettings) GenerationKey() string {
	return fmt.Sprintf("%s|%s|%d|%s",
		s.FromLanguage, s.ToLanguage, s.SentenceLength, strings.ToLower(strings.TrimSpace(s.Theme)))
}

// CompletionStatus is the transient signal shown after the last token is placed.
type CompletionStatus string

const (
	CompletionNone      CompletionStatus = ""
	CompletionCorrect   CompletionStatus = "correct"
	CompletionIncorrect CompletionStatus = "incorrect"
)
