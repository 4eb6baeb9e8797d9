// Package provider defines the provider-neutral contract of exercise
// sources: request types, prompts, and response parsing shared by the
// HTTP and LLM adapters.
package provider

import (
	"errors"
	"fmt"
	"net/http"
)

// ExerciseRequest asks a source for translation exercises. Languages are
// human-readable names ("Spanish"), not codes.
type ExerciseRequest struct {
	FromLanguage   string
	ToLanguage     string
	SentenceLength int
	Theme          string
	Count          int
	// Avoid lists target sentences the learner has seen recently.
	Avoid []string
}

// ExplainRequest asks for a grammar explanation of a target sentence.
type ExplainRequest struct {
	Sentence     string
	FromLanguage string
	ToLanguage   string
}

// StatusError is an upstream HTTP failure.
type StatusError struct {
	Code int
	Err  error
}

func (e *StatusError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("upstream status %d", e.Code)
	}
	return fmt.Sprintf("upstream status %d: %v", e.Code, e.Err)
}

func (e *StatusError) Unwrap() error { return e.Err }

// Retryable reports whether err is worth retrying: network failures,
// timeouts, malformed responses, 429 and 5xx. Other 4xx statuses are not.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrMalformedResponse) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code == http.StatusTooManyRequests || se.Code >= 500
	}
	return true
}
