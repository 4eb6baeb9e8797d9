package provider

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
)

// ErrMalformedResponse is returned when a source's response cannot be decoded.
var ErrMalformedResponse = errors.New("malformed response")

// ExercisePayload is the wire shape of one generated exercise.
type ExercisePayload struct {
	ID    string   `json:"id,omitempty"`
	From  string   `json:"from"`
	To    string   `json:"to"`
	Words []string `json:"words,omitempty"`
}

// ExercisesPayload is the wire shape of a generated batch.
type ExercisesPayload struct {
	Exercises []ExercisePayload `json:"exercises"`
}

// ExtractJSON returns the outermost JSON object in s, dropping any prose or
// code fences around it.
func ExtractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found: %w", ErrMalformedResponse)
	}
	return s[start : end+1], nil
}

// ParseExercises decodes an LLM completion into exercises.
func ParseExercises(text string) ([]domain.Exercise, error) {
	raw, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}

	var payload ExercisesPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("decode exercises: %w: %v", ErrMalformedResponse, err)
	}
	return payload.ToExercises(), nil
}

// ToExercises converts the payload, dropping entries with an empty side.
// Whitespace runs in the target are collapsed.
// Entries with a UUID id keep it; the rest get a fresh one.
func (p ExercisesPayload) ToExercises() []domain.Exercise {
	out := make([]domain.Exercise, 0, len(p.Exercises))
	for _, e := range p.Exercises {
		from := strings.TrimSpace(e.From)
		to := domain.CollapseSpace(e.To)
		if from == "" || to == "" {
			continue
		}

		id, err := uuid.Parse(e.ID)
		if err != nil {
			id = uuid.New()
		}
		out = append(out, domain.Exercise{ID: id, SourceSentence: from, TargetSentence: to})
	}
	return out
}
