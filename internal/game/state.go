package game

import (
	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
)

// Splitter splits a sentence into chunks.
type Splitter interface {
	Split(sentence string) []string
}

// Outcome is the effect of a click on the exercise.
type Outcome int

const (
	// OutcomeNone: tokens remain in the available pool.
	OutcomeNone Outcome = iota
	// OutcomeCorrect: all tokens placed and the answer matches.
	OutcomeCorrect
	// OutcomeIncorrect: all tokens placed and the answer does not match.
	OutcomeIncorrect
	// OutcomeIgnored: the click had no effect.
	OutcomeIgnored
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeIgnored:
		return "ignored"
	default:
		return "none"
	}
}

// State is the puzzle state for one exercise. Methods return a new State and
// never modify the receiver's pools.
type State struct {
	Exercise       domain.Exercise
	Available      Pool
	Construction   Pool
	Completed      bool
	AnswerRevealed bool
}

// NewState segments and scrambles the exercise's target sentence.
func NewState(ex domain.Exercise, splitter Splitter, rng Rand) State {
	return State{
		Exercise:     ex,
		Available:    Scramble(splitter.Split(ex.TargetSentence), rng),
		Construction: Pool{},
	}
}

// TokenCount is the number of tokens in the puzzle.
func (s State) TokenCount() int {
	return len(s.Available) + len(s.Construction)
}

// Click toggles the token with the given original index between pools and
// re-runs the completion check. Clicks on a completed puzzle or on an unknown
// token are ignored.
func (s State) Click(originalIndex int) (State, Outcome) {
	if s.Completed {
		return s, OutcomeIgnored
	}

	if i := s.Construction.IndexOf(originalIndex); i >= 0 {
		s.Available, s.Construction = RemoveFromConstruction(s.Construction[i], s.Available, s.Construction)
		return s, OutcomeNone
	}

	i := s.Available.IndexOf(originalIndex)
	if i < 0 {
		return s, OutcomeIgnored
	}
	s.Available, s.Construction = MoveToConstruction(s.Available[i], s.Available, s.Construction)

	if len(s.Available) > 0 {
		return s, OutcomeNone
	}
	if CheckCompletion(s.Construction, s.Exercise.TargetSentence) {
		s.Completed = true
		return s, OutcomeCorrect
	}
	return s, OutcomeIncorrect
}

// Clear returns all constructed tokens to the available pool.
func (s State) Clear() State {
	if s.Completed {
		return s
	}
	s.Available, s.Construction = ClearConstruction(s.Available, s.Construction)
	return s
}

// Reveal marks the reference answer as shown.
func (s State) Reveal() State {
	s.AnswerRevealed = true
	return s
}

// Status derives the completion status shown to the learner.
func (s State) Status() domain.CompletionStatus {
	switch {
	case s.Completed:
		return domain.CompletionCorrect
	case len(s.Available) == 0 && len(s.Construction) > 0:
		return domain.CompletionIncorrect
	default:
		return domain.CompletionNone
	}
}
