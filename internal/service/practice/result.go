package practice

import (
	"slices"

	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
	"github.com/heartmarshall/rapidlingo-backend/internal/game"
)

// Snapshot is a read-only view of a practice session.
type Snapshot struct {
	Settings       domain.PracticeSettings
	QueueState     string
	Position       int
	Total          int
	AwaitingSpeech bool
	Exercise       *ExerciseView
}

// ExerciseView is the puzzle under the cursor. Target is set only once the
// answer has been revealed or the puzzle is solved.
type ExerciseView struct {
	Key            string
	Repetition     int
	Source         string
	Target         string
	Available      []domain.Token
	Construction   []domain.Token
	Status         domain.CompletionStatus
	AnswerRevealed bool
	Completed      bool
}

// ClickResult is the session after a click, plus what the click did.
type ClickResult struct {
	Outcome  string
	Snapshot Snapshot
}

// snapshotLocked builds the view. Caller holds s.mu.
func snapshotLocked(sess *session) Snapshot {
	snap := Snapshot{
		Settings:       sess.settings,
		QueueState:     sess.queue.State().String(),
		Position:       sess.queue.Position(),
		Total:          sess.queue.Len(),
		AwaitingSpeech: sess.awaitingSpeech,
	}

	item, err := sess.queue.Current()
	if err != nil || !sess.hasGame {
		return snap
	}
	snap.Exercise = exerciseView(item.Key, item.Repetition, sess.game)
	return snap
}

func exerciseView(key string, repetition int, st game.State) *ExerciseView {
	v := &ExerciseView{
		Key:            key,
		Repetition:     repetition,
		Source:         st.Exercise.SourceSentence,
		Available:      slices.Clone([]domain.Token(st.Available)),
		Construction:   slices.Clone([]domain.Token(st.Construction)),
		Status:         st.Status(),
		AnswerRevealed: st.AnswerRevealed,
		Completed:      st.Completed,
	}
	if st.AnswerRevealed || st.Completed {
		v.Target = st.Exercise.TargetSentence
	}
	return v
}
