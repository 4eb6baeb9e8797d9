package practice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
	"github.com/heartmarshall/rapidlingo-backend/internal/game"
	"github.com/heartmarshall/rapidlingo-backend/internal/provider"
	"github.com/heartmarshall/rapidlingo-backend/pkg/ctxutil"
)

// Snapshot returns the user's session, creating it on first access.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Snapshot{}, domain.ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotLocked(s.sessionLocked(userID)), nil
}

// Click moves a token between pools. A correct answer disables input,
// records statistics, and plays the sentence; the queue advances when
// playback ends.
func (s *Service) Click(ctx context.Context, input ClickInput) (ClickResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return ClickResult{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return ClickResult{}, err
	}

	s.mu.Lock()
	sess := s.sessionLocked(userID)
	if err := playableLocked(sess); err != nil {
		s.mu.Unlock()
		return ClickResult{}, err
	}

	next, outcome := sess.game.Click(input.OriginalIndex)
	sess.game = next

	var (
		settings = sess.settings
		exercise = next.Exercise
		tag      = sess.tag
		position = sess.queue.Position()
	)
	if outcome == game.OutcomeCorrect {
		sess.awaitingSpeech = true
	}
	s.mu.Unlock()

	switch outcome {
	case game.OutcomeCorrect:
		s.metrics.Completion(outcome.String())
		s.recordCorrect(ctx, userID, settings, exercise)
		s.speaker.Speak(ctx, speechKey(userID), exercise.TargetSentence, settings.ToLanguage, func() {
			s.finishSpeech(userID, tag, position)
		})
	case game.OutcomeIncorrect:
		s.metrics.Completion(outcome.String())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return ClickResult{Outcome: outcome.String(), Snapshot: snapshotLocked(s.sessionLocked(userID))}, nil
}

// ClearConstruction returns every constructed token to the available pool.
func (s *Service) ClearConstruction(ctx context.Context) (Snapshot, error) {
	return s.mutateGame(ctx, func(st game.State) game.State { return st.Clear() })
}

// RevealAnswer shows the reference sentence for the current exercise.
func (s *Service) RevealAnswer(ctx context.Context) (Snapshot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Snapshot{}, domain.ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessionLocked(userID)
	if !sess.hasGame {
		return snapshotLocked(sess), domain.ErrOutOfRange
	}
	sess.game = sess.game.Reveal()
	return snapshotLocked(sess), nil
}

// Replay scrambles the current exercise again from scratch.
func (s *Service) Replay(ctx context.Context) (Snapshot, error) {
	return s.mutateGame(ctx, func(st game.State) game.State {
		return game.NewState(st.Exercise, s.splitter, s.rng)
	})
}

// Next skips to the following exercise.
func (s *Service) Next(ctx context.Context) (Snapshot, error) {
	return s.move(ctx, func(sess *session) error {
		q, err := sess.queue.Advance()
		if err != nil {
			return err
		}
		sess.queue = q
		return nil
	})
}

// Back returns to the previous exercise.
func (s *Service) Back(ctx context.Context) (Snapshot, error) {
	return s.move(ctx, func(sess *session) error {
		sess.queue = sess.queue.Retreat()
		return nil
	})
}

// SpeechDone reports the end of client-side playback. Calling it with
// nothing pending is a no-op.
func (s *Service) SpeechDone(ctx context.Context) (Snapshot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Snapshot{}, domain.ErrUnauthorized
	}

	if !s.speaker.Done(speechKey(userID)) {
		s.log.DebugContext(ctx, "no pending speech", slog.String("user_id", userID.String()))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotLocked(s.sessionLocked(userID)), nil
}

// Explain asks the exercise source to explain the current target sentence.
func (s *Service) Explain(ctx context.Context) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	s.mu.Lock()
	sess := s.sessionLocked(userID)
	if !sess.hasGame {
		s.mu.Unlock()
		return "", domain.ErrOutOfRange
	}
	req := provider.ExplainRequest{
		Sentence:     sess.game.Exercise.TargetSentence,
		FromLanguage: domain.LanguageName(sess.settings.FromLanguage),
		ToLanguage:   domain.LanguageName(sess.settings.ToLanguage),
	}
	s.mu.Unlock()

	text, err := s.source.Explain(ctx, req)
	if err != nil {
		return "", &domain.GenerationError{Attempts: 1, Cause: err}
	}
	return text, nil
}

// Statistics returns the user's persisted counters.
func (s *Service) Statistics(ctx context.Context) (domain.Statistics, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Statistics{}, domain.ErrUnauthorized
	}

	st, err := s.stats.Get(ctx, userID)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("get statistics: %w", err)
	}
	return st, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// playableLocked reports whether the session accepts gameplay input.
func playableLocked(sess *session) error {
	if sess.awaitingSpeech {
		return domain.ErrInputDisabled
	}
	if !sess.hasGame {
		return domain.ErrOutOfRange
	}
	return nil
}

func (s *Service) mutateGame(ctx context.Context, fn func(game.State) game.State) (Snapshot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Snapshot{}, domain.ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessionLocked(userID)
	if err := playableLocked(sess); err != nil {
		return snapshotLocked(sess), err
	}
	sess.game = fn(sess.game)
	return snapshotLocked(sess), nil
}

func (s *Service) move(ctx context.Context, fn func(*session) error) (Snapshot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Snapshot{}, domain.ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessionLocked(userID)
	if sess.awaitingSpeech {
		return snapshotLocked(sess), domain.ErrInputDisabled
	}
	if sess.queue.Loading() {
		return snapshotLocked(sess), domain.ErrConflict
	}
	if err := fn(sess); err != nil {
		return snapshotLocked(sess), err
	}
	s.resetGameLocked(sess)
	return snapshotLocked(sess), nil
}

// recordCorrect persists statistics and the translation's correct count.
// Failures are logged; gameplay continues.
func (s *Service) recordCorrect(ctx context.Context, userID uuid.UUID, settings domain.PracticeSettings, ex domain.Exercise) {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		st, err := s.stats.GetForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("get statistics: %w", err)
		}
		return s.stats.Save(ctx, userID, st.RecordCorrect())
	})
	if err != nil {
		s.log.ErrorContext(ctx, "record statistics", slog.String("error", err.Error()))
	}

	err = s.translations.IncrementCorrect(ctx, domain.TranslationKey{
		UserID:         userID,
		FromLanguage:   settings.FromLanguage,
		ToLanguage:     settings.ToLanguage,
		SourceSentence: ex.SourceSentence,
	})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.log.WarnContext(ctx, "translation not stored, correct count not updated",
			slog.String("source_sentence", ex.SourceSentence))
	case err != nil:
		s.log.ErrorContext(ctx, "increment correct count", slog.String("error", err.Error()))
	}
}

// finishSpeech advances past a solved exercise once its playback ended,
// provided the session has not moved on in the meantime.
func (s *Service) finishSpeech(userID uuid.UUID, tag uint64, position int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok || sess.tag != tag || sess.queue.Position() != position || !sess.awaitingSpeech {
		return
	}
	sess.awaitingSpeech = false
	if q, err := sess.queue.Advance(); err == nil {
		sess.queue = q
	}
	s.resetGameLocked(sess)
}

func speechKey(userID uuid.UUID) string {
	return userID.String()
}
