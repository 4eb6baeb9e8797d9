package practice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
	"github.com/heartmarshall/rapidlingo-backend/internal/metrics"
	"github.com/heartmarshall/rapidlingo-backend/internal/provider"
	"github.com/heartmarshall/rapidlingo-backend/internal/queue"
	"github.com/heartmarshall/rapidlingo-backend/pkg/ctxutil"
)

type loadResult struct {
	exercises []domain.Exercise
	source    string
}

// Configure replaces the session settings and drops the current queue.
func (s *Service) Configure(ctx context.Context, input SettingsInput) (Snapshot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Snapshot{}, domain.ErrUnauthorized
	}

	input = input.withDefaults(s.cfg.Defaults)
	if err := input.Validate(s.cfg.MaxCount); err != nil {
		return Snapshot{}, err
	}
	settings := input.settings()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessionLocked(userID)
	sess.settings = settings
	s.replaceQueueLocked(userID, sess, queue.Queue{})

	s.log.DebugContext(ctx, "practice configured",
		slog.String("user_id", userID.String()),
		slog.String("generation_key", settings.GenerationKey()),
	)
	return snapshotLocked(sess), nil
}

// Replenish fetches a fresh batch of exercises for the current settings and
// replaces the queue with them. On failure the existing queue is kept.
func (s *Service) Replenish(ctx context.Context, input ReplenishInput) (Snapshot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Snapshot{}, domain.ErrUnauthorized
	}
	if err := input.Validate(s.cfg.MaxCount); err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	sess := s.sessionLocked(userID)
	settings := sess.settings
	tag := sess.tag
	sess.queue = sess.queue.BeginLoading()
	s.mu.Unlock()

	count := settings.Count
	if input.Count > 0 {
		count = input.Count
	}

	key := fmt.Sprintf("%s|%s|%d", userID, settings.GenerationKey(), count)
	ch := s.inflight.DoChan(key, func() (any, error) {
		return s.load(context.WithoutCancel(ctx), userID, settings, count)
	})

	var (
		res     *loadResult
		loadErr error
	)
	select {
	case <-ctx.Done():
		loadErr = ctx.Err()
	case r := <-ch:
		loadErr = r.Err
		if loadErr == nil {
			res = r.Val.(*loadResult)
		}
		if r.Shared {
			s.log.DebugContext(ctx, "replenish coalesced", slog.String("key", key))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess = s.sessionLocked(userID)
	if sess.tag != tag {
		if res != nil && sess.applied == res {
			// A coalesced caller already installed this batch.
			return snapshotLocked(sess), nil
		}
		return snapshotLocked(sess), domain.ErrStaleResult
	}
	if loadErr != nil {
		sess.queue = sess.queue.EndLoading()
		return snapshotLocked(sess), loadErr
	}

	q, err := queue.Populate(res.exercises, settings.Repetitions, s.rng)
	if err != nil {
		sess.queue = sess.queue.EndLoading()
		return snapshotLocked(sess), fmt.Errorf("populate queue: %w", err)
	}
	s.replaceQueueLocked(userID, sess, q)
	sess.applied = res

	s.log.InfoContext(ctx, "queue replenished",
		slog.String("user_id", userID.String()),
		slog.String("source", res.source),
		slog.Int("exercises", len(res.exercises)),
		slog.Int("items", q.Len()),
	)
	return snapshotLocked(sess), nil
}

// load generates exercises, stores them, and falls back to stored
// translations when generation fails.
func (s *Service) load(ctx context.Context, userID uuid.UUID, settings domain.PracticeSettings, count int) (*loadResult, error) {
	from, to := settings.FromLanguage, settings.ToLanguage

	avoid, err := s.translations.RecentTargets(ctx, userID, from, to, s.cfg.AvoidListSize)
	if err != nil {
		s.log.WarnContext(ctx, "load avoid list", slog.String("error", err.Error()))
		avoid = nil
	}

	req := provider.ExerciseRequest{
		FromLanguage:   domain.LanguageName(from),
		ToLanguage:     domain.LanguageName(to),
		SentenceLength: settings.SentenceLength,
		Theme:          settings.Theme,
		Count:          count,
		Avoid:          avoid,
	}

	exercises, attempts, genErr := s.generate(ctx, req)
	if genErr == nil {
		s.store(ctx, userID, from, to, exercises)
		s.metrics.Replenished(metrics.SourceGenerated)
		return &loadResult{exercises: exercises, source: metrics.SourceGenerated}, nil
	}
	s.log.WarnContext(ctx, "exercise generation failed",
		slog.String("provider", s.source.Name()),
		slog.Int("attempts", attempts),
		slog.String("error", genErr.Error()),
	)

	if s.cfg.FallbackToStored {
		records, err := s.translations.ListForPractice(ctx, userID, from, to, s.cfg.MasteryThreshold, count)
		if err != nil {
			s.log.ErrorContext(ctx, "load stored translations", slog.String("error", err.Error()))
		}
		if len(records) > 0 {
			exercises = make([]domain.Exercise, 0, len(records))
			for _, r := range records {
				exercises = append(exercises, r.Exercise())
			}
			s.metrics.Replenished(metrics.SourceStored)
			return &loadResult{exercises: exercises, source: metrics.SourceStored}, nil
		}
	}

	s.metrics.Replenished(metrics.SourceFailed)
	return nil, &domain.GenerationError{Attempts: attempts, Cause: genErr}
}

// generate calls the exercise source with exponential backoff. An empty
// batch counts as a failed attempt.
func (s *Service) generate(ctx context.Context, req provider.ExerciseRequest) ([]domain.Exercise, int, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.cfg.InitialBackoff
	b.MaxInterval = s.cfg.MaxBackoff
	b.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(s.cfg.MaxAttempts-1)), ctx)

	var (
		out      []domain.Exercise
		attempts int
	)
	op := func() error {
		attempts++
		start := time.Now()
		exercises, err := s.source.Generate(ctx, req)
		if err == nil && len(exercises) == 0 {
			err = domain.ErrEmptyResult
		}
		s.metrics.GenerationAttempt(s.source.Name(), err, time.Since(start))
		if err != nil {
			if !provider.Retryable(err) {
				return backoff.Permanent(err)
			}
			s.log.DebugContext(ctx, "generation attempt failed",
				slog.Int("attempt", attempts),
				slog.String("error", err.Error()),
			)
			return err
		}
		out = exercises
		return nil
	}

	if err := backoff.Retry(op, policy); err != nil {
		return nil, attempts, err
	}
	return out, attempts, nil
}

// store persists generated exercises. Failures are logged only.
func (s *Service) store(ctx context.Context, userID uuid.UUID, from, to string, exercises []domain.Exercise) {
	res, err := s.translations.InsertBatch(ctx, userID, from, to, exercises)
	if err != nil {
		s.log.ErrorContext(ctx, "store generated exercises", slog.String("error", err.Error()))
		return
	}
	s.log.DebugContext(ctx, "stored generated exercises",
		slog.Int("inserted", res.Inserted),
		slog.Int("skipped", res.Skipped),
	)
}
