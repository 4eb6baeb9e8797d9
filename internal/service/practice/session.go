package practice

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
	"github.com/heartmarshall/rapidlingo-backend/internal/game"
	"github.com/heartmarshall/rapidlingo-backend/internal/queue"
)

// session is the per-user practice state. Guarded by Service.mu.
type session struct {
	settings domain.PracticeSettings
	queue    queue.Queue
	game     game.State
	hasGame  bool

	// awaitingSpeech disables gameplay between a correct answer and the end
	// of its playback.
	awaitingSpeech bool

	// tag changes whenever the queue is replaced; async results carrying an
	// older tag are discarded.
	tag uint64
	// applied is the batch the current queue was built from.
	applied *loadResult

	lastSeen time.Time
}

// sessionLocked returns the user's session, creating it with default
// settings. Caller holds s.mu.
func (s *Service) sessionLocked(userID uuid.UUID) *session {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &session{settings: s.cfg.Defaults}
		s.sessions[userID] = sess
		s.metrics.SetActiveSessions(len(s.sessions))
	}
	sess.lastSeen = s.now()
	return sess
}

// resetGameLocked rebuilds the puzzle for the item under the cursor.
func (s *Service) resetGameLocked(sess *session) {
	item, err := sess.queue.Current()
	if err != nil {
		sess.game = game.State{}
		sess.hasGame = false
		return
	}
	sess.game = game.NewState(item.Exercise, s.splitter, s.rng)
	sess.hasGame = true
}

// replaceQueueLocked installs q and invalidates everything tied to the
// previous queue, including a parked speech callback.
func (s *Service) replaceQueueLocked(userID uuid.UUID, sess *session, q queue.Queue) {
	if sess.awaitingSpeech {
		s.speaker.Cancel(speechKey(userID))
	}
	sess.queue = q
	sess.tag++
	sess.applied = nil
	sess.awaitingSpeech = false
	s.resetGameLocked(sess)
}

// ActiveSessions is the number of sessions held in memory.
func (s *Service) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// EvictIdle drops sessions not touched since the idle TTL and returns how
// many were removed.
func (s *Service) EvictIdle() int {
	if s.cfg.SessionIdleTTL <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.cfg.SessionIdleTTL)

	s.mu.Lock()
	evicted := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) && !sess.queue.Loading() {
			if sess.awaitingSpeech {
				s.speaker.Cancel(speechKey(id))
			}
			delete(s.sessions, id)
			evicted++
		}
	}
	active := len(s.sessions)
	s.mu.Unlock()

	s.metrics.SetActiveSessions(active)
	return evicted
}

// RunJanitor evicts idle sessions every interval until ctx is cancelled.
func (s *Service) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.EvictIdle(); n > 0 {
				s.log.Info("evicted idle sessions", slog.Int("count", n))
			}
		}
	}
}
