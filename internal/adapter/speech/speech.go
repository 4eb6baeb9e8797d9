// Package speech implements the completion-callback speech contract on the
// server side. Synthesis itself happens on the client.
package speech

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Immediate calls onDone at once. Used when speech synthesis is unavailable.
type Immediate struct{}

func (Immediate) Speak(_ context.Context, _, _, _ string, onDone func()) {
	onDone()
}

// Done always reports false: nothing is ever parked.
func (Immediate) Done(string) bool { return false }

func (Immediate) Cancel(string) {}

type pending struct {
	onDone func()
	timer  *time.Timer
}

// Relay parks each onDone per key until the client reports playback end via
// Done. A new Speak for the same key replaces the parked one without firing
// it. If the client never reports, onDone fires after maxWait.
type Relay struct {
	mu      sync.Mutex
	pending map[string]*pending
	maxWait time.Duration
	log     *slog.Logger
}

// NewRelay creates a Relay. maxWait <= 0 disables the timeout.
func NewRelay(maxWait time.Duration, logger *slog.Logger) *Relay {
	return &Relay{
		pending: make(map[string]*pending),
		maxWait: maxWait,
		log:     logger.With("adapter", "speech_relay"),
	}
}

// Speak parks onDone under key. The text itself is played by the client.
func (r *Relay) Speak(_ context.Context, key, _, _ string, onDone func()) {
	p := &pending{onDone: onDone}

	r.mu.Lock()
	if old, ok := r.pending[key]; ok && old.timer != nil {
		old.timer.Stop()
	}
	r.pending[key] = p
	if r.maxWait > 0 {
		p.timer = time.AfterFunc(r.maxWait, func() {
			if r.release(key, p) {
				r.log.Warn("speech done timed out", slog.String("key", key))
			}
		})
	}
	r.mu.Unlock()
}

// Done fires the parked onDone for key. Returns false if nothing was parked.
func (r *Relay) Done(key string) bool {
	r.mu.Lock()
	p, ok := r.pending[key]
	r.mu.Unlock()
	if !ok {
		return false
	}
	return r.release(key, p)
}

// Cancel drops the parked onDone for key without firing it.
func (r *Relay) Cancel(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.pending[key]; ok {
		if p.timer != nil {
			p.timer.Stop()
		}
		delete(r.pending, key)
	}
}

// release removes p if it is still the parked entry for key and fires its
// callback outside the lock. Reports whether it fired.
func (r *Relay) release(key string, p *pending) bool {
	r.mu.Lock()
	if r.pending[key] != p {
		r.mu.Unlock()
		return false
	}
	delete(r.pending, key)
	if p.timer != nil {
		p.timer.Stop()
	}
	r.mu.Unlock()

	p.onDone()
	return true
}
