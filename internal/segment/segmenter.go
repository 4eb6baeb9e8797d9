package segment

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"
)

// ErrUnsupported is returned by a Breaker for text it cannot segment.
var ErrUnsupported = errors.New("segment: text not supported by breaker")

// Breaker is a linguistically-aware word breaker for scripts without
// inter-word spacing.
type Breaker interface {
	Break(text string) ([]string, error)
}

// FallbackHook observes every use of the heuristic fallback.
type FallbackHook func(script Script, reason error)

// Segmenter splits sentences into chunks using a per-script strategy.
// It is safe for concurrent use if its Breaker is.
type Segmenter struct {
	breaker    Breaker
	log        *slog.Logger
	onFallback FallbackHook
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithFallbackHook registers a hook called whenever the heuristic fallback is used.
func WithFallbackHook(h FallbackHook) Option {
	return func(s *Segmenter) { s.onFallback = h }
}

// New creates a Segmenter. A nil breaker means every unspaced sentence goes
// through the heuristic fallback.
func New(breaker Breaker, log *slog.Logger, opts ...Option) *Segmenter {
	s := &Segmenter{
		breaker: breaker,
		log:     log.With("component", "segmenter"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type strategy func(s *Segmenter, script Script, sentence string) []string

var strategies = map[Script]strategy{
	ScriptSpaceDelimited: splitWhitespace,
	ScriptArabic:         splitWhitespace,
	ScriptCJK:            splitLinguistic,
	ScriptThai:           splitLinguistic,
}

// Split classifies sentence and returns its chunks in reading order.
// Never fails: degenerate input yields zero or one chunk.
func (s *Segmenter) Split(sentence string) []string {
	script := Classify(sentence)
	return strategies[script](s, script, sentence)
}

func splitWhitespace(_ *Segmenter, _ Script, sentence string) []string {
	return strings.Fields(sentence)
}

func splitLinguistic(s *Segmenter, script Script, sentence string) []string {
	if s.breaker == nil {
		return s.fallback(script, sentence, errors.New("no breaker configured"))
	}

	pieces, err := s.breaker.Break(sentence)
	if err != nil {
		return s.fallback(script, sentence, err)
	}

	chunks := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if p = strings.TrimSpace(p); p != "" {
			chunks = append(chunks, p)
		}
	}

	// Completion rejoins chunks without a separator, so the breaker output
	// must rebuild the sentence exactly.
	if strings.Join(chunks, "") != StripSpace(sentence) {
		return s.fallback(script, sentence, fmt.Errorf("breaker output does not rebuild sentence"))
	}
	return chunks
}

func (s *Segmenter) fallback(script Script, sentence string, reason error) []string {
	s.log.Warn("segmentation fallback",
		slog.String("script", script.String()),
		slog.String("reason", reason.Error()),
	)
	if s.onFallback != nil {
		s.onFallback(script, reason)
	}
	return Heuristic(sentence)
}

// StripSpace removes every whitespace rune from s.
func StripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
