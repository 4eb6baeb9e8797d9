// Package tatoeba parses Tatoeba sentence-pair TSV exports.
// Pure function: reader in, domain structs out. No database dependencies.
package tatoeba

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
)

// DefaultMaxSentenceLen is the rune limit applied when none is given.
const DefaultMaxSentenceLen = 200

// SentencePair is one source sentence with its translation.
type SentencePair struct {
	Source string
	Target string
}

// ParseResult holds the accepted pairs in file order.
type ParseResult struct {
	Pairs []SentencePair
	Stats Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines       int
	SkippedMalformed int
	SkippedLong      int
	SkippedDuplicate int
	TotalPairs       int
}

// Options controls which pairs are kept.
type Options struct {
	// MaxSentenceLen is the rune limit for either side; <= 0 means DefaultMaxSentenceLen.
	MaxSentenceLen int
	// Limit stops parsing after this many pairs; <= 0 means no limit.
	Limit int
}

// ParseFile opens path and parses it.
func ParseFile(path string, opts Options) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return Parse(f, opts)
}

// Parse reads lines of the form "id\tsource\tid\ttarget". A source sentence
// is kept once; later translations of it are counted as duplicates.
func Parse(r io.Reader, opts Options) (ParseResult, error) {
	maxLen := opts.MaxSentenceLen
	if maxLen <= 0 {
		maxLen = DefaultMaxSentenceLen
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		result ParseResult
		seen   = make(map[string]bool)
	)

	for scanner.Scan() {
		if opts.Limit > 0 && len(result.Pairs) >= opts.Limit {
			break
		}
		result.Stats.TotalLines++

		fields := strings.SplitN(scanner.Text(), "\t", 4)
		if len(fields) < 4 {
			result.Stats.SkippedMalformed++
			continue
		}

		source := strings.TrimSpace(fields[1])
		target := domain.CollapseSpace(fields[3])
		if source == "" || target == "" {
			result.Stats.SkippedMalformed++
			continue
		}

		if utf8.RuneCountInString(source) > maxLen || utf8.RuneCountInString(target) > maxLen {
			result.Stats.SkippedLong++
			continue
		}

		key := domain.NormalizeText(source)
		if seen[key] {
			result.Stats.SkippedDuplicate++
			continue
		}
		seen[key] = true

		result.Pairs = append(result.Pairs, SentencePair{Source: source, Target: target})
	}

	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("scanner error: %w", err)
	}

	result.Stats.TotalPairs = len(result.Pairs)
	return result, nil
}

// ToExercises converts the parsed pairs into exercises ready for storage.
func (r ParseResult) ToExercises() []domain.Exercise {
	out := make([]domain.Exercise, 0, len(r.Pairs))
	for _, p := range r.Pairs {
		out = append(out, domain.Exercise{SourceSentence: p.Source, TargetSentence: p.Target})
	}
	return out
}
