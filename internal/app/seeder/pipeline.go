package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/rapidlingo-backend/internal/app/seeder/tatoeba"
	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
)

const defaultBatchSize = 500

// Result holds the outcome of a pipeline run.
type Result struct {
	Parse    tatoeba.Stats
	Inserted int
	Skipped  int
	Batches  int
	Duration time.Duration
}

// Pipeline parses a sentence-pair dataset and stores it for one user.
type Pipeline struct {
	log  *slog.Logger
	repo TranslationBulkRepo
	cfg  Config
}

// NewPipeline creates a new Pipeline. repo may be nil for dry runs.
func NewPipeline(log *slog.Logger, repo TranslationBulkRepo, cfg Config) *Pipeline {
	return &Pipeline{
		log:  log.With("service", "seeder"),
		repo: repo,
		cfg:  cfg,
	}
}

// Run parses the dataset and, unless DryRun is set, inserts it in batches.
// Sentences the user already has are skipped by the store.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := time.Now()

	parsed, err := tatoeba.ParseFile(p.cfg.TatoebaPath, tatoeba.Options{
		MaxSentenceLen: p.cfg.MaxSentenceLen,
		Limit:          p.cfg.Limit,
	})
	if err != nil {
		return Result{}, fmt.Errorf("parse tatoeba: %w", err)
	}

	p.log.Info("tatoeba parsed",
		slog.Int("total_lines", parsed.Stats.TotalLines),
		slog.Int("pairs", parsed.Stats.TotalPairs),
		slog.Int("skipped_long", parsed.Stats.SkippedLong),
		slog.Int("skipped_malformed", parsed.Stats.SkippedMalformed),
		slog.Int("skipped_duplicate", parsed.Stats.SkippedDuplicate),
	)

	result := Result{Parse: parsed.Stats}
	if p.cfg.DryRun {
		result.Skipped = parsed.Stats.TotalPairs
		result.Duration = time.Since(start)
		p.log.Info("dry run, nothing written", slog.Int("pairs", parsed.Stats.TotalPairs))
		return result, nil
	}

	userID, err := p.cfg.User()
	if err != nil {
		return result, err
	}

	err = batchProcess(parsed.ToExercises(), p.cfg.BatchSize, func(batch []domain.Exercise) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := p.repo.InsertBatch(ctx, userID, p.cfg.FromLanguage, p.cfg.ToLanguage, batch)
		if err != nil {
			return err
		}
		result.Batches++
		result.Inserted += res.Inserted
		result.Skipped += res.Skipped
		return nil
	})
	result.Duration = time.Since(start)
	if err != nil {
		return result, fmt.Errorf("insert translations (batch %d): %w", result.Batches+1, err)
	}

	p.log.Info("seeding completed",
		slog.String("user_id", userID.String()),
		slog.String("from", p.cfg.FromLanguage),
		slog.String("to", p.cfg.ToLanguage),
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
		slog.Int("batches", result.Batches),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}

// batchProcess calls fn for consecutive slices of at most batchSize items.
func batchProcess[T any](items []T, batchSize int, fn func([]T) error) error {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		if err := fn(items[i:end]); err != nil {
			return err
		}
	}
	return nil
}
