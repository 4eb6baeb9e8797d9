package practice

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
	"github.com/heartmarshall/rapidlingo-backend/internal/game"
	"github.com/heartmarshall/rapidlingo-backend/internal/provider"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type translationRepo interface {
	InsertBatch(ctx context.Context, userID uuid.UUID, from, to string, exercises []domain.Exercise) (domain.BatchInsertResult, error)
	IncrementCorrect(ctx context.Context, key domain.TranslationKey) error
	ListForPractice(ctx context.Context, userID uuid.UUID, from, to string, threshold, limit int) ([]domain.TranslationRecord, error)
	RecentTargets(ctx context.Context, userID uuid.UUID, from, to string, limit int) ([]string, error)
}

type statisticsRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (domain.Statistics, error)
	GetForUpdate(ctx context.Context, userID uuid.UUID) (domain.Statistics, error)
	Save(ctx context.Context, userID uuid.UUID, s domain.Statistics) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type exerciseSource interface {
	Name() string
	Generate(ctx context.Context, req provider.ExerciseRequest) ([]domain.Exercise, error)
	Explain(ctx context.Context, req provider.ExplainRequest) (string, error)
}

type speaker interface {
	Speak(ctx context.Context, key, text, lang string, onDone func())
	Done(key string) bool
	Cancel(key string)
}

type splitter interface {
	Split(sentence string) []string
}

type recorder interface {
	Completion(outcome string)
	GenerationAttempt(provider string, err error, took time.Duration)
	Replenished(source string)
	SetActiveSessions(n int)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the practice tunables.
type Config struct {
	Defaults         domain.PracticeSettings
	MaxCount         int
	MasteryThreshold int
	AvoidListSize    int
	SessionIdleTTL   time.Duration
	FallbackToStored bool

	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Service owns one in-memory practice session per user.
type Service struct {
	translations translationRepo
	stats        statisticsRepo
	tx           txManager
	source       exerciseSource
	speaker      speaker
	splitter     splitter
	metrics      recorder
	log          *slog.Logger
	cfg          Config

	rng game.Rand
	now func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	inflight singleflight.Group
}

// Option customizes a Service.
type Option func(*Service)

// WithRand replaces the randomness used for queue and token shuffling.
func WithRand(rng game.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// WithClock replaces the wall clock used for idle tracking.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new practice service.
func NewService(
	log *slog.Logger,
	translations translationRepo,
	stats statisticsRepo,
	tx txManager,
	source exerciseSource,
	speaker speaker,
	splitter splitter,
	metrics recorder,
	cfg Config,
	opts ...Option,
) *Service {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	s := &Service{
		translations: translations,
		stats:        stats,
		tx:           tx,
		source:       source,
		speaker:      speaker,
		splitter:     splitter,
		metrics:      metrics,
		log:          log.With("service", "practice"),
		cfg:          cfg,
		rng:          game.DefaultRand,
		now:          time.Now,
		sessions:     make(map[uuid.UUID]*session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
