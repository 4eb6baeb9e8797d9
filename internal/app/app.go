package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/rapidlingo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rapidlingo-backend/internal/adapter/postgres/statistics"
	"github.com/heartmarshall/rapidlingo-backend/internal/adapter/postgres/translation"
	"github.com/heartmarshall/rapidlingo-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/rapidlingo-backend/internal/adapter/provider/lingoapi"
	"github.com/heartmarshall/rapidlingo-backend/internal/adapter/provider/openai"
	"github.com/heartmarshall/rapidlingo-backend/internal/adapter/speech"
	"github.com/heartmarshall/rapidlingo-backend/internal/auth"
	"github.com/heartmarshall/rapidlingo-backend/internal/config"
	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
	"github.com/heartmarshall/rapidlingo-backend/internal/metrics"
	"github.com/heartmarshall/rapidlingo-backend/internal/provider"
	"github.com/heartmarshall/rapidlingo-backend/internal/segment"
	"github.com/heartmarshall/rapidlingo-backend/internal/service/practice"
	"github.com/heartmarshall/rapidlingo-backend/internal/transport/middleware"
	"github.com/heartmarshall/rapidlingo-backend/internal/transport/rest"
)

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

// Run loads configuration, wires dependencies and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("generator", cfg.Generator.Provider),
	)

	// Database.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	m := metrics.New()

	// Practice service.
	svc := practice.NewService(
		logger,
		translation.New(pool),
		statistics.New(pool),
		postgres.NewTxManager(pool),
		newExerciseSource(cfg.Generator, logger),
		newSpeaker(cfg.Practice, logger),
		newSegmenter(cfg.Practice, m, logger),
		m,
		practiceConfig(cfg),
	)

	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer stopJanitor()
	go svc.RunJanitor(janitorCtx, cfg.Practice.JanitorInterval)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := newRouter(routerDeps{
		cfg:       cfg,
		logger:    logger,
		practice:  rest.NewPracticeHandler(svc, logger),
		health:    rest.NewHealthHandler(BuildVersion()).WithCheck("database", pool).WithSessions(svc),
		validator: auth.NewValidator(cfg.Auth.JWTSecret, cfg.Auth.Audience, cfg.Auth.Issuer),
		limiter:   limiter,
		metrics:   m.Handler(),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done or the listener fails.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

func practiceConfig(cfg *config.Config) practice.Config {
	p := cfg.Practice
	return practice.Config{
		Defaults: domain.PracticeSettings{
			FromLanguage:   p.DefaultFromLanguage,
			ToLanguage:     p.DefaultToLanguage,
			SentenceLength: p.DefaultSentenceLength,
			Count:          p.DefaultCount,
			Repetitions:    p.DefaultRepetitions,
		},
		MaxCount:         p.MaxCount,
		MasteryThreshold: p.MasteryThreshold,
		AvoidListSize:    p.AvoidListSize,
		SessionIdleTTL:   p.SessionIdleTTL,
		FallbackToStored: p.FallbackToStored,
		MaxAttempts:      cfg.Generator.MaxAttempts,
		InitialBackoff:   cfg.Generator.InitialBackoff,
		MaxBackoff:       cfg.Generator.MaxBackoff,
	}
}

func newExerciseSource(cfg config.GeneratorConfig, logger *slog.Logger) exerciseSource {
	switch cfg.Provider {
	case config.ProviderAnthropic:
		return anthropic.New(cfg.APIKey, cfg.Model, cfg.MaxTokens, cfg.Timeout, logger)
	case config.ProviderOpenAI:
		return openai.New(cfg.APIKey, cfg.OpenAIBaseURL, cfg.Model, cfg.MaxTokens, cfg.Timeout, logger)
	default:
		return lingoapi.New(cfg.BaseURL, cfg.APIKey, cfg.Timeout, logger)
	}
}

func newSpeaker(cfg config.PracticeConfig, logger *slog.Logger) speaker {
	if cfg.SpeechRelay {
		return speech.NewRelay(cfg.SpeechMaxWait, logger)
	}
	return speech.Immediate{}
}

func newSegmenter(cfg config.PracticeConfig, m *metrics.Metrics, logger *slog.Logger) *segment.Segmenter {
	var breaker segment.Breaker
	if cfg.DictionaryBreaker {
		breaker = segment.NewDictionaryBreaker()
	}
	return segment.New(breaker, logger, segment.WithFallbackHook(func(script segment.Script, _ error) {
		m.SegmentationFallback(script.String())
	}))
}
