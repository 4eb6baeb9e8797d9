package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}

	if err := c.Generator.validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}

	if err := c.Practice.validate(); err != nil {
		return fmt.Errorf("practice: %w", err)
	}

	return nil
}

func (g *GeneratorConfig) validate() error {
	switch g.Provider {
	case ProviderHTTP:
		if g.BaseURL == "" {
			return errors.New("base_url is required for the http provider")
		}
	case ProviderAnthropic, ProviderOpenAI:
		if g.APIKey == "" {
			return fmt.Errorf("api_key is required for the %s provider", g.Provider)
		}
	default:
		return fmt.Errorf("provider must be one of http, anthropic, openai (got %q)", g.Provider)
	}

	if g.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1 (got %d)", g.MaxAttempts)
	}
	if g.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", g.Timeout)
	}
	if g.InitialBackoff <= 0 || g.MaxBackoff < g.InitialBackoff {
		return fmt.Errorf("backoff must satisfy 0 < initial_backoff <= max_backoff (got %s, %s)", g.InitialBackoff, g.MaxBackoff)
	}
	return nil
}

func (p *PracticeConfig) validate() error {
	if _, ok := domain.LookupLanguage(p.DefaultFromLanguage); !ok {
		return fmt.Errorf("default_from_language is not supported (got %q)", p.DefaultFromLanguage)
	}
	if _, ok := domain.LookupLanguage(p.DefaultToLanguage); !ok {
		return fmt.Errorf("default_to_language is not supported (got %q)", p.DefaultToLanguage)
	}
	if strings.EqualFold(p.DefaultFromLanguage, p.DefaultToLanguage) {
		return errors.New("default_from_language and default_to_language must differ")
	}
	if p.DefaultCount < 1 || p.DefaultCount > p.MaxCount {
		return fmt.Errorf("default_count must be in [1, max_count] (got %d, max %d)", p.DefaultCount, p.MaxCount)
	}
	if p.DefaultRepetitions < 1 {
		return fmt.Errorf("default_repetitions must be >= 1 (got %d)", p.DefaultRepetitions)
	}
	if p.DefaultSentenceLength < 1 {
		return fmt.Errorf("default_sentence_length must be >= 1 (got %d)", p.DefaultSentenceLength)
	}
	if p.MasteryThreshold < 1 {
		return fmt.Errorf("mastery_threshold must be >= 1 (got %d)", p.MasteryThreshold)
	}
	if p.AvoidListSize < 0 {
		return fmt.Errorf("avoid_list_size must be >= 0 (got %d)", p.AvoidListSize)
	}
	if p.SessionIdleTTL <= 0 {
		return fmt.Errorf("session_idle_ttl must be > 0 (got %s)", p.SessionIdleTTL)
	}
	return nil
}
