package seeder

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/heartmarshall/rapidlingo-backend/internal/domain"
)

// Config holds seeder pipeline settings.
type Config struct {
	TatoebaPath    string `yaml:"tatoeba_path"     env:"SEEDER_TATOEBA_PATH"`
	UserID         string `yaml:"user_id"          env:"SEEDER_USER_ID"`
	FromLanguage   string `yaml:"from_language"    env:"SEEDER_FROM_LANGUAGE"    env-default:"en"`
	ToLanguage     string `yaml:"to_language"      env:"SEEDER_TO_LANGUAGE"      env-default:"es"`
	BatchSize      int    `yaml:"batch_size"       env:"SEEDER_BATCH_SIZE"       env-default:"500"`
	MaxSentenceLen int    `yaml:"max_sentence_len" env:"SEEDER_MAX_SENTENCE_LEN" env-default:"200"`
	Limit          int    `yaml:"limit"            env:"SEEDER_LIMIT"`
	DryRun         bool   `yaml:"dry_run"          env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}

// Validate checks the settings a run needs. The user is only required when
// rows are written.
func (c *Config) Validate() error {
	if c.TatoebaPath == "" {
		return errors.New("tatoeba_path is required")
	}
	if _, ok := domain.LookupLanguage(c.FromLanguage); !ok {
		return fmt.Errorf("from_language is not supported (got %q)", c.FromLanguage)
	}
	if _, ok := domain.LookupLanguage(c.ToLanguage); !ok {
		return fmt.Errorf("to_language is not supported (got %q)", c.ToLanguage)
	}
	if strings.EqualFold(c.FromLanguage, c.ToLanguage) {
		return errors.New("from_language and to_language must differ")
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("batch_size must be >= 1 (got %d)", c.BatchSize)
	}
	if !c.DryRun {
		if _, err := c.User(); err != nil {
			return err
		}
	}
	return nil
}

// User parses UserID.
func (c *Config) User() (uuid.UUID, error) {
	id, err := uuid.Parse(c.UserID)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("user_id must be a non-nil UUID (got %q)", c.UserID)
	}
	return id, nil
}
