package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Generator GeneratorConfig `yaml:"generator"`
	Practice  PracticeConfig  `yaml:"practice"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds access-token validation settings. Tokens are issued by
// the external auth provider and signed with a shared HS256 secret.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	Audience  string `yaml:"audience"   env:"AUTH_AUDIENCE"   env-default:"authenticated"`
	Issuer    string `yaml:"issuer"     env:"AUTH_ISSUER"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	ReplenishPerMinute int           `yaml:"replenish_per_minute" env:"RATE_LIMIT_REPLENISH_PER_MINUTE" env-default:"10"`
	ExplainPerMinute   int           `yaml:"explain_per_minute"   env:"RATE_LIMIT_EXPLAIN_PER_MINUTE"   env-default:"20"`
	CleanupInterval    time.Duration `yaml:"cleanup_interval"     env:"RATE_LIMIT_CLEANUP_INTERVAL"     env-default:"5m"`
}

// Exercise source kinds.
const (
	ProviderHTTP      = "http"
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// GeneratorConfig selects and configures the exercise source.
type GeneratorConfig struct {
	Provider       string        `yaml:"provider"        env:"GENERATOR_PROVIDER"        env-default:"http"`
	BaseURL        string        `yaml:"base_url"        env:"GENERATOR_BASE_URL"        env-default:"http://localhost:8000"`
	APIKey         string        `yaml:"api_key"         env:"GENERATOR_API_KEY"`
	OpenAIBaseURL  string        `yaml:"openai_base_url" env:"GENERATOR_OPENAI_BASE_URL"`
	Model          string        `yaml:"model"           env:"GENERATOR_MODEL"`
	MaxTokens      int           `yaml:"max_tokens"      env:"GENERATOR_MAX_TOKENS"      env-default:"4096"`
	Timeout        time.Duration `yaml:"timeout"         env:"GENERATOR_TIMEOUT"         env-default:"60s"`
	MaxAttempts    int           `yaml:"max_attempts"    env:"GENERATOR_MAX_ATTEMPTS"    env-default:"3"`
	InitialBackoff time.Duration `yaml:"initial_backoff" env:"GENERATOR_INITIAL_BACKOFF" env-default:"500ms"`
	MaxBackoff     time.Duration `yaml:"max_backoff"     env:"GENERATOR_MAX_BACKOFF"     env-default:"5s"`
}

// PracticeConfig holds session and replenishment defaults.
type PracticeConfig struct {
	DefaultFromLanguage   string        `yaml:"default_from_language"   env:"PRACTICE_DEFAULT_FROM_LANGUAGE"   env-default:"en"`
	DefaultToLanguage     string        `yaml:"default_to_language"     env:"PRACTICE_DEFAULT_TO_LANGUAGE"     env-default:"es"`
	DefaultCount          int           `yaml:"default_count"           env:"PRACTICE_DEFAULT_COUNT"           env-default:"10"`
	DefaultRepetitions    int           `yaml:"default_repetitions"     env:"PRACTICE_DEFAULT_REPETITIONS"     env-default:"3"`
	DefaultSentenceLength int           `yaml:"default_sentence_length" env:"PRACTICE_DEFAULT_SENTENCE_LENGTH" env-default:"5"`
	MaxCount              int           `yaml:"max_count"               env:"PRACTICE_MAX_COUNT"               env-default:"50"`
	MasteryThreshold      int           `yaml:"mastery_threshold"       env:"PRACTICE_MASTERY_THRESHOLD"       env-default:"5"`
	AvoidListSize         int           `yaml:"avoid_list_size"         env:"PRACTICE_AVOID_LIST_SIZE"         env-default:"50"`
	SessionIdleTTL        time.Duration `yaml:"session_idle_ttl"        env:"PRACTICE_SESSION_IDLE_TTL"        env-default:"2h"`
	JanitorInterval       time.Duration `yaml:"janitor_interval"        env:"PRACTICE_JANITOR_INTERVAL"        env-default:"5m"`
	FallbackToStored      bool          `yaml:"fallback_to_stored"      env:"PRACTICE_FALLBACK_TO_STORED"      env-default:"true"`
	SpeechRelay           bool          `yaml:"speech_relay"            env:"PRACTICE_SPEECH_RELAY"            env-default:"true"`
	SpeechMaxWait         time.Duration `yaml:"speech_max_wait"         env:"PRACTICE_SPEECH_MAX_WAIT"         env-default:"30s"`
	DictionaryBreaker     bool          `yaml:"dictionary_breaker"      env:"PRACTICE_DICTIONARY_BREAKER"      env-default:"true"`
}
