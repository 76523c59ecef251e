// Package config loads the grievance analyzer configuration from a YAML file
// with environment variable overrides.
package config

import "time"

// Default configuration values.
const (
	defaultServiceName    = "grievance-analyzer"
	defaultServiceVersion = "1.0.0"
	defaultServicePort    = 8000
	defaultModelDir       = "models"
	defaultMaxFeatures    = 1000
	defaultLogLevel       = "info"
	defaultLogFormat      = "json"
	defaultRateLimitRPS   = 100
	defaultReadTimeout    = 30 * time.Second
	defaultWriteTimeout   = 60 * time.Second
)

// Config holds all configuration for the analyzer service.
type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	Model     ModelConfig     `yaml:"model"`
	Logging   LoggingConfig   `yaml:"logging"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name         string        `yaml:"name"`
	Version      string        `yaml:"version"`
	Port         int           `env:"ANALYZER_PORT" yaml:"port"`
	Debug        bool          `env:"APP_DEBUG"     yaml:"debug"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// ModelConfig holds statistical classifier settings. Dir is where the two
// model artifacts (vectorizer, classifier) are persisted.
type ModelConfig struct {
	Dir         string `env:"MODEL_DIR" yaml:"dir"`
	MaxFeatures int    `yaml:"max_features"`
	Retrain     bool   `env:"MODEL_RETRAIN" yaml:"retrain"` // force retraining at startup
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// RateLimitConfig holds request rate limiting settings for the analyze
// endpoints.
type RateLimitConfig struct {
	Enabled bool `yaml:"enabled"`
	RPS     int  `env:"ANALYZER_RATE_LIMIT_RPS" yaml:"rps"`
	Burst   int  `yaml:"burst"`
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	return loadWithDefaults[Config](path, setDefaults)
}

func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setModelDefaults(&cfg.Model)
	setLoggingDefaults(&cfg.Logging)
	setRateLimitDefaults(&cfg.RateLimit)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = defaultReadTimeout
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = defaultWriteTimeout
	}
}

func setModelDefaults(m *ModelConfig) {
	if m.Dir == "" {
		m.Dir = defaultModelDir
	}
	if m.MaxFeatures == 0 {
		m.MaxFeatures = defaultMaxFeatures
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}

func setRateLimitDefaults(r *RateLimitConfig) {
	if r.RPS == 0 {
		r.RPS = defaultRateLimitRPS
	}
	if r.Burst == 0 {
		r.Burst = r.RPS
	}
}
