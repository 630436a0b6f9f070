// Package config holds process configuration read from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"

	"github.com/samdwyer/skymanual/internal/storage"
)

// Config is the process configuration. Every field can be set with a
// SKYMANUAL_ prefixed environment variable.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	StorageBackend string        `env:"STORAGE" envDefault:"sqlite"`
	SQLitePath     string        `env:"SQLITE_PATH" envDefault:"skymanual.db"`
	RedisAddr      string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisTTL       time.Duration `env:"REDIS_TTL" envDefault:"0s"`

	// OTelEndpoint enables tracing when set.
	OTelEndpoint string `env:"OTEL_ENDPOINT"`
	OTelHeaders  string `env:"OTEL_HEADERS"`
}

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "SKYMANUAL_"

// Load parses the environment.
func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom parses the given variables instead of the process environment
// when environ is non-nil.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Storage returns the storage backend settings.
func (c Config) Storage() storage.Config {
	return storage.Config{
		Backend:    c.StorageBackend,
		SQLitePath: c.SQLitePath,
		RedisAddr:  c.RedisAddr,
		RedisTTL:   c.RedisTTL,
	}
}

// File keys accepted by ApplyFile.
const (
	keyLogLevel     = "log_level"
	keyLogFormat    = "log_format"
	keyStorage      = "storage"
	keySQLitePath   = "sqlite_path"
	keyRedisAddr    = "redis_addr"
	keyRedisTTL     = "redis_ttl"
	keyOTelEndpoint = "otel_endpoint"
	keyOTelHeaders  = "otel_headers"
)

// ApplyFile overrides cfg with the keys set in a YAML (or any viper
// supported) file. Keys absent from the file leave cfg unchanged.
func ApplyFile(cfg *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	fields := map[string]*string{
		keyLogLevel:     &cfg.LogLevel,
		keyLogFormat:    &cfg.LogFormat,
		keyStorage:      &cfg.StorageBackend,
		keySQLitePath:   &cfg.SQLitePath,
		keyRedisAddr:    &cfg.RedisAddr,
		keyOTelEndpoint: &cfg.OTelEndpoint,
		keyOTelHeaders:  &cfg.OTelHeaders,
	}
	for key, field := range fields {
		if v.IsSet(key) {
			*field = v.GetString(key)
		}
	}
	if v.IsSet(keyRedisTTL) {
		cfg.RedisTTL = v.GetDuration(keyRedisTTL)
	}
	return nil
}
