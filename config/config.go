// Package config loads the settings of the Wallex client from a YAML file and
// the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/wallex/pkg/wallex"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultAPIKeyEnv environment variable holding the API key.
	DefaultAPIKeyEnv = "WALLEX_API_KEY"

	defaultTimeout = 30 * time.Second
)

// Config client settings.
type Config struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
	LogLevel zapcore.Level
}

// ConfigTmp raw YAML representation of Config.
type ConfigTmp struct {
	BaseURL   string `yaml:"base_url,omitempty"`
	APIKeyEnv string `yaml:"api_key_env,omitempty"`
	Timeout   string `yaml:"timeout,omitempty"`
	LogLevel  string `yaml:"log_level,omitempty"`
}

// Default returns the production settings with the API key taken from
// WALLEX_API_KEY. A missing key is not an error: public endpoints still work.
func Default() Config {
	return Config{
		BaseURL:  wallex.BaseURL,
		APIKey:   os.Getenv(DefaultAPIKeyEnv),
		Timeout:  defaultTimeout,
		LogLevel: zapcore.InfoLevel,
	}
}

// Get reads the YAML config at path. An empty path yields Default().
func Get(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}

	return parse(f)
}

func parse(data []byte) (Config, error) {
	var tmp ConfigTmp
	if err := yaml.Unmarshal(data, &tmp); err != nil {
		return Config{}, errors.Wrap(err, "decode yaml config")
	}

	cfg := Default()

	if tmp.BaseURL != "" {
		u, err := url.Parse(tmp.BaseURL)
		if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
			return Config{}, fmt.Errorf("incorrect 'base_url' param in yaml config: %q", tmp.BaseURL)
		}
		cfg.BaseURL = tmp.BaseURL
	}

	if tmp.APIKeyEnv != "" {
		cfg.APIKey = os.Getenv(tmp.APIKeyEnv)
	}

	if tmp.Timeout != "" {
		timeout, err := time.ParseDuration(tmp.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("incorrect 'timeout' param in yaml config (correct format is 30s), error: %w", err)
		}
		if timeout <= 0 {
			return Config{}, fmt.Errorf("incorrect 'timeout' param in yaml config: must be positive, got %s", tmp.Timeout)
		}
		cfg.Timeout = timeout
	}

	if tmp.LogLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(tmp.LogLevel)); err != nil {
			return Config{}, fmt.Errorf("incorrect 'log_level' param in yaml config, error: %w", err)
		}
	}

	return cfg, nil
}

// NewLogger builds a production logger at the configured level.
func (c Config) NewLogger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(c.LogLevel)
	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger, nil
}

// Options translates the settings into client options.
func (c Config) Options(logger *zap.Logger) []wallex.Option {
	return []wallex.Option{
		wallex.WithBaseURL(c.BaseURL),
		wallex.WithTimeout(c.Timeout),
		wallex.WithLogger(logger),
	}
}

// NewClient builds a client from the settings.
func (c Config) NewClient(logger *zap.Logger) *wallex.Client {
	return wallex.New(c.APIKey, c.Options(logger)...)
}
