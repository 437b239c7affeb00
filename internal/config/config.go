// Package config loads the tilegrid command configuration from defaults,
// an optional config file and TILEGRID_* environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalid wraps every configuration validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Keys understood in files and as TILEGRID_<KEY> environment variables.
const (
	KeyTimeLimit   = "time_limit"
	KeyMaxNodes    = "max_nodes"
	KeyLogLevel    = "log_level"
	KeyOutput      = "output"
	KeyReport      = "report"
	KeyParallelism = "parallelism"
)

// Config holds the command settings.
type Config struct {
	TimeLimit   time.Duration `mapstructure:"time_limit"`
	MaxNodes    int64         `mapstructure:"max_nodes"`
	LogLevel    string        `mapstructure:"log_level"`
	Output      string        `mapstructure:"output"`
	Report      string        `mapstructure:"report"`
	Parallelism int           `mapstructure:"parallelism"`
}

// Default returns the built-in settings: a five minute budget, no node cap,
// info logging, output to stdout and up to four concurrent batch solves.
func Default() Config {
	return Config{
		TimeLimit:   5 * time.Minute,
		LogLevel:    "info",
		Output:      "-",
		Parallelism: 4,
	}
}

// Load reads the configuration. path may be empty, in which case only
// defaults and the environment are used.
func Load(path string) (Config, error) {
	def := Default()
	v := viper.New()
	v.SetDefault(KeyTimeLimit, def.TimeLimit)
	v.SetDefault(KeyMaxNodes, def.MaxNodes)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyOutput, def.Output)
	v.SetDefault(KeyReport, def.Report)
	v.SetDefault(KeyParallelism, def.Parallelism)
	v.SetEnvPrefix("TILEGRID")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.TimeLimit < 0:
		return fmt.Errorf("%w: %s must not be negative", ErrInvalid, KeyTimeLimit)
	case c.MaxNodes < 0:
		return fmt.Errorf("%w: %s must not be negative", ErrInvalid, KeyMaxNodes)
	case c.Parallelism < 1:
		return fmt.Errorf("%w: %s must be at least 1", ErrInvalid, KeyParallelism)
	}

	return nil
}
