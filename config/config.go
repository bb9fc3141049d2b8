// Package config loads windowscan settings from an optional YAML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

var ErrInvalid = errors.New("config: invalid value")

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`             // debug, info, warn, error
	Development bool   `mapstructure:"development" yaml:"development"` // human readable console output
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"` // yaml or json
}

type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
}

var (
	defaults = map[string]any{
		"log.level":       "info",
		"log.development": false,
		"output.format":   "yaml",
	}

	// envBindings maps configuration keys to the environment variables that
	// override them.
	envBindings = map[string][]string{
		"log.level":       {"WINDOWSCAN_LOG_LEVEL"},
		"log.development": {"WINDOWSCAN_LOG_DEVELOPMENT"},
		"output.format":   {"WINDOWSCAN_OUTPUT_FORMAT"},
	}

	formats = []string{"yaml", "json"}
)

// Load reads filePath if it exists and applies environment overrides on top.
// An empty filePath loads defaults and environment only.
func Load(filePath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if filePath != "" {
		v.SetConfigFile(filePath)
		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", filePath, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(slices.Clone(envs), 0, key)
		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if !slices.Contains(formats, c.Output.Format) {
		return fmt.Errorf("%w: output.format %q, want one of %v", ErrInvalid, c.Output.Format, formats)
	}
	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return lvl, fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return lvl, nil
}
