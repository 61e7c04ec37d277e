// SPDX-License-Identifier: MIT

// Package config loads Engine settings with viper: defaults, an optional
// config file, then LVJET_* environment variables (highest precedence).
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lvjet/cluster"
	"github.com/katalvlaran/lvjet/errors"
	"github.com/katalvlaran/lvjet/jets"
	"github.com/katalvlaran/lvjet/logger"
)

// EnvPrefix prefixes every environment override, e.g. LVJET_LOG_LEVEL.
const EnvPrefix = "LVJET"

// Config is the full lvjet configuration.
type Config struct {
	Algorithm     string    `mapstructure:"algorithm"`
	R             float64   `mapstructure:"r"`
	P             float64   `mapstructure:"p"`
	Recombination string    `mapstructure:"recombination"`
	Workers       int       `mapstructure:"workers"`
	MaxDepth      int       `mapstructure:"max_depth"`
	Log           LogConfig `mapstructure:"log"`
}

// LogConfig selects the zap encoder and level.
type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// Load reads defaults, then path when non-empty, then the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", path)
		}
	}
	return LoadWithViper(v)
}

// LoadWithViper unmarshals and validates the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the clustering definition and the worker count.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidArgument, "config: workers must be >= 1, got %d", c.Workers)
	}
	_, err := c.Definition()
	return err
}

// Definition parses the algorithm and recombination names.
func (c *Config) Definition() (cluster.Definition, error) {
	alg, err := cluster.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return cluster.Definition{}, err
	}
	rec, err := cluster.ParseRecombiner(c.Recombination)
	if err != nil {
		return cluster.Definition{}, err
	}
	def := cluster.Definition{Algorithm: alg, R: c.R, P: c.P, Recombiner: rec}
	if err := def.Validate(); err != nil {
		return cluster.Definition{}, err
	}
	return def, nil
}

// InitLogger configures the package-level logger from c.Log.
func (c *Config) InitLogger() error {
	return logger.Initialize(c.Log.JSON, c.Log.Level)
}

// EngineOptions maps the settings onto jets options. extra options are
// appended and win over the configured ones.
func (c *Config) EngineOptions(extra ...jets.Option) []jets.Option {
	opts := []jets.Option{
		jets.WithWorkers(c.Workers),
		jets.WithMaxDepth(c.MaxDepth),
		jets.WithLogger(logger.Named("jets")),
	}
	return append(opts, extra...)
}
