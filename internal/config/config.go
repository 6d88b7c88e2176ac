// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathstore/blob/master/LICENSE.txt.

// Package config loads the route file used by the pathstore command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/tigerwill90/pathstore"
)

// DefaultEnvPrefix is the prefix of environment variables overriding the file.
const DefaultEnvPrefix = "PATHSTORE_"

var ErrConfiguration = errors.New("configuration error")

// Route is a pattern and the target reported when a pathname matches it.
type Route struct {
	Pattern string `koanf:"pattern" validate:"required,startswith=/"`
	Target  string `koanf:"target"`
}

type Config struct {
	Backtrack        bool    `koanf:"backtrack"`
	CaseSensitive    bool    `koanf:"case_sensitive"`
	ParamNamePattern string  `koanf:"param_name_pattern" validate:"required,excludes=/"`
	LogLevel         string  `koanf:"log_level" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Routes           []Route `koanf:"routes" validate:"required,min=1,dive"`
}

func defaults() map[string]any {
	return map[string]any{
		"backtrack":          false,
		"case_sensitive":     true,
		"param_name_pattern": pathstore.DefaultParamNamePattern,
		"log_level":          "info",
	}
}

// Load reads the YAML file at path and overlays environment variables starting with envPrefix.
func Load(path, envPrefix string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrConfiguration, path, err)
	}
	return Parse(data, envPrefix)
}

// Parse is like Load, but reads the YAML document from data.
func Parse(data []byte, envPrefix string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("%w: failed to load defaults: %w", ErrConfiguration, err)
	}

	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: failed to parse yaml: %w", ErrConfiguration, err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, val string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, envPrefix)), val
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("%w: failed to parse environment variables: %w", ErrConfiguration, err)
	}

	cfg := new(Config)
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return cfg, nil
}

// Level returns the configured log level.
func (c *Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Options translates the configuration into store options.
func (c *Config) Options() []pathstore.Option {
	return []pathstore.Option{
		pathstore.WithBacktrack(c.Backtrack),
		pathstore.WithCaseSensitive(c.CaseSensitive),
		pathstore.WithParamNamePattern(c.ParamNamePattern),
	}
}

// RouteError reports the route that could not be registered.
type RouteError struct {
	Index int
	Route Route
	Err   error
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("routes[%d]: %s", e.Index, e.Err)
}

func (e *RouteError) Unwrap() error {
	return e.Err
}

// NewStore builds a store holding every route of the configuration. The value of each
// pattern is its route.
func (c *Config) NewStore(opts ...pathstore.Option) (*pathstore.Store[Route], error) {
	s, err := pathstore.New[Route](append(c.Options(), opts...)...)
	if err != nil {
		return nil, err
	}

	for i, rte := range c.Routes {
		if err = s.Add(rte.Pattern, rte); err != nil {
			return nil, &RouteError{Index: i, Route: rte, Err: err}
		}
	}
	return s, nil
}
