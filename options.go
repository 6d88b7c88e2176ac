// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathstore/blob/master/LICENSE.txt.

package pathstore

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dlclark/regexp2"
)

// DefaultParamNamePattern is the pattern parameter names must match when no other pattern
// is configured: a letter or underscore followed by word characters.
const DefaultParamNamePattern = `[a-zA-Z_]\w*`

type Option interface {
	apply(*config) error
}

type optionFunc func(*config) error

func (o optionFunc) apply(c *config) error {
	return o(c)
}

type config struct {
	boxing           any
	logger           *slog.Logger
	paramNamePattern string
	backtrack        bool
	caseSensitive    bool
}

func defaultConfig() *config {
	return &config{
		logger:           slog.New(slog.DiscardHandler),
		paramNamePattern: DefaultParamNamePattern,
		caseSensitive:    true,
	}
}

// WithBacktrack enable or disable the backtracking lookup. The default lookup walks the tree
// linearly and remembers at most one point to resume from, so it may miss a match that requires
// revisiting more than one earlier decision. The backtracking lookup tries every alternative
// (static edge, then parameter, then wildcard) and always finds a match if one exists, at the
// cost of a worst case exponential amount of work on pathological trees.
func WithBacktrack(enable bool) Option {
	return optionFunc(func(c *config) error {
		c.backtrack = enable
		return nil
	})
}

// WithCaseSensitive configures whether the static parts of patterns are compared with the pathname
// case sensitively. When disabled, static parts are folded to lower case (ASCII only) at registration
// and lookup, while captured values always keep the casing of the looked up pathname. Enabled by default.
func WithCaseSensitive(enable bool) Option {
	return optionFunc(func(c *config) error {
		c.caseSensitive = enable
		return nil
	})
}

// WithParamNamePattern sets the pattern (ECMAScript regular expression syntax) every parameter
// name must fully match. The pattern cannot contain '/'. By default, [DefaultParamNamePattern] is used.
func WithParamNamePattern(pattern string) Option {
	return optionFunc(func(c *config) error {
		if pattern == "" {
			return fmt.Errorf("%w: param name pattern cannot be empty", ErrInvalidConfig)
		}
		c.paramNamePattern = pattern
		return nil
	})
}

// WithBoxing register a [BoxingFunc] used to compute the box attached to the node terminating
// a pattern. The function must be of the same payload type than the store, otherwise New returns
// an error.
func WithBoxing[T any](fn BoxingFunc[T]) Option {
	return optionFunc(func(c *config) error {
		if fn == nil {
			return fmt.Errorf("%w: boxing function cannot be nil", ErrInvalidConfig)
		}
		c.boxing = fn
		return nil
	})
}

// WithLogHandler register a [slog.Handler] used to report tree mutations at debug level.
// By default, nothing is logged.
func WithLogHandler(handler slog.Handler) Option {
	return optionFunc(func(c *config) error {
		if handler == nil {
			return fmt.Errorf("%w: log handler cannot be nil", ErrInvalidConfig)
		}
		c.logger = slog.New(handler)
		return nil
	})
}

func compileParamNamePattern(pattern string) (*regexp2.Regexp, error) {
	if strings.IndexByte(pattern, slashDelim) >= 0 {
		return nil, fmt.Errorf("%w: param name pattern %q must not contain '/'", ErrInvalidConfig, pattern)
	}
	re, err := regexp2.Compile("^(?:"+pattern+")$", regexp2.ECMAScript)
	if err != nil {
		return nil, fmt.Errorf("%w: param name pattern %q: %w", ErrInvalidConfig, pattern, err)
	}
	return re, nil
}

func resolveBoxing[T any](boxing any) (BoxingFunc[T], error) {
	if boxing == nil {
		return defaultBoxing[T], nil
	}
	fn, ok := boxing.(BoxingFunc[T])
	if !ok {
		var zero T
		return nil, fmt.Errorf("%w: boxing function %T is not a BoxingFunc[%T]", ErrInvalidConfig, boxing, zero)
	}
	return fn, nil
}
