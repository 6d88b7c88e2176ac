// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathstore/blob/master/LICENSE.txt.

// Package pathstore implements a pathname matching engine backed by a radix tree. Patterns
// are made of static text, named parameters (":name", matching a single path segment) and
// catch-all wildcards ("*" or ":name*", matching the remainder of the pathname). Each pattern
// is registered with a value that is returned, together with the captured parameter values,
// when a pathname matches it.
//
//	s := pathstore.MustNew[string]()
//	s.MustAdd("/users/:name", "user")
//	s.MustAdd("/files/:path*", "file")
//	m, ok := s.Find("/users/jKeyLu") // ok == true, m.Values == []string{"jKeyLu"}
package pathstore

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/tigerwill90/pathstore/internal/iterutil"
	"github.com/tigerwill90/pathstore/internal/stringutil"
	"github.com/tigerwill90/pathstore/treeview"
)

// Store holds registered patterns in a radix tree.
//
// A Store has no internal synchronization. It is safe to call Find concurrently as long as
// no Add or Reset runs at the same time; any other concurrent use must be synchronized by
// the caller. Patterns are usually registered during a setup phase, before lookups start.
type Store[T any] struct {
	root        *node[T]
	boxing      BoxingFunc[T]
	paramNameRE *regexp2.Regexp
	logger      *slog.Logger
	cfg         config
}

// Match is the result of a successful Find.
type Match[T any] struct {
	// Box is the box attached to the matched pattern.
	Box *Box[T]
	// Values are the captured parameter values, in the order their names appear in the pattern.
	Values []string
}

// Params pairs the captured values with the parameter names recorded in the box.
func (m Match[T]) Params() Params {
	if m.Box == nil || len(m.Values) == 0 {
		return nil
	}
	n := min(len(m.Values), len(m.Box.ParamNames))
	params := make(Params, n)
	for i := 0; i < n; i++ {
		params[i] = Param{Key: m.Box.ParamNames[i], Value: m.Values[i]}
	}
	return params
}

// New returns a ready to use Store, or an error if one of the options is invalid.
// The error wraps [ErrInvalidConfig].
func New[T any](opts ...Option) (*Store[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	re, err := compileParamNamePattern(cfg.paramNamePattern)
	if err != nil {
		return nil, err
	}

	boxing, err := resolveBoxing[T](cfg.boxing)
	if err != nil {
		return nil, err
	}

	return &Store[T]{
		root:        newRoot[T](),
		boxing:      boxing,
		paramNameRE: re,
		logger:      cfg.logger,
		cfg:         *cfg,
	}, nil
}

// MustNew is a convenience wrapper for New that panics on error.
func MustNew[T any](opts ...Option) *Store[T] {
	s, err := New[T](opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func newRoot[T any]() *node[T] {
	return newNode[T](staticKind, "/")
}

// Find looks up the pattern matching pathname. It returns false if there is no match, which
// is not an error condition. By default, the lookup is linear and may miss a match that requires
// revisiting more than one earlier decision (see [WithBacktrack]). The backtracking lookup recurses
// once per traversed node, so its stack depth is bounded by the number of nodes on the matched path.
func (s *Store[T]) Find(pathname string) (Match[T], bool) {
	search := pathname
	if !s.cfg.caseSensitive {
		search = stringutil.ToLowerASCII(pathname)
	}

	var (
		n      *node[T]
		values []string
	)
	if s.cfg.backtrack {
		n, values = lookupBacktrack(s.root, search, pathname, 0, nil)
	} else {
		n, values = lookup(s.root, search, pathname)
	}

	if n == nil {
		return Match[T]{}, false
	}

	return Match[T]{Box: n.box, Values: values}, true
}

// Reset discards every registered pattern.
func (s *Store[T]) Reset() {
	s.root = newRoot[T]()
	s.logger.Debug("store reset")
}

// Backtrack reports whether the backtracking lookup is enabled.
func (s *Store[T]) Backtrack() bool {
	return s.cfg.backtrack
}

// CaseSensitive reports whether static parts are compared case sensitively.
func (s *Store[T]) CaseSensitive() bool {
	return s.cfg.caseSensitive
}

// Len returns the number of nodes terminating a pattern.
func (s *Store[T]) Len() int {
	return iterutil.Len2(s.All())
}

// Root returns a read-only view of the tree root.
func (s *Store[T]) Root() NodeView[T] {
	return NodeView[T]{n: s.root}
}

// String returns a human-readable drawing of the tree.
func (s *Store[T]) String() string {
	return treeview.Draw(s.Root(), viewLabel[T], NodeView[T].Children)
}

func viewLabel[T any](v NodeView[T]) string {
	box := v.Box()
	if box == nil || len(box.ParamNames) == 0 {
		return v.Prefix()
	}
	return fmt.Sprintf("%s (%s)", v.Prefix(), strings.Join(box.ParamNames, ","))
}
