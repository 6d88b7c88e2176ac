// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathstore/blob/master/LICENSE.txt.

package pathstore

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/tigerwill90/pathstore/internal/stringutil"
)

// segment is a literal to insert in the tree. Each literal of a pattern is a prefix
// of the next one, e.g. "/users/:/repos" is compiled to "/users/", "/users/:" and
// "/users/:/repos".
type segment struct {
	literal string
	kind    nodeKind
}

// Add registers pattern with value. A pattern must start with '/' and is made of static text,
// named parameters and wildcards:
//
//	Pattern "/users/:name"        matches "/users/jKeyLu"            captures ["jKeyLu"]
//	Pattern "/files/:path*"       matches "/files/to/the/pathname"   captures ["to/the/pathname"]
//	Pattern "/*"                  matches "/anything/else"           captures ["anything/else"]
//
// A parameter matches everything up to the next '/' or the end of the pathname. A wildcard
// matches the remainder of the pathname and must end the pattern. Registering a pattern
// that ends on the same node than a previous one replaces its box, unless the [BoxingFunc]
// decides otherwise. Pattern errors wrap one of [ErrInvalidPattern], [ErrEmptyParamName],
// [ErrInvalidParamName], [ErrDuplicateParamName] or [ErrMisplacedWildcard].
func (s *Store[T]) Add(pattern string, value T) error {
	segments, names, err := s.compile(pattern)
	if err != nil {
		return err
	}

	var n *node[T]
	for _, seg := range segments {
		n = s.insert(seg.kind, seg.literal)
	}

	if err = s.attach(n, value, names); err != nil {
		var conflict *PatternConflictError
		if errors.As(err, &conflict) && conflict.Pattern == "" {
			conflict.Pattern = pattern
		}
		return err
	}

	s.logger.Debug("pattern registered", slog.String("pattern", pattern), slog.Any("params", names))
	return nil
}

// MustAdd is a convenience wrapper for Add that panics on error.
func (s *Store[T]) MustAdd(pattern string, value T) {
	if err := s.Add(pattern, value); err != nil {
		panic(err)
	}
}

// compile validates pattern and split it into the literals to insert, the last one being
// the pattern terminal. It also returns the parameter names in order of appearance.
func (s *Store[T]) compile(pattern string) ([]segment, []string, error) {
	if len(pattern) == 0 || pattern[0] != slashDelim {
		return nil, nil, newPatternError(ErrInvalidPattern, pattern, "")
	}

	var (
		segments []segment
		names    []string
	)

	path := pattern
	for i := 0; i < len(path); i++ {
		switch path[i] {
		case colonDelim:
			segments = append(segments, segment{kind: staticKind, literal: s.fold(path[:i])})

			start := i + 1
			end := start
			for end < len(path) && path[end] != slashDelim {
				end++
			}

			name := path[start:end]
			isWildcard := len(name) > 0 && name[len(name)-1] == starDelim
			if isWildcard {
				name = name[:len(name)-1]
			}

			if name == "" {
				return nil, nil, newPatternError(ErrEmptyParamName, pattern, "")
			}
			if !s.validParamName(name) {
				return nil, nil, newPatternError(ErrInvalidParamName, pattern, name)
			}
			if slices.Contains(names, name) {
				return nil, nil, newPatternError(ErrDuplicateParamName, pattern, name)
			}
			names = append(names, name)

			if isWildcard {
				if end != len(path) {
					return nil, nil, newPatternError(ErrMisplacedWildcard, pattern, "")
				}
				segments = append(segments, segment{kind: wildcardKind, literal: s.fold(path[:i]) + "*"})
				return segments, names, nil
			}

			// Only the marker is kept in the tree, the name is recorded in the box.
			path = path[:start] + path[end:]
			segments = append(segments, segment{kind: paramKind, literal: s.fold(path[:start])})
			if start == len(path) {
				return segments, names, nil
			}
			// path[start] is a '/'.
			i = start
		case starDelim:
			segments = append(segments, segment{kind: staticKind, literal: s.fold(path[:i])})
			names = append(names, "*")

			if i+1 != len(path) {
				return nil, nil, newPatternError(ErrMisplacedWildcard, pattern, "")
			}
			segments = append(segments, segment{kind: wildcardKind, literal: s.fold(path)})
			return segments, names, nil
		}
	}

	segments = append(segments, segment{kind: staticKind, literal: s.fold(path)})
	return segments, names, nil
}

func (s *Store[T]) fold(literal string) string {
	if s.cfg.caseSensitive {
		return literal
	}
	return stringutil.ToLowerASCII(literal)
}

func (s *Store[T]) validParamName(name string) bool {
	ok, err := s.paramNameRE.MatchString(name)
	return err == nil && ok
}
