// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathstore/blob/master/LICENSE.txt.

package pathstore

import (
	"errors"
	"strings"
)

var (
	ErrInvalidConfig      = errors.New("invalid config")
	ErrInvalidPattern     = errors.New("invalid pattern")
	ErrEmptyParamName     = errors.New("empty param name")
	ErrInvalidParamName   = errors.New("invalid param name")
	ErrDuplicateParamName = errors.New("duplicate param name")
	ErrMisplacedWildcard  = errors.New("misplaced wildcard")
	ErrPatternExist       = errors.New("pattern already registered")
)

// PatternError describes a pattern rejected by Add.
type PatternError struct {
	// Err is one of the pattern sentinel errors.
	Err error
	// Pattern is the pattern given to Add.
	Pattern string
	// Param is the offending parameter name, if any.
	Param string
}

func (e *PatternError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Err.Error())
	if errors.Is(e.Err, ErrInvalidPattern) {
		sb.WriteByte(' ')
		sb.WriteString(e.Pattern)
		sb.WriteString(": must start with '/'")
		return sb.String()
	}

	if e.Param != "" {
		sb.WriteString(" '")
		sb.WriteString(e.Param)
		sb.WriteByte('\'')
	}
	sb.WriteString(" in pattern ")
	sb.WriteString(e.Pattern)
	if errors.Is(e.Err, ErrMisplacedWildcard) {
		sb.WriteString(": '*' must be the last character")
	}
	return sb.String()
}

// Unwrap returns the underlying sentinel error.
func (e *PatternError) Unwrap() error {
	return e.Err
}

// PatternConflictError is returned by a BoxingFunc created with [RejectDuplicates] when
// a pattern terminates on a node that already holds a box.
type PatternConflictError struct {
	// Pattern is the pattern being registered. It is set by Add.
	Pattern string
	// ParamNames are the parameter names of the box already attached.
	ParamNames []string
}

func (e *PatternConflictError) Error() string {
	var sb strings.Builder
	sb.WriteString("pattern already registered: ")
	if e.Pattern != "" {
		sb.WriteString("new pattern ")
		sb.WriteString(e.Pattern)
		sb.WriteString(" ")
	}
	sb.WriteString("conflicts with an existing pattern")
	if len(e.ParamNames) > 0 {
		sb.WriteString(" [")
		sb.WriteString(strings.Join(e.ParamNames, ", "))
		sb.WriteByte(']')
	}
	return sb.String()
}

// Unwrap returns the sentinel value [ErrPatternExist].
func (e *PatternConflictError) Unwrap() error {
	return ErrPatternExist
}

func newPatternError(err error, pattern, param string) error {
	return &PatternError{Err: err, Pattern: pattern, Param: param}
}
