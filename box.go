// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathstore/blob/master/LICENSE.txt.

package pathstore

// Box is the payload attached to the node terminating a registered pattern.
type Box[T any] struct {
	// Value is the value given to Add, or whatever a BoxingFunc derived from it.
	Value T
	// ParamNames holds the parameter names of the pattern, ordered by first occurrence.
	// An unnamed wildcard is recorded as "*".
	ParamNames []string
}

// BoxingFunc computes the box attached to the node terminating a pattern. It receives the box
// previously attached to that node (nil if none), the value given to Add and the ordered parameter
// names of the pattern. The returned box replaces the previous one. A non-nil error aborts Add and
// is returned as is to the caller.
//
// A BoxingFunc should be deterministic and free of side effects.
type BoxingFunc[T any] func(prev *Box[T], value T, paramNames []string) (*Box[T], error)

func defaultBoxing[T any](_ *Box[T], value T, paramNames []string) (*Box[T], error) {
	return &Box[T]{Value: value, ParamNames: paramNames}, nil
}

// RejectDuplicates returns a BoxingFunc that refuses to attach a box to a node already
// terminating a pattern. The error returned by Add is a [PatternConflictError].
func RejectDuplicates[T any]() BoxingFunc[T] {
	return func(prev *Box[T], value T, paramNames []string) (*Box[T], error) {
		if prev != nil {
			return nil, &PatternConflictError{ParamNames: prev.ParamNames}
		}
		return defaultBoxing(prev, value, paramNames)
	}
}
