// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathstore/blob/master/LICENSE.txt.

package pathstore

import (
	"iter"
	"strings"

	"github.com/tigerwill90/pathstore/internal/iterutil"
)

// All returns a range iterator over every registered pattern and its box, in depth first
// order (static edges by label, then param, then wildcard). Patterns are rebuilt from the
// tree, so static parts of a case-insensitive store are reported folded, and parameter names
// are taken from the box. This function is NOT thread-safe.
func (s *Store[T]) All() iter.Seq2[string, *Box[T]] {
	return func(yield func(string, *Box[T]) bool) {
		it := newIterator(s.root)
		for it.hasNextLeaf() {
			box := it.node().box
			if !yield(expandPattern(it.fullPath(), box.ParamNames), box) {
				return
			}
		}
	}
}

// Patterns returns a range iterator over every registered pattern, in the same order as [Store.All].
// This function is NOT thread-safe.
func (s *Store[T]) Patterns() iter.Seq[string] {
	return iterutil.Left(s.All())
}

// Boxes returns a range iterator over the box of every registered pattern, in the same order
// as [Store.All]. This function is NOT thread-safe.
func (s *Store[T]) Boxes() iter.Seq[*Box[T]] {
	return iterutil.Right(s.All())
}

func newIterator[T any](n *node[T]) *iterator[T] {
	return &iterator[T]{
		stack: []stack[T]{{edges: []*node[T]{n}}},
	}
}

type iterator[T any] struct {
	current *node[T]
	path    string
	stack   []stack[T]
}

type stack[T any] struct {
	path  string
	edges []*node[T]
}

func (it *iterator[T]) fullPath() string {
	return it.path
}

func (it *iterator[T]) node() *node[T] {
	return it.current
}

func (it *iterator[T]) hasNextLeaf() bool {
	for it.hasNext() {
		if it.current.isLeaf() {
			return true
		}
	}
	return false
}

func (it *iterator[T]) hasNext() bool {
	if len(it.stack) > 0 {
		n := len(it.stack)
		last := it.stack[n-1]
		elem := last.edges[0]

		if len(last.edges) > 1 {
			it.stack[n-1].edges = last.edges[1:]
		} else {
			it.stack = it.stack[:n-1]
		}

		if edges := elem.edges(); len(edges) > 0 {
			path := last.path + elem.prefix
			it.stack = append(it.stack, stack[T]{path, edges})
		}

		it.current = elem
		it.path = last.path + elem.prefix
		return true
	}

	it.current = nil
	it.path = ""
	return false
}

// expandPattern replaces the markers of a tree path with the parameter names. Static parts
// never contain ':' or '*', so every marker belongs to a param or wildcard node.
func expandPattern(path string, names []string) string {
	if strings.IndexByte(path, colonDelim) < 0 && strings.IndexByte(path, starDelim) < 0 {
		return path
	}

	var sb strings.Builder
	sb.Grow(len(path))
	k := 0
	for i := 0; i < len(path); i++ {
		c := path[i]
		if (c != colonDelim && c != starDelim) || k >= len(names) {
			sb.WriteByte(c)
			continue
		}

		name := names[k]
		k++
		switch {
		case c == colonDelim:
			sb.WriteByte(colonDelim)
			sb.WriteString(name)
		case name == "*":
			sb.WriteByte(starDelim)
		default:
			sb.WriteByte(colonDelim)
			sb.WriteString(name)
			sb.WriteByte(starDelim)
		}
	}
	return sb.String()
}
