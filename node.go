// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathstore/blob/master/LICENSE.txt.

package pathstore

import (
	"strings"
)

type nodeKind uint8

const (
	staticKind nodeKind = iota
	paramKind
	wildcardKind
)

func (k nodeKind) String() string {
	switch k {
	case staticKind:
		return "static"
	case paramKind:
		return "param"
	case wildcardKind:
		return "wildcard"
	default:
		return "unknown"
	}
}

const (
	slashDelim byte = '/'
	colonDelim byte = ':'
	starDelim  byte = '*'
)

type node[T any] struct {
	// prefix represent a segment of a pattern which share a common prefix with it parent.
	// For param and wildcard node, this is always the single marker character.
	prefix string

	// First char of each static outgoing edges from this node sorted in ascending order.
	childKeys []byte

	// Static child nodes representing outgoing edges from this node sorted in ascending order.
	children []*node[T]

	paramChild    *node[T]
	wildcardChild *node[T]

	// The payload attached by Add. Nil if the node does not terminate a pattern.
	box *Box[T]

	kind          nodeKind
	label         byte
	endsWithSlash bool
}

func newNode[T any](kind nodeKind, prefix string) *node[T] {
	n := &node[T]{kind: kind}
	n.setPrefix(prefix)
	return n
}

func (n *node[T]) setPrefix(prefix string) {
	n.prefix = prefix
	n.label = prefix[0]
	n.endsWithSlash = prefix[len(prefix)-1] == slashDelim
}

// reset turns n into an empty node of the given kind and prefix.
func (n *node[T]) reset(kind nodeKind, prefix string) {
	n.kind = kind
	n.setPrefix(prefix)
	n.childKeys = nil
	n.children = nil
	n.paramChild = nil
	n.wildcardChild = nil
	n.box = nil
}

// split moves everything after the l first bytes of the prefix into a new static child,
// which takes over all edges and the box of n. The returned child is owned by n only.
func (n *node[T]) split(l int) *node[T] {
	child := &node[T]{
		kind:          n.kind,
		childKeys:     n.childKeys,
		children:      n.children,
		paramChild:    n.paramChild,
		wildcardChild: n.wildcardChild,
		box:           n.box,
	}
	child.setPrefix(n.prefix[l:])

	n.reset(n.kind, n.prefix[:l])
	n.addChild(child)
	return child
}

func (n *node[T]) addChild(child *node[T]) {
	switch child.kind {
	case paramKind:
		n.paramChild = child
	case wildcardKind:
		n.wildcardChild = child
	default:
		n.addEdge(child)
	}
}

// addEdge inserts child while keeping edges sorted by label. An edge with the same
// label is replaced.
func (n *node[T]) addEdge(child *node[T]) {
	id := binarySearch(n.childKeys, child.label)
	if id >= 0 {
		n.children[id] = child
		return
	}

	pos := -(id + 1)
	n.childKeys = append(n.childKeys, 0)
	copy(n.childKeys[pos+1:], n.childKeys[pos:])
	n.childKeys[pos] = child.label

	n.children = append(n.children, nil)
	copy(n.children[pos+1:], n.children[pos:])
	n.children[pos] = child
}

func (n *node[T]) isLeaf() bool {
	return n.box != nil
}

// getEdge returns the static child starting with s, or nil.
func (n *node[T]) getEdge(s byte) *node[T] {
	if len(n.children) <= 4 {
		id := iterativeSearch(n.childKeys, s)
		if id < 0 {
			return nil
		}
		return n.children[id]
	}
	id := binarySearch(n.childKeys, s)
	if id < 0 {
		return nil
	}
	return n.children[id]
}

// childByLabel dispatches on the marker characters before looking up static edges.
func (n *node[T]) childByLabel(label byte) *node[T] {
	switch label {
	case colonDelim:
		return n.paramChild
	case starDelim:
		return n.wildcardChild
	default:
		return n.getEdge(label)
	}
}

// edges returns static children in label order, then the param and wildcard child.
func (n *node[T]) edges() []*node[T] {
	nds := make([]*node[T], 0, len(n.children)+2)
	nds = append(nds, n.children...)
	if n.paramChild != nil {
		nds = append(nds, n.paramChild)
	}
	if n.wildcardChild != nil {
		nds = append(nds, n.wildcardChild)
	}
	return nds
}

// iterativeSearch return the index of s in keys or -1, using a simple loop.
// Although binary search is a more efficient search algorithm,
// the small size of the child keys array (<= 4) means that the
// constant factor will dominate (cf Adaptive Radix Tree algorithm).
func iterativeSearch(keys []byte, s byte) int {
	for i := 0; i < len(keys); i++ {
		if keys[i] == s {
			return i
		}
	}
	return -1
}

// binarySearch return the index of s in keys or -(insertion point + 1).
func binarySearch(keys []byte, s byte) int {
	low, high := 0, len(keys)-1
	for low <= high {
		mid := int(uint(low+high) >> 1) // avoid overflow
		cmp := compare(keys[mid], s)
		if cmp < 0 {
			low = mid + 1
		} else if cmp > 0 {
			high = mid - 1
		} else {
			return mid
		}
	}
	return -(low + 1)
}

func compare(a, b byte) int {
	if a == b {
		return 0
	}
	if a < b {
		return -1
	}
	return +1
}

func (n *node[T]) String() string {
	return n.string(0)
}

func (n *node[T]) string(space int) string {
	sb := strings.Builder{}
	sb.WriteString(strings.Repeat(" ", space))
	sb.WriteString(n.kind.String())
	sb.WriteString(": ")
	sb.WriteString(n.prefix)
	if n.isLeaf() {
		sb.WriteString(" (leaf")
		if len(n.box.ParamNames) > 0 {
			sb.WriteString(" [")
			sb.WriteString(strings.Join(n.box.ParamNames, ", "))
			sb.WriteByte(']')
		}
		sb.WriteString(")")
	}

	sb.WriteByte('\n')
	for _, child := range n.edges() {
		sb.WriteString(child.string(space + 2))
	}
	return sb.String()
}
