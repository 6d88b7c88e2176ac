// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathstore/blob/master/LICENSE.txt.

package pathstore

// NodeView is a read-only view of a tree node, meant for diagnostic tools.
type NodeView[T any] struct {
	n *node[T]
}

// Prefix returns the part of the tree path held by the node. Param nodes have the ":" prefix
// and wildcard nodes the "*" prefix.
func (v NodeView[T]) Prefix() string {
	return v.n.prefix
}

// Box returns the box attached to the node, or nil if the node does not terminate a pattern.
func (v NodeView[T]) Box() *Box[T] {
	return v.n.box
}

// IsParam reports whether the node matches a single path segment.
func (v NodeView[T]) IsParam() bool {
	return v.n.kind == paramKind
}

// IsWildcard reports whether the node matches the remainder of a pathname.
func (v NodeView[T]) IsWildcard() bool {
	return v.n.kind == wildcardKind
}

// Children returns the static children in label order, followed by the param child and
// the wildcard child if any.
func (v NodeView[T]) Children() []NodeView[T] {
	edges := v.n.edges()
	views := make([]NodeView[T], len(edges))
	for i, edge := range edges {
		views[i] = NodeView[T]{n: edge}
	}
	return views
}
