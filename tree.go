// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathstore/blob/master/LICENSE.txt.

package pathstore

import (
	"log/slog"
	"strings"
)

// insert makes literal represented exactly once on a path from the root, splitting nodes
// on partial overlap, and returns the node where literal ends. A node created for the
// remainder of literal is of the given kind.
func (s *Store[T]) insert(kind nodeKind, literal string) *node[T] {
	cn := s.root
	search := literal

	for {
		sl := len(search)
		pl := len(cn.prefix)
		l := longestCommonPrefix(search, cn.prefix)

		if l < pl {
			// There is some overlap between search and the prefix,
			// e.g. search = /page, prefix = /post
			s.logger.Debug("split node", slog.String("prefix", cn.prefix), slog.Int("at", l))
			cn.split(l)

			if l == sl {
				// search is a prefix of the node prefix,
				// e.g. search = /user, prefix = /users
				return cn
			}

			child := newNode[T](kind, search[l:])
			cn.addChild(child)
			return child
		}

		if l < sl {
			// The whole prefix match, continue with the edge starting
			// with the next character.
			search = search[l:]
			if child := cn.childByLabel(search[0]); child != nil {
				cn = child
				continue
			}

			child := newNode[T](kind, search)
			cn.addChild(child)
			return child
		}

		// l == pl == sl
		return cn
	}
}

// attach computes the box of n with the boxing function.
func (s *Store[T]) attach(n *node[T], value T, paramNames []string) error {
	box, err := s.boxing(n.box, value, paramNames)
	if err != nil {
		return err
	}
	n.box = box
	return nil
}

// lookup walks the tree without backtracking. It remembers the deepest ancestor whose prefix
// ends with a slash, to resume from its param child when a static edge leads nowhere, and the
// most recent wildcard child seen, as a last resort. Comparisons are made on search while
// captured values are sliced from path, which must be of the same length.
func lookup[T any](root *node[T], search, path string) (*node[T], []string) {
	var (
		cn     = root
		values []string
		n, p   int

		nextNode   *node[T]
		nextSearch string
		nextN      int
		nextP      int

		anyNode *node[T]
		anyN    int
		anyP    int
	)

	storeAnyNode := func(cn *node[T], n, p int) {
		if cn.wildcardChild != nil {
			anyNode = cn.wildcardChild
			anyN = n
			anyP = p
		}
	}

	for {
		if len(search) == 0 || search == cn.prefix {
			if cn.isLeaf() {
				return cn, values[:n]
			}
			return nil, nil
		}

		var l, pl int
		if cn.kind == staticKind {
			pl = len(cn.prefix)
			l = longestCommonPrefix(search, cn.prefix)
		}

		var searchStatic bool
		switch {
		case l == pl:
			// Either a static node matching its whole prefix, or a param node
			// for which l == pl == 0.
			search = search[l:]
			p += l
			searchStatic = true
		case nextNode != nil:
			search = nextSearch
			cn = nextNode
			n = nextN
			p = nextP
			nextNode = nil
		case anyNode != nil:
			cn = anyNode
			values = append(values[:anyN], path[anyP:])
			n = anyN + 1
			search = ""
			continue
		default:
			return nil, nil
		}

		if searchStatic {
			if child := cn.getEdge(search[0]); child != nil {
				if cn.endsWithSlash {
					nextSearch = search
					nextNode = cn
					nextN = n
					nextP = p
					storeAnyNode(cn, n, p)
				}
				cn = child
				continue
			}
		}

		storeAnyNode(cn, n, p)

		if cn.paramChild != nil {
			l = strings.IndexByte(search, slashDelim)
			if l < 0 {
				l = len(search)
			}
			values = append(values[:n], path[p:p+l])
			n++

			cn = cn.paramChild
			search = search[l:]
			p += l
			continue
		}

		if anyNode != nil {
			cn = anyNode
			values = append(values[:anyN], path[anyP:])
			n = anyN + 1
			search = ""
			continue
		}

		return nil, nil
	}
}

// lookupBacktrack is a depth first search trying, at each node, the static edge, then the
// param child and finally the wildcard child. Captured values are written at the position of
// their parameter and overwritten when another branch is tried.
func lookupBacktrack[T any](cn *node[T], search, path string, p int, values []string) (*node[T], []string) {
	if len(search) == 0 || search == cn.prefix {
		if cn.isLeaf() {
			return cn, values
		}
		return nil, nil
	}

	pl := len(cn.prefix)
	l := longestCommonPrefix(search, cn.prefix)
	if l == pl {
		search = search[l:]
		p += l
	} else if cn.kind == staticKind {
		return nil, nil
	}

	if child := cn.getEdge(search[0]); child != nil {
		if n, vals := lookupBacktrack(child, search, path, p, values); n != nil {
			return n, vals
		}
	}

	if cn.kind != staticKind {
		return nil, nil
	}

	if cn.paramChild != nil {
		l = strings.IndexByte(search, slashDelim)
		if l < 0 {
			l = len(search)
		}
		if n, vals := lookupBacktrack(cn.paramChild, search[l:], path, p+l, append(values, path[p:p+l])); n != nil {
			return n, vals
		}
	}

	if cn.wildcardChild != nil {
		return lookupBacktrack(cn.wildcardChild, "", path, len(path), append(values, path[p:]))
	}

	return nil, nil
}

// longestCommonPrefix returns the length of the longest common prefix of a and b.
func longestCommonPrefix(a, b string) int {
	i := 0
	n := min(len(a), len(b))
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
