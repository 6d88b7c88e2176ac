// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathstore/blob/master/LICENSE.txt.

// Package treeview draws any labelled tree as an indented, multi-line string:
//
//	/
//	└── user
//	    ├── /
//	    │   ├── followers
//	    │   └── : (name)
//	    └── s
package treeview

import (
	"github.com/xlab/treeprint"
)

// Draw renders the tree rooted at root. The label function returns the text of a node
// and the children function its ordered children.
func Draw[N any](root N, label func(N) string, children func(N) []N) string {
	tree := treeprint.NewWithRoot(label(root))
	addBranches(tree, root, label, children)
	return tree.String()
}

func addBranches[N any](branch treeprint.Tree, n N, label func(N) string, children func(N) []N) {
	for _, child := range children(n) {
		addBranches(branch.AddBranch(label(child)), child, label, children)
	}
}
