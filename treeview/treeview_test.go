package treeview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	name     string
	children []item
}

func TestDraw(t *testing.T) {
	root := item{name: "/", children: []item{
		{name: "user", children: []item{
			{name: "/", children: []item{
				{name: "followers"},
				{name: ": (name)"},
			}},
			{name: "s"},
		}},
	}}

	got := Draw(root, func(i item) string { return i.name }, func(i item) []item { return i.children })
	want := strings.Join([]string{
		"/",
		"└── user",
		"    ├── /",
		"    │   ├── followers",
		"    │   └── : (name)",
		"    └── s",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestDrawSingleNode(t *testing.T) {
	got := Draw("root", func(s string) string { return s }, func(string) []string { return nil })
	assert.Equal(t, "root\n", got)
}
