package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowerASCII(t *testing.T) {
	cases := []struct {
		name string
		b    byte
		want byte
	}{
		{"uppercase A", 'A', 'a'},
		{"uppercase Z", 'Z', 'z'},
		{"uppercase M", 'M', 'm'},
		{"lowercase a", 'a', 'a'},
		{"digit", '5', '5'},
		{"slash", '/', '/'},
		{"colon", ':', ':'},
		{"star", '*', '*'},
		{"@ before A", '@', '@'},
		{"[ after Z", '[', '['},
		{"high byte", 0xC4, 0xC4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LowerASCII(tc.b))
		})
	}
}

func TestToLowerASCII(t *testing.T) {
	cases := []struct {
		name string
		s    string
		want string
	}{
		{"empty", "", ""},
		{"already lowercase", "/users/jkeylu", "/users/jkeylu"},
		{"mixed case", "/Users/:Name", "/users/:name"},
		{"uppercase after lowercase run", "/users/jKeyLu", "/users/jkeylu"},
		{"digits and separators", "/A1/B2/*", "/a1/b2/*"},
		{"non ascii left untouched", "/Éa/ÄB", "/Éa/Äb"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToLowerASCII(tc.s)
			assert.Equal(t, tc.want, got)
			assert.Len(t, got, len(tc.s))
		})
	}
}

func TestToLowerASCIINoAlloc(t *testing.T) {
	s := "/users/jkeylu/hello/keys/1"
	allocs := testing.AllocsPerRun(100, func() {
		_ = ToLowerASCII(s)
	})
	assert.Equal(t, float64(0), allocs)
}
