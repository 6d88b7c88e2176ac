package iterutil

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeftRight(t *testing.T) {
	seq := maps.All(map[string]int{"a": 1, "b": 2, "c": 3})

	assert.ElementsMatch(t, []string{"a", "b", "c"}, slices.Collect(Left(seq)))
	assert.ElementsMatch(t, []int{1, 2, 3}, slices.Collect(Right(seq)))
}

func TestLeftBreak(t *testing.T) {
	seq := slices.All([]string{"a", "b", "c"})

	var got []int
	for i := range Left(seq) {
		got = append(got, i)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, got)
}

func TestRightBreak(t *testing.T) {
	seq := slices.All([]string{"a", "b", "c"})

	var got []string
	for v := range Right(seq) {
		got = append(got, v)
		break
	}
	assert.Equal(t, []string{"a"}, got)
}

func TestLen2(t *testing.T) {
	assert.Equal(t, 0, Len2(slices.All([]int{})))
	assert.Equal(t, 3, Len2(slices.All([]int{4, 5, 6})))
}
