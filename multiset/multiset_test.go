package multiset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiset_AddRemove(t *testing.T) {
	m := Of("a", "b", "a")
	require.Equal(t, 3, m.Len())
	require.Equal(t, 2, m.Distinct())
	assert.Equal(t, 2, m.Count("a"))

	m.Remove("b")
	assert.False(t, m.Contains("b"), "key must be dropped at zero")
	m.Remove("b")
	assert.Equal(t, 2, m.Len())

	m.Reset()
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, m.Distinct())
}

func TestMultiset_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "same letters", a: "abc", b: "cba", want: true},
		{name: "different counts", a: "aab", b: "abb", want: false},
		{name: "different sizes", a: "ab", b: "abb", want: false},
		{name: "both empty", a: "", b: "", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromString(tt.a).Equal(FromString(tt.b)))
			assert.Equal(t, tt.want, FromString(tt.b).Equal(FromString(tt.a)))
		})
	}
}

func TestMultiset_EqualAfterRemoval(t *testing.T) {
	m := FromString("abcx")
	m.Remove('x')
	assert.True(t, m.Equal(FromString("cab")))
}

func TestMultiset_Covers(t *testing.T) {
	assert.True(t, FromString("BANC").Covers(FromString("ABC")))
	assert.True(t, FromString("AABC").Covers(FromString("AB")))
	assert.False(t, FromString("ABC").Covers(FromString("AAB")))
	assert.True(t, FromString("x").Covers(New[byte]()))
}

func TestMultiset_Clone(t *testing.T) {
	m := Of(1, 2, 2)
	c := m.Clone()
	c.Add(3)
	assert.False(t, m.Contains(3))
	assert.Equal(t, 2, c.Count(2))

	seen := map[int]int{}
	c.Each(func(x, n int) { seen[x] = n })
	assert.Equal(t, map[int]int{1: 1, 2: 2, 3: 1}, seen)
}
