package slidingwindow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxVowels(t *testing.T) {
	type args struct {
		s string
		k int
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{name: "子字符串 \"iii\" 包含 3 个元音字母", args: args{s: "abciiidef", k: 3}, want: 3},
		{name: "every letter a vowel", args: args{s: "aeiou", k: 2}, want: 2},
		{name: "leetcode", args: args{s: "leetcode", k: 3}, want: 2},
		{name: "no vowels", args: args{s: "rhythms", k: 4}, want: 0},
		{name: "window is the whole string", args: args{s: "tryhard", k: 7}, want: 1},
		{name: "k longer than s", args: args{s: "ab", k: 3}, want: -1},
		{name: "zero k", args: args{s: "ab", k: 0}, want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxVowels(tt.args.s, tt.args.k))
		})
	}
}
