package slidingwindow

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFindAnagramsInAString(t *testing.T) {
	type args struct {
		s string
		p string
	}
	tests := []struct {
		name string
		args args
		want []int
	}{
		{
			name: "起始索引等于 0 的子串是 \"cba\", 起始索引等于 6 的子串是 \"bac\"",
			args: args{s: "cbaebabacd", p: "abc"},
			want: []int{0, 6},
		},
		{
			name: "overlapping matches",
			args: args{s: "abab", p: "ab"},
			want: []int{0, 1, 2},
		},
		{
			name: "repeated letters in pattern",
			args: args{s: "aabaa", p: "aab"},
			want: []int{0, 1, 2},
		},
		{
			name: "pattern longer than source",
			args: args{s: "ab", p: "abc"},
			want: []int{},
		},
		{
			name: "empty pattern",
			args: args{s: "abc", p: ""},
			want: []int{},
		},
		{
			name: "no match",
			args: args{s: "xyz", p: "a"},
			want: []int{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindAnagramsInAString(tt.args.s, tt.args.p)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FindAnagramsInAString() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
