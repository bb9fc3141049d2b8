package slidingwindow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindMaxAverage(t *testing.T) {
	type args struct {
		nums []int
		k    int
	}
	tests := []struct {
		name string
		args args
		want float64
	}{
		{name: "最大平均数 (12-5-6+50)/4 = 51/4 = 12.75", args: args{nums: []int{1, 12, -5, -6, 50, 3}, k: 4}, want: 12.75},
		{name: "single element", args: args{nums: []int{5}, k: 1}, want: 5},
		{name: "all negative", args: args{nums: []int{-1, -2, -3}, k: 2}, want: -1.5},
		{name: "k longer than nums", args: args{nums: []int{1, 2}, k: 3}, want: math.Inf(-1)},
		{name: "empty nums", args: args{nums: nil, k: 1}, want: math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindMaxAverage(tt.args.nums, tt.args.k))
		})
	}
}
