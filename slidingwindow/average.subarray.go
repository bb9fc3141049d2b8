package slidingwindow

import "math"

/**
子数组最大平均数 I (maximum-average-subarray-i)

给定 n 个整数，找出平均数最大且长度为 k 的连续子数组，并输出该最大平均数。

输入: [1,12,-5,-6,50,3], k = 4
输出: 12.75
解释: 最大平均数 (12-5-6+50)/4 = 51/4 = 12.75

*/

// FindMaxAverage returns the largest mean of any k consecutive elements of
// nums, or negative infinity when nums is shorter than k.
func FindMaxAverage(nums []int, k int) float64 {

	if k <= 0 || k > len(nums) {
		return math.Inf(-1)
	}

	var (
		sum     = &Sum[int]{}
		maxSum  = math.MinInt
		scanner = Scanner[int]{Policy: FixedWidth, Width: k}
	)

	err := scanner.Scan(nums, sum, func(_, _ int) bool {
		maxSum = max(maxSum, sum.Total)
		return true
	})
	if err != nil {
		return math.Inf(-1)
	}
	return float64(maxSum) / float64(k)
}
