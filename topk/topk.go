// Package topk selects the k largest elements of a sequence without
// disturbing their order.
package topk

import (
	"cmp"
	"slices"
)

/**
找到和最大的长度为 K 的子序列 (find-subsequence-of-length-k-with-the-largest-sum)

输入: nums = [2,1,3,3], k = 2
输出: [3,3]

输入: nums = [-1,-2,3,4], k = 3
输出: [-1,3,4]

*/

// MaxSubsequence returns the length-k subsequence of nums with the largest
// sum, in the order the elements appear in nums. Equal values are taken
// earliest index first.
func MaxSubsequence(nums []int, k int) []int {

	if k <= 0 {
		return []int{}
	}
	if k >= len(nums) {
		return slices.Clone(nums)
	}

	index := make([]int, len(nums))
	for i := range index {
		index[i] = i
	}

	// largest first; the stable sort keeps earlier indices ahead on ties
	slices.SortStableFunc(index, func(a, b int) int {
		return cmp.Compare(nums[b], nums[a])
	})
	top := index[:k]
	slices.Sort(top)

	res := make([]int, k)
	for i, idx := range top {
		res[i] = nums[idx]
	}
	return res
}
