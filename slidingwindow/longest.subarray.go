package slidingwindow

/**
删掉一个元素以后全为 1 的最长子数组 (longest-subarray-of-1s-after-deleting-one-element)

给你一个二进制数组 nums ，你需要从中删掉一个元素。请你在删掉元素的结果数组中，返回最长的且只
包含 1 的非空子数组的长度。

输入: nums = [0,1,1,1,0,1,1,0,1]
输出: 5

输入: nums = [1,1,1]
输出: 2
解释: 你必须要删除一个元素。

*/

// LongestSubarray returns the longest run of ones that remains after
// deleting exactly one element. A window may hold at most one zero, which
// is the deleted element. When nums holds no zero at all one of the ones
// still has to go, so the answer is one shorter than the longest window.
func LongestSubarray(nums []int) int {

	var (
		zeros   = &Count[int]{Match: func(x int) bool { return x == 0 }}
		longest = 0
		sawZero = false
	)

	scanner := Scanner[int]{
		Policy: ShrinkWhileInvalid,
		Valid:  func() bool { return zeros.N <= 1 },
	}
	err := scanner.Scan(nums, zeros, func(left, right int) bool {
		if zeros.N > 0 {
			sawZero = true
		}
		longest = max(longest, right-left-zeros.N)
		return true
	})
	if err != nil {
		return 0
	}

	if !sawZero {
		return max(0, longest-1)
	}
	return longest
}
