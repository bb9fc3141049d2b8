package slidingwindow

import "github.com/kiereneinar/windowscan/multiset"

/**
无重复字符的最长子串-leetcode

给定一个字符串，请你找出其中不含有重复字符的 最长子串 的长度。

示例 1:

输入: "abcabcbb" 输出: 3 解释: 因为无重复字符的最长子串是 "abc"，所以其长度为 3。 示例 2:

输入: "bbbbb" 输出: 1 解释: 因为无重复字符的最长子串是 "b"，所以其长度为 1。 示例 3:

输入: "pwwkew" 输出: 3 解释: 因为无重复字符的最长子串是 "wke"，所以其长度为 3。 请注意，你的答案必须是 子串 的长度，"pwke" 是一个子序列，不是子串。

*/

// LongestSubstring returns the leftmost longest substring of s without a
// repeated byte.
func LongestSubstring(s string) string {
	left, right := longestDistinct(s)
	return s[left:right]
}

func LengthLongestSubstring(s string) int {
	left, right := longestDistinct(s)
	return right - left
}

func longestDistinct(s string) (int, int) {

	var (
		window      = multiset.New[byte]()
		left, right = 0, 0
	)

	// a window is valid while no byte repeats
	scanner := Scanner[byte]{
		Policy: ShrinkWhileInvalid,
		Valid:  func() bool { return window.Distinct() == window.Len() },
	}
	err := scanner.Scan([]byte(s), window, func(l, r int) bool {
		if r-l > right-left {
			left, right = l, r
		}
		return true
	})
	if err != nil {
		return 0, 0
	}
	return left, right
}
