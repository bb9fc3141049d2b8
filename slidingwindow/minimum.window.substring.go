package slidingwindow

import (
	"math"

	"github.com/kiereneinar/windowscan/multiset"
)

/**
给定一个字符串S和T, 请在S中找出含有T的最小子串

输入: S = "ADOBECODEBANC", T = "ABC"
输出: "BANC"

*/

// MinimumWindowSubstring returns the shortest substring of s that contains
// every byte of t with multiplicity. Among equally short windows the
// leftmost wins.
func MinimumWindowSubstring(s, t string) string {

	if len(s) == 0 || len(t) == 0 || len(t) > len(s) {
		return ""
	}

	var (
		window          = multiset.NewTally(multiset.FromString(t))
		minSubstringLen = math.MaxInt
		start           = 0
	)

	scanner := Scanner[byte]{Policy: ShrinkWhileValid, Valid: window.Covered}
	err := scanner.Scan([]byte(s), window, func(left, right int) bool {
		if minSubstringLen > right-left {
			minSubstringLen = right - left
			start = left
		}
		return true
	})
	if err != nil || minSubstringLen == math.MaxInt {
		return ""
	}
	return s[start : start+minSubstringLen]
}
