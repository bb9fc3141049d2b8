package slidingwindow

import "github.com/kiereneinar/windowscan/multiset"

/**
给定两个字符串 s1 和 s2，判断 s2 是否包含 s1 的排列。(permutation-in-string)

输入: s1 = "ab" s2 = "eidbaooo"
输出: true
解释: s2 包含 s1 的排列之一 ("ba")。

*/

func CheckInclusion(s1, s2 string) bool {

	if len(s1) == 0 || len(s1) > len(s2) {
		return false
	}

	var (
		window  = multiset.NewTally(multiset.FromString(s1))
		scanner = Scanner[byte]{Policy: FixedWidth, Width: len(s1)}
		found   = false
	)

	err := scanner.Scan([]byte(s2), window, func(_, _ int) bool {
		found = window.Matches()
		return !found
	})
	return err == nil && found
}
