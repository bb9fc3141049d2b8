package slidingwindow

import "github.com/kiereneinar/windowscan/multiset"

/**
给定一个字符串 s 和一个字符串 p，找到 s 中所有是 p 的字母异位词的子串，返回这些子串的
起始索引。(find-all-anagrams-in-a-string)

输入:
s: "cbaebabacd" p: "abc"

输出:
[0, 6]
解释:
起始索引等于 0 的子串是 "cba", 它是 "abc" 的字母异位词。
起始索引等于 6 的子串是 "bac", 它是 "abc" 的字母异位词。

**/

func FindAnagramsInAString(s, p string) []int {

	index := make([]int, 0)
	if len(p) == 0 || len(p) > len(s) {
		return index
	}

	window := multiset.NewTally(multiset.FromString(p))
	scanner := Scanner[byte]{Policy: FixedWidth, Width: len(p)}

	err := scanner.Scan([]byte(s), window, func(left, _ int) bool {
		if window.Matches() {
			index = append(index, left)
		}
		return true
	})
	if err != nil {
		return make([]int, 0)
	}
	return index
}
