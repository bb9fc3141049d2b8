package slidingwindow

import (
	"slices"

	"github.com/kiereneinar/windowscan/multiset"
)

/**
串联所有单词的子串 (substring-with-concatenation-of-all-words)

给定一个字符串 s 和一些长度相同的单词 words。找出 s 中恰好可以由 words 中所有单词串联形成的
子串的起始位置。

输入: s = "barfoothefoobarman", words = ["foo","bar"]
输出: [0,9]

*/

// FindSubstring returns, in ascending order, every index of s where a
// concatenation of all words (each used exactly once, any order) begins.
//
// Word boundaries are not self-synchronizing, so the scan runs once per
// offset in [0, wordLen).
func FindSubstring(s string, words []string) []int {

	index := make([]int, 0)
	if len(s) == 0 || len(words) == 0 {
		return index
	}

	wordLen := len(words[0])
	if wordLen == 0 || wordLen*len(words) > len(s) {
		return index
	}
	for _, w := range words {
		if len(w) != wordLen {
			return index
		}
	}

	window := multiset.NewTally(multiset.Of(words...))
	scanner := Scanner[string]{
		Policy: ResetOnMiss,
		Admit:  window.Required,
		Valid:  func() bool { return !window.Exceeded() },
	}

	for offset := 0; offset < wordLen; offset++ {
		tokens := tokenize(s, offset, wordLen)
		window.Reset()

		err := scanner.Scan(tokens, window, func(left, right int) bool {
			if right-left == len(words) {
				index = append(index, offset+left*wordLen)
			}
			return true
		})
		if err != nil {
			return make([]int, 0)
		}
	}

	slices.Sort(index)
	return index
}

// tokenize cuts s into consecutive words of wordLen bytes starting at
// offset. A trailing partial word is dropped.
func tokenize(s string, offset, wordLen int) []string {
	tokens := make([]string, 0, (len(s)-offset)/wordLen)
	for i := offset; i+wordLen <= len(s); i += wordLen {
		tokens = append(tokens, s[i:i+wordLen])
	}
	return tokens
}
