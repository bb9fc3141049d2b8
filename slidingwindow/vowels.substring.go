package slidingwindow

/**
定长子串中元音的最大数目 (maximum-number-of-vowels-in-a-substring-of-given-length)

输入: s = "abciiidef", k = 3
输出: 3
解释: 子字符串 "iii" 包含 3 个元音字母。

*/

// MaxVowels returns the largest number of vowels in any substring of s of
// length k, or -1 when s has no substring of that length.
func MaxVowels(s string, k int) int {

	if k <= 0 || k > len(s) {
		return -1
	}

	var (
		vowels    = &Count[byte]{Match: isVowel}
		maxVowels = 0
		scanner   = Scanner[byte]{Policy: FixedWidth, Width: k}
	)

	err := scanner.Scan([]byte(s), vowels, func(_, _ int) bool {
		maxVowels = max(maxVowels, vowels.N)
		return true
	})
	if err != nil {
		return -1
	}
	return maxVowels
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
