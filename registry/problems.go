package registry

import (
	"github.com/kiereneinar/windowscan/slidingwindow"
	"github.com/kiereneinar/windowscan/stack"
	"github.com/kiereneinar/windowscan/topk"
)

type textPattern struct {
	S string `yaml:"s"`
	P string `yaml:"p"`
}

type textPair struct {
	S1 string `yaml:"s1"`
	S2 string `yaml:"s2"`
}

type textTarget struct {
	S string `yaml:"s"`
	T string `yaml:"t"`
}

type textWords struct {
	S     string   `yaml:"s"`
	Words []string `yaml:"words"`
}

type textWidth struct {
	S string `yaml:"s"`
	K int    `yaml:"k"`
}

type text struct {
	S string `yaml:"s"`
}

type numsWidth struct {
	Nums []int `yaml:"nums"`
	K    int   `yaml:"k"`
}

type nums struct {
	Nums []int `yaml:"nums"`
}

// Problems returns every solver in the repository.
func Problems() []Problem {
	return []Problem{
		Bind("find-all-anagrams", "Find All Anagrams in a String", func(a textPattern) any {
			return slidingwindow.FindAnagramsInAString(a.S, a.P)
		}),
		Bind("permutation-in-string", "Permutation in String", func(a textPair) any {
			return slidingwindow.CheckInclusion(a.S1, a.S2)
		}),
		Bind("minimum-window-substring", "Minimum Window Substring", func(a textTarget) any {
			return slidingwindow.MinimumWindowSubstring(a.S, a.T)
		}),
		Bind("substring-with-concatenation", "Substring with Concatenation of All Words", func(a textWords) any {
			return slidingwindow.FindSubstring(a.S, a.Words)
		}),
		Bind("max-vowels", "Maximum Number of Vowels in a Substring of Given Length", func(a textWidth) any {
			return slidingwindow.MaxVowels(a.S, a.K)
		}),
		Bind("max-average-subarray", "Maximum Average Subarray I", func(a numsWidth) any {
			return slidingwindow.FindMaxAverage(a.Nums, a.K)
		}),
		Bind("longest-subarray-after-deletion", "Longest Subarray of 1's After Deleting One Element", func(a nums) any {
			return slidingwindow.LongestSubarray(a.Nums)
		}),
		Bind("longest-substring", "Longest Substring Without Repeating Characters", func(a text) any {
			return slidingwindow.LongestSubstring(a.S)
		}),
		Bind("max-subsequence", "Find Subsequence of Length K With the Largest Sum", func(a numsWidth) any {
			return topk.MaxSubsequence(a.Nums, a.K)
		}),
		Bind("valid-parentheses", "Valid Parentheses", func(a text) any {
			return stack.IsValid(a.S)
		}),
	}
}

// Default holds every problem from Problems.
func Default() *Registry {
	r, err := New(Problems()...)
	if err != nil {
		panic(err)
	}
	return r
}
