package registry_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kiereneinar/windowscan/registry"
)

var _ = Describe("Registry", func() {
	var reg *registry.Registry

	BeforeEach(func() {
		reg = registry.Default()
	})

	solve := func(name, args string) any {
		node, err := registry.ParseArgs(args)
		Expect(err).NotTo(HaveOccurred())
		out, err := reg.Solve(name, node)
		Expect(err).NotTo(HaveOccurred())
		return out
	}

	It("should list problems in order", func() {
		names := reg.Names()
		Expect(names).To(HaveLen(len(registry.Problems())))
		Expect(names).To(BeEquivalentTo([]string{
			"find-all-anagrams",
			"longest-subarray-after-deletion",
			"longest-substring",
			"max-average-subarray",
			"max-subsequence",
			"max-vowels",
			"minimum-window-substring",
			"permutation-in-string",
			"substring-with-concatenation",
			"valid-parentheses",
		}))
	})

	It("should give every problem a title", func() {
		for _, name := range reg.Names() {
			p, err := reg.Lookup(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Title).NotTo(BeEmpty(), name)
		}
	})

	DescribeTable("solving from YAML arguments",
		func(name, args string, want any) {
			Expect(solve(name, args)).To(Equal(want))
		},
		Entry("anagrams", "find-all-anagrams", `{s: cbaebabacd, p: abc}`, []int{0, 6}),
		Entry("permutation", "permutation-in-string", `{s1: ab, s2: eidbaooo}`, true),
		Entry("minimum window", "minimum-window-substring", `{s: ADOBECODEBANC, t: ABC}`, "BANC"),
		Entry("concatenation", "substring-with-concatenation",
			`{s: barfoothefoobarman, words: [foo, bar]}`, []int{0, 9}),
		Entry("vowels", "max-vowels", `{s: abciiidef, k: 3}`, 3),
		Entry("average", "max-average-subarray", `{nums: [1, 12, -5, -6, 50, 3], k: 4}`, 12.75),
		Entry("deletion", "longest-subarray-after-deletion", `{nums: [1, 1, 1, 0, 1, 1, 1, 1, 1]}`, 8),
		Entry("distinct run", "longest-substring", `{s: pwwkew}`, "wke"),
		Entry("subsequence", "max-subsequence", `{nums: [-1, -2, 3, 4], k: 3}`, []int{-1, 3, 4}),
		Entry("parentheses", "valid-parentheses", `{s: "([)]"}`, false),
		Entry("json arguments", "minimum-window-substring", `{"s": "a", "t": "aa"}`, ""),
	)

	It("should run on zero arguments when none are given", func() {
		Expect(solve("valid-parentheses", "")).To(BeTrue())
		Expect(solve("max-average-subarray", "")).To(Equal(math.Inf(-1)))
	})

	It("should reject an unknown problem", func() {
		_, err := reg.Solve("two-sum", nil)
		Expect(err).To(MatchError(registry.ErrUnknownProblem))
	})

	It("should reject arguments of the wrong shape", func() {
		node, err := registry.ParseArgs(`{nums: abc, k: 2}`)
		Expect(err).NotTo(HaveOccurred())
		_, err = reg.Solve("max-subsequence", node)
		Expect(err).To(MatchError(registry.ErrBadArgs))
	})

	It("should reject malformed YAML", func() {
		_, err := registry.ParseArgs(`{s: [`)
		Expect(err).To(MatchError(registry.ErrBadArgs))
	})

	It("should refuse duplicate names", func() {
		p := registry.Bind("echo", "Echo", func(a struct{ S string }) any { return a.S })
		_, err := registry.New(p, p)
		Expect(err).To(MatchError(registry.ErrDuplicateProblem))
	})

	It("should decode into custom problems", func() {
		p := registry.Bind("echo", "Echo", func(a struct {
			S string `yaml:"s"`
		}) any {
			return a.S
		})
		r, err := registry.New(p)
		Expect(err).NotTo(HaveOccurred())
		node, err := registry.ParseArgs(`s: hello`)
		Expect(err).NotTo(HaveOccurred())
		out, err := r.Solve("echo", node)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("hello"))
	})
})
