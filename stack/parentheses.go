package stack

/**
有效的括号 (valid-parentheses)

给定一个只包括 '('，')'，'{'，'}'，'['，']' 的字符串，判断字符串是否有效。
左括号必须用相同类型的右括号闭合，左括号必须以正确的顺序闭合。

输入: "()[]{}" 输出: true
输入: "(]" 输出: false

*/

var closing = map[byte]byte{
	')': '(',
	']': '[',
	'}': '{',
}

func IsValid(s string) bool {

	var opened Stack[byte]
	for i := 0; i < len(s); i++ {
		c := s[i]
		open, ok := closing[c]
		if !ok {
			opened.Push(c)
			continue
		}
		if top, ok := opened.Pop(); !ok || top != open {
			return false
		}
	}
	return opened.Empty()
}
