package lipsum

import "strings"

// CountSentences counts the periods in text that sit outside parentheses,
// so the dots of a Markdown link target do not count as sentence ends.
// Parenthesis depth is not clamped: a stray ')' drives it negative and
// periods are then ignored until a matching '(' brings it back to zero.
func CountSentences(text string) int {
	var count, depth int
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '.':
			if depth == 0 {
				count++
			}
		}
	}
	return count
}

// CountWords counts whitespace-separated tokens. Markdown markup that stands
// alone, such as a list bullet or a heading's "#" run, counts as a word.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
