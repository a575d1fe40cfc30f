package catalog

import "strings"

// Words splits text on runs of whitespace, the tokenizer shared by every engine
func Words(text string) []string {
	return strings.Fields(text)
}

// CountWords returns the number of whitespace-separated words in text
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// KeyTerms returns up to limit words longer than minLen characters, in prompt order
func KeyTerms(prompt string, minLen, limit int) []string {
	var terms []string
	for _, w := range Words(prompt) {
		if len(terms) == limit {
			break
		}
		if len([]rune(w)) > minLen {
			terms = append(terms, w)
		}
	}
	return terms
}
