// Package tokenizer splits document and query text into words and validates
// them. Words are delimited by the ASCII space byte only; comparison
// everywhere else in the engine is byte-exact, so no case folding or
// character-class splitting happens here.
package tokenizer

import "strings"

// Split partitions text on runs of ASCII spaces (0x20) and returns the
// non-empty words in their original order.
func Split(text string) []string {
	words := make([]string, 0)
	for _, w := range strings.Split(text, " ") {
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// IsValidWord reports whether w is free of control characters (bytes below
// 0x20). Document text and stop words are rejected at the entry point when
// this fails.
func IsValidWord(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 0x20 {
			return false
		}
	}
	return true
}

// IsValidMinusWord reports whether w is acceptable exclusion syntax: a bare
// "-" and any "--" prefix are malformed. Only query parsing uses this.
func IsValidMinusWord(w string) bool {
	return w != "-" && !strings.HasPrefix(w, "--")
}
