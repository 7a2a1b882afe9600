package phonetic

import "strings"

const metaChars = "-]~!@#%&*()_=+[{}'\";<>/?|.,"

// SplitMeta separates the leading and trailing meta characters of text from
// the word body. Dictionary lookups only ever see the body.
func SplitMeta(text string) (pre, body, post string) {
	start := 0
	for start < len(text) && strings.IndexByte(metaChars, text[start]) >= 0 {
		start++
	}
	end := len(text)
	for end > start && strings.IndexByte(metaChars, text[end-1]) >= 0 {
		end--
	}
	return text[:start], text[start:end], text[end:]
}
