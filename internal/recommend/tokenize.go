package recommend

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTokenRunes is the shortest run of word runes kept as a term.
const minTokenRunes = 2

// Tokenize lower-cases doc and returns its terms in order of appearance.
func Tokenize(doc string) []string {
	doc = strings.ToLower(doc)

	var tokens []string
	start := -1
	for i, r := range doc {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = appendToken(tokens, doc[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = appendToken(tokens, doc[start:])
	}
	return tokens
}

func appendToken(tokens []string, tok string) []string {
	if utf8.RuneCountInString(tok) < minTokenRunes {
		return tokens
	}
	return append(tokens, tok)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
