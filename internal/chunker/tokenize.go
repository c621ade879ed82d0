package chunker

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stopWords are dropped by Tokenize
var stopWords = buildStopWords(
	"a an and are as at be by for from has have in into is it its of on or s t that the their " +
		"to was were will with your you about this those these which who whom whose when where how " +
		"why what can could should would may might not no yes more most very just also than then",
)

func buildStopWords(list string) map[string]struct{} {
	words := strings.Fields(list)
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// IsStopWord reports whether w is on the fixed stop-word list
func IsStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}

// foldDiacritics maps "café" to "cafe". transform.Chain is stateful, so a
// fresh chain is built per call.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Tokenize lowercases text, replaces anything outside [a-z0-9] with a
// separator, and drops single-character tokens and stop words. Word order
// is preserved.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	folded := strings.ToLower(foldDiacritics(text))
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) <= 1 || IsStopWord(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// tokenSet returns the distinct tokens of text
func tokenSet(text string) map[string]struct{} {
	tokens := Tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// overlap counts how many members of query appear in set
func overlap(query, set map[string]struct{}) int {
	n := 0
	for t := range query {
		if _, ok := set[t]; ok {
			n++
		}
	}
	return n
}
