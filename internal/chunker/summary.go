package chunker

import (
	"sort"
	"strings"
	"unicode"
)

// DefaultSummarySentences is used when ExtractiveSummary is asked for a
// non-positive number of sentences
const DefaultSummarySentences = 6

// SplitSentences splits text after '.', '!' or '?' when followed by
// whitespace. Sentences are trimmed; empty ones are dropped.
func SplitSentences(text string) []string {
	rs := []rune(text)
	var sentences []string
	start := 0

	for i := 0; i < len(rs); i++ {
		switch rs[i] {
		case '.', '!', '?':
			if i+1 < len(rs) && unicode.IsSpace(rs[i+1]) {
				if s := strings.TrimSpace(string(rs[start : i+1])); s != "" {
					sentences = append(sentences, s)
				}
				start = i + 1
			}
		}
	}
	if s := strings.TrimSpace(string(rs[start:])); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// ExtractiveSummary picks up to maxSentences sentences of text that share
// the most tokens with query and returns them in their original order. When
// no sentence shares a token with the query, the leading sentences are
// returned instead, so non-blank input always yields a non-empty summary.
func ExtractiveSummary(text, query string, maxSentences int) string {
	if maxSentences <= 0 {
		maxSentences = DefaultSummarySentences
	}

	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return ""
	}

	q := tokenSet(query)
	type scored struct {
		idx   int
		score int
	}
	ranked := make([]scored, 0, len(sentences))
	for i, s := range sentences {
		if sc := overlap(q, tokenSet(s)); sc > 0 {
			ranked = append(ranked, scored{idx: i, score: sc})
		}
	}

	if len(ranked) == 0 {
		return strings.Join(leading(sentences, maxSentences), " ")
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	if len(ranked) > maxSentences {
		ranked = ranked[:maxSentences]
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].idx < ranked[j].idx
	})

	picked := make([]string, len(ranked))
	for i, r := range ranked {
		picked[i] = sentences[r.idx]
	}
	return strings.Join(picked, " ")
}

func leading(sentences []string, n int) []string {
	if len(sentences) > n {
		return sentences[:n]
	}
	return sentences
}
