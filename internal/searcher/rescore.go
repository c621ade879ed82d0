package searcher

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dshills/askroute/internal/provider"
	"github.com/dshills/askroute/pkg/types"
)

// DefaultRescoreTopN is how many hits SmartSearch keeps after rescoring
const DefaultRescoreTopN = 4

// providerWeights encodes how much each provider's snippets are trusted.
// Unlisted providers weigh 1.0.
var providerWeights = map[string]float64{
	provider.NameBing:       1.2,
	provider.NameSerpAPI:    1.1,
	provider.NameGooglePSE:  1.0,
	provider.NameDuckDuckGo: 0.8,
}

// ScoreSnippet rates a hit for query: one point per query word longer than
// three characters found in the snippet, plus up to two points for snippet
// length, all scaled by the provider weight.
func ScoreSnippet(h types.Hit, query string) float64 {
	text := strings.ToLower(h.Snippet)

	keywords := 0
	for _, w := range strings.Fields(strings.ToLower(query)) {
		if utf8.RuneCountInString(w) > 3 && strings.Contains(text, w) {
			keywords++
		}
	}

	length := math.Min(float64(utf8.RuneCountInString(h.Snippet))/80, 2)

	weight, ok := providerWeights[h.Provider]
	if !ok {
		weight = 1.0
	}
	return (float64(keywords) + length) * weight
}

// RescoreSnippets orders hits by ScoreSnippet, highest first, and keeps the
// top n. Equal scores keep their input order.
func RescoreSnippets(hits []types.Hit, query string, n int) []types.Hit {
	if n <= 0 {
		n = DefaultRescoreTopN
	}

	scores := make([]float64, len(hits))
	idx := make([]int, len(hits))
	for i, h := range hits {
		scores[i] = ScoreSnippet(h, query)
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	if len(idx) > n {
		idx = idx[:n]
	}
	out := make([]types.Hit, len(idx))
	for i, j := range idx {
		out[i] = hits[j]
	}
	return out
}
