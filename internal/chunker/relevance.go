package chunker

import "sort"

// ScoredChunk is a chunk with its lexical overlap score against a query
type ScoredChunk struct {
	Index int // position in document order
	Text  string
	Score int
}

// ScoreChunks scores every chunk by the number of distinct query tokens it
// contains and returns them sorted by score, descending. Ties keep document
// order.
func ScoreChunks(query string, chunks []string) []ScoredChunk {
	q := tokenSet(query)

	scored := make([]ScoredChunk, len(chunks))
	for i, c := range chunks {
		scored[i] = ScoredChunk{
			Index: i,
			Text:  c,
			Score: overlap(q, tokenSet(c)),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// SelectRelevantChunks returns up to n chunks of text with the highest
// token overlap with query, best first. It returns nil when the query has
// no usable tokens or n < 1.
func SelectRelevantChunks(query, text string, n int) []string {
	return texts(topChunks(query, text, n))
}

// SelectRelevantChunksInOrder selects the same chunks as
// SelectRelevantChunks but returns them in document order.
func SelectRelevantChunksInOrder(query, text string, n int) []string {
	top := topChunks(query, text, n)
	sort.Slice(top, func(i, j int) bool { return top[i].Index < top[j].Index })
	return texts(top)
}

func topChunks(query, text string, n int) []ScoredChunk {
	if n < 1 || len(Tokenize(query)) == 0 {
		return nil
	}

	scored := ScoreChunks(query, ChunkText(text, SelectionChunkSize))
	if len(scored) > n {
		scored = scored[:n]
	}
	return scored
}

func texts(chunks []ScoredChunk) []string {
	if chunks == nil {
		return nil
	}
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = c.Text
	}
	return out
}
