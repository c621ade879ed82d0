// Package chunker provides the lexical text retrieval used to answer
// questions about a loaded document.
//
// Everything here is pure and deterministic: the same input always gives
// the same output, and nothing is cached between calls.
//
// # Tokenizing
//
// Tokenize folds diacritics, lowercases, strips punctuation and removes a
// fixed stop-word list:
//
//	chunker.Tokenize("What's the café's opening time?")
//	// ["cafe", "opening", "time"]
//
// # Chunking
//
// ChunkText splits on blank lines and packs paragraphs up to a target size.
// Oversized paragraphs are cut at the target boundary:
//
//	chunks := chunker.ChunkText(doc, chunker.DefaultChunkSize)
//
// # Relevance
//
// Scores are plain overlap counts between the query's token set and the
// chunk's token set. There is no stemming and no term weighting:
//
//	top := chunker.SelectRelevantChunks("refund policy", doc, 5)
//
// # Extractive Summary
//
// ExtractiveSummary selects whole sentences from the source rather than
// generating text:
//
//	summary := chunker.ExtractiveSummary(doc, "refund policy", 6)
package chunker
