package chunker

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultChunkSize is the target chunk length in characters
	DefaultChunkSize = 1200

	// SelectionChunkSize is the chunk length used when ranking chunks
	// against a query
	SelectionChunkSize = 1400

	paragraphSep = "\n\n"
)

var paragraphBreak = regexp.MustCompile(`\n{2,}`)

// ChunkText splits text into ordered chunks of at most target characters.
//
// Paragraphs (blank-line separated) are packed greedily, joined by a blank
// line, while the chunk stays within target. A paragraph longer than target
// is cut into consecutive target-sized pieces, so concatenating those
// pieces reproduces the paragraph exactly. Whitespace-only paragraphs are
// dropped. Lengths are counted in runes.
func ChunkText(text string, target int) []string {
	if target <= 0 {
		target = DefaultChunkSize
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	paras := paragraphBreak.Split(text, -1)

	chunks := make([]string, 0, len(paras))
	var buf string
	bufLen := 0

	flush := func() {
		if buf != "" {
			chunks = append(chunks, buf)
		}
		buf = ""
		bufLen = 0
	}

	for _, p := range paras {
		if strings.TrimSpace(p) == "" {
			continue
		}
		pLen := utf8.RuneCountInString(p)

		if buf != "" && bufLen+len(paragraphSep)+pLen <= target {
			buf += paragraphSep + p
			bufLen += len(paragraphSep) + pLen
			continue
		}

		flush()
		if pLen <= target {
			buf = p
			bufLen = pLen
			continue
		}
		chunks = append(chunks, splitRunes(p, target)...)
	}
	flush()

	return chunks
}

// splitRunes cuts s into consecutive pieces of size runes; the last piece
// may be shorter.
func splitRunes(s string, size int) []string {
	rs := []rune(s)
	pieces := make([]string, 0, len(rs)/size+1)
	for i := 0; i < len(rs); i += size {
		end := i + size
		if end > len(rs) {
			end = len(rs)
		}
		pieces = append(pieces, string(rs[i:end]))
	}
	return pieces
}
