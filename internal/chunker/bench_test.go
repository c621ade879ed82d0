package chunker

import (
	"fmt"
	"strings"
	"testing"
)

func benchDocument(paragraphs int) string {
	var sb strings.Builder
	for i := 0; i < paragraphs; i++ {
		fmt.Fprintf(&sb, "Section %d covers deployment. The rollout uses canary stages. "+
			"Metrics are reviewed after each stage. Rollbacks take under five minutes.\n\n", i)
	}
	return sb.String()
}

func BenchmarkSelectRelevantChunks(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		doc := benchDocument(n)
		b.Run(fmt.Sprintf("paragraphs=%d", n), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = SelectRelevantChunks("how long do rollbacks take", doc, 5)
			}
		})
	}
}

func BenchmarkExtractiveSummary(b *testing.B) {
	doc := benchDocument(50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ExtractiveSummary(doc, "canary rollout", 8)
	}
}
