package searcher

import (
	"fmt"
	"testing"
	"time"

	"github.com/dshills/askroute/pkg/types"
)

func BenchmarkCacheKey(b *testing.B) {
	queries := []string{
		"go",
		"best pizza near me",
		"what changed in the latest release of the go toolchain and how does it affect module builds",
	}

	for _, q := range queries {
		b.Run(fmt.Sprintf("len=%d", len(q)), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = cacheKey("unified", q, 5)
			}
		})
	}
}

func BenchmarkResultCache(b *testing.B) {
	cache := newResultCache(1000, time.Minute)
	hits := []types.Hit{
		types.NewHit("Title one", "first snippet", "https://a.example", "brave"),
		types.NewHit("Title two", "second snippet", "https://b.example", "bing"),
	}

	b.Run("put", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			cache.put(cacheKey("unified", fmt.Sprintf("q-%d", i%500), 5), hits)
		}
	})

	for i := 0; i < 500; i++ {
		cache.put(cacheKey("unified", fmt.Sprintf("q-%d", i), 5), hits)
	}

	b.Run("get-hit", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = cache.get(cacheKey("unified", fmt.Sprintf("q-%d", i%500), 5))
		}
	})

	b.Run("get-miss", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = cache.get(cacheKey("unified", fmt.Sprintf("missing-%d", i), 5))
		}
	})
}

func BenchmarkRescoreSnippets(b *testing.B) {
	hits := make([]types.Hit, 0, 20)
	for i, p := range []string{"brave", "bing", "serpapi", "googlePSE", "duckduckgo"} {
		for j := 0; j < 4; j++ {
			hits = append(hits, types.NewHit(
				fmt.Sprintf("Result %d-%d", i, j),
				"Snippet text about restaurants, opening hours and reviews",
				fmt.Sprintf("https://example.com/%d/%d", i, j), p))
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = RescoreSnippets(hits, "restaurant reviews", DefaultRescoreTopN)
	}
}
