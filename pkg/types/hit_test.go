package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Bold title", CleanText("  **Bold**\n\ttitle "))
	assert.Equal(t, "Heading code", CleanText("## Heading `code`"))
	assert.Equal(t, "", CleanText("   "))
}

func TestHitValidate(t *testing.T) {
	tests := []struct {
		name string
		hit  Hit
		want error
	}{
		{"valid", Hit{Title: "t", Provider: "brave"}, nil},
		{"url only", Hit{URL: "https://go.dev", Provider: "bing"}, nil},
		{"missing provider", Hit{Title: "t"}, ErrMissingProvider},
		{"empty", Hit{Provider: "brave"}, ErrEmptyHit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.hit.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNormalizeHits(t *testing.T) {
	in := []Hit{
		{Title: " **Go** ", Snippet: "The   Go language", URL: " https://go.dev "},
		{Title: "  ", Snippet: "", URL: ""},
		{Snippet: "snippet only", Provider: "someone-else"},
	}

	got := NormalizeHits(in, "brave")
	require.Len(t, got, 2)
	assert.Equal(t, Hit{Title: "Go", Snippet: "The Go language", URL: "https://go.dev", Provider: "brave"}, got[0])
	assert.Equal(t, "brave", got[1].Provider)

	t.Run("unattributed hits are dropped", func(t *testing.T) {
		got := NormalizeHits(in, "")
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("nil input", func(t *testing.T) {
		assert.NotNil(t, NormalizeHits(nil, "bing"))
	})
}
