package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"stop words only", "what is the", []string{}},
		{"punctuation stripped", "Hello, World! Go-lang rocks.", []string{"hello", "world", "go", "lang", "rocks"}},
		{"order preserved", "zebra apple mango", []string{"zebra", "apple", "mango"}},
		{"single chars dropped", "a b c dd", []string{"dd"}},
		{"diacritics folded", "What's the café's opening time?", []string{"cafe", "opening", "time"}},
		{"digits kept", "NVDA price 2024", []string{"nvda", "price", "2024"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChunkText_PacksParagraphs(t *testing.T) {
	text := "first para\n\nsecond para\n\n\n\nthird para"
	chunks := ChunkText(text, 100)
	require.Len(t, chunks, 1)
	assert.Equal(t, "first para\n\nsecond para\n\nthird para", chunks[0])
}

func TestChunkText_RespectsTarget(t *testing.T) {
	p := strings.Repeat("x", 40)
	text := strings.Join([]string{p, p, p, p}, "\n\n")

	chunks := ChunkText(text, 90)
	require.Len(t, chunks, 2)
	for _, c := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(c), 90)
	}
	assert.Equal(t, p+"\n\n"+p, chunks[0])
}

func TestChunkText_LongParagraphSplit(t *testing.T) {
	text := strings.Repeat("abcdefghij", 25) // 250 chars, no blank lines

	chunks := ChunkText(text, 100)
	require.Len(t, chunks, 3) // ceil(250/100)
	for _, c := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(c), 100)
	}
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestChunkText_MultibyteSafe(t *testing.T) {
	text := strings.Repeat("é", 25)
	chunks := ChunkText(text, 10)
	require.Len(t, chunks, 3)
	for _, c := range chunks {
		assert.True(t, utf8.ValidString(c))
	}
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestChunkText_Deterministic(t *testing.T) {
	text := "alpha beta\n\ngamma delta\n\n" + strings.Repeat("z", 300)
	assert.Equal(t, ChunkText(text, 64), ChunkText(text, 64))
}

func TestChunkText_EmptyAndDefaults(t *testing.T) {
	assert.Empty(t, ChunkText("", 100))
	assert.Empty(t, ChunkText("\n\n  \n\n", 100))

	short := "tiny"
	assert.Equal(t, []string{short}, ChunkText(short, 0))
}

func TestChunkText_WindowsLineEndings(t *testing.T) {
	chunks := ChunkText("one\r\n\r\ntwo", 5)
	assert.Equal(t, []string{"one", "two"}, chunks)
}

func TestSelectRelevantChunks(t *testing.T) {
	paras := []string{
		"Cats are small furry animals that purr.",
		"The refund policy allows returns within thirty days of purchase.",
		"Shipping takes five business days.",
	}
	// the filler paragraph is large enough to land in chunks of its own
	text := strings.Join(paras, "\n\n") + "\n\n" + strings.Repeat("filler ", 300)

	got := SelectRelevantChunks("what is the refund policy for returns", text, 1)
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "refund policy")
}

func TestSelectRelevantChunks_Bounds(t *testing.T) {
	text := strings.Repeat("alpha beta gamma. ", 400)

	assert.Nil(t, SelectRelevantChunks("alpha", text, 0))
	assert.Nil(t, SelectRelevantChunks("the a of", text, 3))

	got := SelectRelevantChunks("alpha", text, 2)
	assert.LessOrEqual(t, len(got), 2)
}

func TestSelectRelevantChunksInOrder(t *testing.T) {
	filler := strings.Repeat("filler ", 300)
	text := "Early note about the budget.\n\n" + filler + "\n\nLater note about the budget and the office."

	best := SelectRelevantChunks("budget office", text, 2)
	require.Len(t, best, 2)
	assert.Contains(t, best[0], "Later note")

	ordered := SelectRelevantChunksInOrder("budget office", text, 2)
	require.Len(t, ordered, 2)
	assert.Contains(t, ordered[0], "Early note")
	assert.Contains(t, ordered[1], "Later note")

	assert.Nil(t, SelectRelevantChunksInOrder("the of", text, 2))
}

func TestScoreChunks_TiesKeepDocumentOrder(t *testing.T) {
	chunks := []string{"apple one", "banana", "apple two", "apple banana"}
	scored := ScoreChunks("apple banana", chunks)

	require.Len(t, scored, 4)
	assert.Equal(t, 3, scored[0].Index)
	assert.Equal(t, 2, scored[0].Score)
	// three chunks with score 1, original order 0, 1, 2
	assert.Equal(t, []int{0, 1, 2}, []int{scored[1].Index, scored[2].Index, scored[3].Index})
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("One. Two! Three? Version 1.2 is out.  Last")
	assert.Equal(t, []string{"One.", "Two!", "Three?", "Version 1.2 is out.", "Last"}, got)
	assert.Empty(t, SplitSentences("   "))
}

func TestExtractiveSummary_PicksRelevantInOrder(t *testing.T) {
	text := "The weather is nice. Revenue grew twenty percent. " +
		"Cats sleep a lot. Revenue in Europe doubled. Dogs bark."

	got := ExtractiveSummary(text, "revenue growth europe", 2)
	assert.Equal(t, "Revenue grew twenty percent. Revenue in Europe doubled.", got)
}

func TestExtractiveSummary_NoOverlapFallsBackToLeading(t *testing.T) {
	text := "First sentence here. Second sentence here. Third sentence here."

	got := ExtractiveSummary(text, "quantum chromodynamics", 2)
	assert.Equal(t, "First sentence here. Second sentence here.", got)
}

func TestExtractiveSummary_NeverEmptyForNonEmptyInput(t *testing.T) {
	inputs := []string{
		"x",
		"no terminators at all",
		"Short. Text.",
		"???",
	}
	for _, in := range inputs {
		assert.NotEmpty(t, ExtractiveSummary(in, "", 3), in)
		assert.NotEmpty(t, ExtractiveSummary(in, "unrelated words", 0), in)
	}
	assert.Empty(t, ExtractiveSummary("", "anything", 3))
}
