package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		query string
		want  Coarse
	}{
		{"latest stock price for NVDA", Web},
		{"summarize this document for me", Doc},
		{"Explain quantum computing", Hybrid},
		{"", Web},
		{"what's the weather in Oslo", Web},
		{"what does chapter two of the pdf say", Doc},
		{"what does chapter two say", Hybrid},
		{"key facts from the pdf", Doc},
		{"how is combing wool done", Hybrid}, // "bing" inside a word is not a marker
		{"metadata formats explained", Hybrid},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIntent(tt.query))
		})
	}
}

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		text string
		want DocIntent
	}{
		{"Summarize the report", Summarize},
		{"please summarise", Summarize},
		{"tl;dr please", Summarize},
		{"give me the key points", Highlights},
		{"list the action items", Highlights},
		{"summarize the highlights", Summarize}, // summarize checked first
		{"what is the refund window", QA},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectIntent(tt.text))
		})
	}
}

func TestDetectSignals(t *testing.T) {
	tests := []struct {
		query string
		want  Signals
	}{
		{"What does the document say about refunds?", Signals{DocLikely: true}},
		{"latest news on the election", Signals{WebLikely: true}},
		{"summarize the latest news in this document", Signals{DocLikely: true, WebLikely: true}},
		{"Explain quantum computing", Signals{}},
		{"give me the takeaways", Signals{DocLikely: true}},
		{"is it open on sunday", Signals{WebLikely: true}},
		{"   ", Signals{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.query))
		})
	}
}

func TestNeedsSearch_WordBoundaries(t *testing.T) {
	assert.False(t, NeedsSearch("deliver the package"))
	assert.True(t, NeedsSearch("is the stream live"))
	assert.True(t, NeedsSearch("final score of the match"))
}

func TestClassify(t *testing.T) {
	c := Classify("summarize this document")
	assert.Equal(t, Doc, c.Coarse)
	assert.Equal(t, Summarize, c.Fine)
	assert.True(t, c.Signals.DocLikely)
	assert.False(t, c.Signals.WebLikely)
}
