package qa

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dshills/askroute/internal/chunker"
	"github.com/dshills/askroute/internal/config"
	"github.com/dshills/askroute/internal/generator"
	"github.com/dshills/askroute/internal/intent"
	"github.com/dshills/askroute/internal/logging"
	"github.com/dshills/askroute/internal/memory"
	"github.com/dshills/askroute/internal/race"
	"github.com/dshills/askroute/pkg/types"
)

// User-facing fixed messages
const (
	PromptForInput = "Please enter a question."
	NoAnswer       = "I couldn't generate an answer."
)

// Labels separating document and web content in a fused answer
const (
	docLabel = "From your document:"
	webLabel = "From the web:"
)

// Racer finds a single web answer
type Racer interface {
	Race(ctx context.Context, query string) (race.Result, bool)
}

// Searcher returns raw hits from every provider
type Searcher interface {
	UnifiedSearch(ctx context.Context, query string, maxPerProvider int) []types.Hit
	ClearCache()
}

// StatsSource exposes provider health counters
type StatsSource interface {
	Snapshot() map[string]types.ProviderStat
	Reset()
}

// Engine composes answers from the loaded document, the web race and the
// generative fallback. It is safe for concurrent use.
type Engine struct {
	racer     Racer
	searcher  Searcher
	stats     StatsSource
	generator generator.Generator
	history   *memory.History
	logger    *slog.Logger
	signals   func(string) intent.Signals

	relevantChunks int
	excerptChars   int

	mu  sync.RWMutex
	doc types.DocContext
}

// Option configures an Engine
type Option func(*Engine)

func WithRacer(r Racer) Option                   { return func(e *Engine) { e.racer = r } }
func WithSearcher(s Searcher) Option             { return func(e *Engine) { e.searcher = s } }
func WithStats(s StatsSource) Option             { return func(e *Engine) { e.stats = s } }
func WithGenerator(g generator.Generator) Option { return func(e *Engine) { e.generator = g } }
func WithLogger(l *slog.Logger) Option           { return func(e *Engine) { e.logger = logging.OrDefault(l) } }
func WithHistory(h *memory.History) Option       { return func(e *Engine) { e.history = h } }
func WithSignals(f func(string) intent.Signals) Option {
	return func(e *Engine) {
		if f != nil {
			e.signals = f
		}
	}
}

// WithAnswerConfig applies the answer section of the configuration
func WithAnswerConfig(cfg config.Answer) Option {
	return func(e *Engine) {
		if cfg.HistoryTurns > 0 {
			e.history = memory.New(cfg.HistoryTurns)
		}
		if cfg.RelevantChunks > 0 {
			e.relevantChunks = cfg.RelevantChunks
		}
		if cfg.DocExcerptChars > 0 {
			e.excerptChars = cfg.DocExcerptChars
		}
	}
}

// New creates an engine. Every collaborator is optional: a missing racer
// means no web answers, a missing generator means no fallback.
func New(opts ...Option) *Engine {
	e := &Engine{
		history:        memory.New(config.DefaultHistoryTurns),
		logger:         slog.Default(),
		signals:        intent.Detect,
		relevantChunks: config.DefaultRelevantChunks,
		excerptChars:   config.DefaultDocExcerpt,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Answer returns the best answer it can compose for query. It never fails:
// every error is logged and turned into a fallback or a fixed message.
func (e *Engine) Answer(ctx context.Context, query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return PromptForInput
	}

	start := time.Now()
	log := e.logger.With(logging.FieldRequestID, uuid.NewString())
	cls := intent.Classify(query)
	log.Info("answer requested",
		logging.FieldQuery, query,
		"intent", cls.Coarse,
		"doc_intent", cls.Fine)

	sig := e.signals(query)
	doc := e.DocContext()

	var docPart, webPart string
	if sig.DocLikely && doc.Loaded() {
		docPart = e.summarizeDocument(query, doc.Text)
		log.Debug("document summary computed", logging.FieldCount, utf8.RuneCountInString(docPart))
	}

	if (sig.DocLikely || sig.WebLikely) && e.racer != nil {
		if res, ok := e.racer.Race(ctx, query); ok {
			webPart = res.Answer
			log.Debug("web race answered",
				logging.FieldProvider, res.Provider,
				logging.FieldLatencyMS, res.Latency.Milliseconds())
		}
	}

	answer := Fuse(docPart, webPart)
	source := "fused"
	if answer == "" {
		answer = e.fallback(ctx, log, query, doc)
		source = "fallback"
	}
	if answer == "" {
		answer = NoAnswer
		source = "none"
	}

	e.history.Add(types.RoleUser, query)
	e.history.Add(types.RoleAssistant, answer)

	log.Info("answer composed",
		"source", source,
		"doc_likely", sig.DocLikely,
		"web_likely", sig.WebLikely,
		"history_turns", e.history.Len(),
		logging.FieldLatencyMS, time.Since(start).Milliseconds())
	return answer
}

// Fuse joins document and web content. When only one is present it is
// returned unchanged.
func Fuse(docPart, webPart string) string {
	docPart = strings.TrimSpace(docPart)
	webPart = strings.TrimSpace(webPart)

	switch {
	case docPart != "" && webPart != "":
		return docLabel + "\n" + docPart + "\n\n" + webLabel + "\n" + webPart
	case docPart != "":
		return docPart
	default:
		return webPart
	}
}

// summarizeDocument extracts the sentences of text most relevant to query.
// Large documents are first narrowed to their best-matching chunks, kept
// in document order.
func (e *Engine) summarizeDocument(query, text string) string {
	if utf8.RuneCountInString(text) > chunker.SelectionChunkSize {
		if chunks := chunker.SelectRelevantChunksInOrder(query, text, e.relevantChunks); len(chunks) > 0 {
			text = strings.Join(chunks, "\n\n")
		}
	}
	return chunker.ExtractiveSummary(text, query, SummaryLength(intent.DetectIntent(query)))
}

// SummaryLength maps a document intent to an extractive summary size
func SummaryLength(di intent.DocIntent) int {
	switch di {
	case intent.Summarize:
		return 8
	case intent.Highlights:
		return 5
	default:
		return 4
	}
}

// fallback asks the generator once. Errors yield "".
func (e *Engine) fallback(ctx context.Context, log *slog.Logger, query string, doc types.DocContext) string {
	if e.generator == nil {
		log.Debug("no fallback generator configured")
		return ""
	}

	out, err := e.generator.Generate(ctx, e.buildPrompt(query, doc))
	if err != nil {
		log.Warn("fallback generation failed",
			logging.FieldProvider, e.generator.Name(),
			logging.FieldError, err)
		return ""
	}
	return strings.TrimSpace(out)
}

// buildPrompt assembles recent history, a document excerpt and the question
func (e *Engine) buildPrompt(query string, doc types.DocContext) string {
	var b strings.Builder

	if transcript := e.history.Transcript(); transcript != "" {
		b.WriteString("Conversation so far:\n")
		b.WriteString(transcript)
		b.WriteString("\n\n")
	}

	if doc.Loaded() {
		b.WriteString("Document excerpt")
		if doc.Name != "" {
			b.WriteString(" (" + doc.Name + ")")
		}
		b.WriteString(":\n")
		b.WriteString(excerpt(doc.Text, e.excerptChars))
		b.WriteString("\n\n")
	}

	b.WriteString("Question: ")
	b.WriteString(query)
	return b.String()
}

// excerpt returns at most n runes of text
func excerpt(text string, n int) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	return string([]rune(text)[:n])
}

// SetDocContext replaces the loaded document wholesale
func (e *Engine) SetDocContext(doc types.DocContext) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.doc = doc
	e.logger.Info("document context set",
		"name", doc.Name,
		logging.FieldCount, utf8.RuneCountInString(doc.Text))
}

// DocContext returns the loaded document
func (e *Engine) DocContext() types.DocContext {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc
}

// UnifiedSearch exposes raw router results. The result is never nil.
func (e *Engine) UnifiedSearch(ctx context.Context, query string, maxResults int) []types.Hit {
	if e.searcher == nil {
		return []types.Hit{}
	}
	return e.searcher.UnifiedSearch(ctx, query, maxResults)
}

// ProviderStats returns a snapshot of provider health counters
func (e *Engine) ProviderStats() map[string]types.ProviderStat {
	if e.stats == nil {
		return map[string]types.ProviderStat{}
	}
	return e.stats.Snapshot()
}

// History returns the conversation so far, oldest first
func (e *Engine) History() []types.ConversationTurn {
	return e.history.Turns()
}

// Reset clears the conversation history and unloads the document
func (e *Engine) Reset() {
	e.history.Clear()
	e.mu.Lock()
	e.doc = types.DocContext{}
	e.mu.Unlock()
}

// ResetProviders zeroes the provider health counters and drops cached
// search results
func (e *Engine) ResetProviders() {
	if e.stats != nil {
		e.stats.Reset()
	}
	if e.searcher != nil {
		e.searcher.ClearCache()
	}
	e.logger.Info("provider state reset")
}
