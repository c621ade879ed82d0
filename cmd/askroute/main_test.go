package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/askroute/internal/logging"
	"github.com/dshills/askroute/pkg/types"
)

var credentialEnv = []string{
	"BRAVE_API_KEY", "BING_API_KEY", "GOOGLE_PSE_KEY", "GOOGLE_PSE_CX",
	"SERPAPI_KEY", "GROQ_API_KEY", "OPENAI_API_KEY", "DEEPSEEK_API_KEY",
	"ANTHROPIC_API_KEY", "ASKROUTE_SEARCH_MODE", "ASKROUTE_LOG_LEVEL", "ASKROUTE_CONFIG",
}

// offlineConfig writes a config with every network provider disabled
func offlineConfig(t *testing.T) string {
	t.Helper()
	for _, key := range credentialEnv {
		t.Setenv(key, "")
	}
	path := filepath.Join(t.TempDir(), "askroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: error\nproviders:\n  duckduckgo: false\n"), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	renderTable(&buf, []string{"Provider", "Enabled"}, [][]string{{"brave", "true"}, {"bing"}})

	out := buf.String()
	assert.Contains(t, out, "PROVIDER")
	assert.Contains(t, out, "brave")
	assert.Contains(t, out, "bing")
	assert.Contains(t, out, "╭")
}

func TestRenderTableNoHeaders(t *testing.T) {
	var buf bytes.Buffer
	renderTable(&buf, nil, [][]string{{"x"}})
	assert.Empty(t, buf.String())
}

func TestStatsRowsSortedByName(t *testing.T) {
	rows := statsRows(map[string]types.ProviderStat{
		"serpapi": {Calls: 3, Errors: 1, AvgLatencyMs: 120.4, LastUsed: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
		"brave":   {},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"brave", "0", "0", "0%", "0ms", "-"}, rows[0])
	assert.Equal(t, []string{"serpapi", "3", "1", "25%", "120ms", "03:04:05"}, rows[1])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("  short ", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}

func TestProvidersCommandOffline(t *testing.T) {
	cfg := offlineConfig(t)

	out, err := execute(t, "--config", cfg, "providers")
	require.NoError(t, err)
	assert.Contains(t, out, "brave")
	assert.Contains(t, out, "duckduckgo")
	assert.Contains(t, out, "false")
	assert.NotContains(t, out, "true")
}

func TestAskCommandAnswersFromDocument(t *testing.T) {
	cfg := offlineConfig(t)
	doc := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(doc, []byte(
		"The launch moved to March. Budget approval is still pending. "+
			"The design review found two blocking issues."), 0o600))

	out, err := execute(t, "--config", cfg, "ask", "--doc", doc, "summarize this document")
	require.NoError(t, err)
	assert.Contains(t, out, "launch moved to March")
}

func TestAskCommandRequiresQuestion(t *testing.T) {
	cfg := offlineConfig(t)
	_, err := execute(t, "--config", cfg, "ask")
	assert.Error(t, err)
}

func TestServeWatchRequiresDoc(t *testing.T) {
	cfg := offlineConfig(t)
	_, err := execute(t, "--config", cfg, "serve", "--watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch requires --doc")
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "askroute "+version)
}

func TestWatchDocumentLogging(t *testing.T) {
	newLogger := func(buf *bytes.Buffer) *slog.Logger {
		l, err := logging.New(logging.Options{Level: "debug", Output: buf})
		require.NoError(t, err)
		return l
	}

	t.Run("shutdown is quiet", func(t *testing.T) {
		var buf bytes.Buffer
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		watchDocument(ctx, func(ctx context.Context) error { return ctx.Err() }, newLogger(&buf))
		assert.Empty(t, buf.String())
	})

	t.Run("failures are logged", func(t *testing.T) {
		var buf bytes.Buffer
		watchDocument(context.Background(), func(context.Context) error { return errors.New("watch limit reached") }, newLogger(&buf))
		assert.Contains(t, buf.String(), "document watcher stopped")
		assert.Contains(t, buf.String(), "watch limit reached")
	})
}
