package docwatch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/askroute/internal/logging"
	"github.com/dshills/askroute/pkg/types"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("text file", func(t *testing.T) {
		path := filepath.Join(dir, "notes.md")
		require.NoError(t, os.WriteFile(path, []byte("# Notes\r\n\r\nLine two."), 0o644))

		doc, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "notes.md", doc.Name)
		assert.Equal(t, "# Notes\n\nLine two.", doc.Text)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "image.png")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("binary content", func(t *testing.T) {
		path := filepath.Join(dir, "bad.txt")
		require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00}, 0o644))
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrNotText)
	})

	t.Run("empty", func(t *testing.T) {
		path := filepath.Join(dir, "empty.txt")
		require.NoError(t, os.WriteFile(path, []byte(" \n "), 0o644))
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrEmptyDocument)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.txt"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

// recordingSink implements Sink for testing
type recordingSink struct {
	mu   sync.Mutex
	docs []types.DocContext
}

func (s *recordingSink) SetDocContext(doc types.DocContext) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(s.docs, doc)
}

func (s *recordingSink) last() (types.DocContext, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.docs) == 0 {
		return types.DocContext{}, false
	}
	return s.docs[len(s.docs)-1], true
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(path, []byte("version one"), 0o644))

	sink := &recordingSink{}
	w, err := NewWatcher(path, sink, logging.Discard())
	require.NoError(t, err)
	defer w.Close()
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("version two"), 0o644))

	assert.Eventually(t, func() bool {
		doc, ok := sink.last()
		return ok && doc.Text == "version two"
	}, 2*time.Second, 10*time.Millisecond)

	doc, _ := sink.last()
	assert.Equal(t, "doc.txt", doc.Name)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}
