package docwatch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dshills/askroute/pkg/types"
)

// Loader errors
var (
	ErrUnsupportedType = errors.New("unsupported document type")
	ErrTooLarge        = errors.New("document too large")
	ErrNotText         = errors.New("document is not valid UTF-8 text")
	ErrEmptyDocument   = errors.New("document is empty")
)

// MaxDocumentBytes bounds the size of a loadable document
const MaxDocumentBytes = 8 << 20

// DefaultExtensions are the plain-text formats the loader accepts
var DefaultExtensions = []string{".txt", ".md", ".markdown", ".text", ".csv", ".log", ".rst"}

// Load reads a plain-text document from path
func Load(path string) (types.DocContext, error) {
	if !isSupported(path, DefaultExtensions) {
		return types.DocContext{}, fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Ext(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return types.DocContext{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > MaxDocumentBytes {
		return types.DocContext{}, fmt.Errorf("%w: %d bytes", ErrTooLarge, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return types.DocContext{}, fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return types.DocContext{}, ErrNotText
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return types.DocContext{}, ErrEmptyDocument
	}

	return types.DocContext{Name: filepath.Base(path), Text: text}, nil
}

func isSupported(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
