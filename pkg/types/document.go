package types

import "strings"

// DocContext is the document currently loaded by the host. An empty Text
// means no document is loaded.
type DocContext struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Loaded reports whether the context holds any document text
func (d DocContext) Loaded() bool {
	return strings.TrimSpace(d.Text) != ""
}
