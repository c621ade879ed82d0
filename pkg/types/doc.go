// Package types provides shared type definitions for askroute.
//
// These are the records that cross component boundaries: search hits,
// the loaded document, conversation turns and provider statistics.
//
// # Hits
//
// Hit is the normalized shape every search provider returns:
//
//	hit := types.NewHit("Go 1.24 released", "  The **Go** team ...", "https://go.dev", "brave")
//	// hit.Snippet == "The Go team ..."
//
// All four fields are plain strings. Adapters never leave a field unset;
// missing data becomes the empty string. NormalizeHits drops hits with no
// title, snippet or url.
//
// # Document Context
//
// DocContext is owned by the host and replaced wholesale. The answer engine
// only reads it:
//
//	engine.SetDocContext(types.DocContext{Name: "report.txt", Text: text})
package types
