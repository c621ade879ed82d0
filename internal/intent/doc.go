// Package intent classifies queries with keyword and regexp rules.
//
// Three views are produced:
//
//   - ClassifyIntent: WEB, DOC or HYBRID, for routing and display
//   - DetectIntent: summarize, highlights or qa, for document queries
//   - Detect: the {DocLikely, WebLikely} pair the answer engine uses
//
// The signal pair is computed independently, so "summarize the latest news
// in this document" is both DocLikely and WebLikely.
package intent
