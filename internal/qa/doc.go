// Package qa is the answer composition engine.
//
// For each question the engine classifies intent, summarizes the loaded
// document when the question refers to it, races the web providers when
// live or document-adjacent information is needed, and fuses the two.
// When neither source yields content a generative backend is asked once;
// when that also fails a fixed message is returned. Callers always get a
// string, never an error.
package qa
