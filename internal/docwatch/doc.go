// Package docwatch loads plain-text documents into a document context and
// keeps them current by watching the file with fsnotify.
package docwatch
