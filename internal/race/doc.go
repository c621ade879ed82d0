// Package race implements the web race engine: several providers are asked
// the same question at once and the first non-empty answer wins.
package race
