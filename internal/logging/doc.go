// Package logging builds the slog logger shared by askroute components.
// Logs go to stderr; stdout is reserved for the MCP stdio transport.
package logging
