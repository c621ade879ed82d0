// Package mcp implements the Model Context Protocol (MCP) server for askroute.
//
// The MCP server exposes seven tools to AI assistants and other MCP clients:
//   - answer: Answer a question from the loaded document and the web
//   - set_doc_context: Replace the loaded document with inline text
//   - load_document: Load a plain-text document from disk
//   - unified_search: Query every enabled search provider at once
//   - get_provider_stats: Report per-provider health counters
//   - get_history: Return the recent conversation turns
//   - reset_session: Clear history and document, optionally provider state
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// Logs go to stderr; stdout carries protocol messages only.
//
// # Basic Usage
//
// The MCP server is typically started via the serve command:
//
//	askroute serve --doc ./notes.md --watch
//
// # Tool: answer
//
//	Request:
//	{
//	  "name": "answer",
//	  "arguments": {"query": "what changed in the latest Go release?"}
//	}
//
//	Response:
//	{
//	  "answer": "Go 1.25 was released in August ...",
//	  "duration_ms": 812
//	}
//
// # Tool: unified_search
//
//	Request:
//	{
//	  "name": "unified_search",
//	  "arguments": {"query": "golang generics", "max_results": 3}
//	}
//
//	Response:
//	{
//	  "query": "golang generics",
//	  "total_results": 6,
//	  "results": [
//	    {"title": "...", "snippet": "...", "url": "https://...", "provider": "brave"}
//	  ],
//	  "duration_ms": 640
//	}
//
// # Error Handling
//
// Invalid parameters are reported as MCPError values with JSON-RPC codes:
//
//	-32602: Invalid parameters
//	-32603: Internal error
//	-32001: Document could not be loaded
//
// A blank query is not an error: answer replies with a prompt for input
// and unified_search returns no results.
//
// Provider failures are never surfaced as errors; the answer engine degrades
// to fallbacks instead.
package mcp
