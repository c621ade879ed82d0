package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/askroute/internal/provider"
)

// answerTool returns the tool definition for answer
func answerTool() mcp.Tool {
	return mcp.Tool{
		Name:        "answer",
		Description: "Answer a question using the loaded document, a web provider race and a generative fallback",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "The user's question",
				},
			},
			Required: []string{"query"},
		},
	}
}

// setDocContextTool returns the tool definition for set_doc_context
func setDocContextTool() mcp.Tool {
	return mcp.Tool{
		Name:        "set_doc_context",
		Description: "Replace the loaded document with the given text. Empty text unloads the document",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Display name of the document",
				},
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Full plain text of the document",
				},
			},
			Required: []string{"text"},
		},
	}
}

// loadDocumentTool returns the tool definition for load_document
func loadDocumentTool() mcp.Tool {
	return mcp.Tool{
		Name:        "load_document",
		Description: "Load a plain-text document (.txt, .md, ...) from disk as the document context",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the document",
				},
			},
			Required: []string{"path"},
		},
	}
}

// unifiedSearchTool returns the tool definition for unified_search
func unifiedSearchTool() mcp.Tool {
	return mcp.Tool{
		Name:        "unified_search",
		Description: "Query every enabled search provider at once and return the combined hits in provider priority order",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query",
				},
				"max_results": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum hits per provider",
					"default":     provider.DefaultMaxResults,
					"minimum":     1,
					"maximum":     provider.MaxResultsLimit,
				},
			},
			Required: []string{"query"},
		},
	}
}

// getProviderStatsTool returns the tool definition for get_provider_stats
func getProviderStatsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_provider_stats",
		Description: "Report per-provider call counts, error counts and average latency",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// getHistoryTool returns the tool definition for get_history
func getHistoryTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_history",
		Description: "Return the recent conversation turns, oldest first",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// resetSessionTool returns the tool definition for reset_session
func resetSessionTool() mcp.Tool {
	return mcp.Tool{
		Name:        "reset_session",
		Description: "Clear the conversation history and unload the document. Optionally zero provider statistics and drop cached search results",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"providers": map[string]interface{}{
					"type":        "boolean",
					"description": "Also reset provider statistics and the search cache",
					"default":     false,
				},
			},
		},
	}
}
