package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/askroute/internal/docwatch"
	"github.com/dshills/askroute/internal/provider"
	"github.com/dshills/askroute/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeDocumentLoad  = -32001 // Document could not be loaded
)

// handleAnswer handles the answer tool invocation
func (s *Server) handleAnswer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, err := requireQuery(args)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	answer := s.svc.Answer(ctx, query)

	response := map[string]interface{}{
		"answer":      answer,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if doc := s.svc.DocContext(); doc.Loaded() {
		response["document"] = doc.Name
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleSetDocContext handles the set_doc_context tool invocation
func (s *Server) handleSetDocContext(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	text, ok := args["text"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "text parameter is required", map[string]interface{}{
			"param":  "text",
			"reason": "missing or not a string",
		})
	}
	name := getStringDefault(args, "name", "")

	doc := types.DocContext{Name: name, Text: text}
	s.svc.SetDocContext(doc)

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"loaded":     doc.Loaded(),
		"name":       doc.Name,
		"characters": len([]rune(doc.Text)),
	})), nil
}

// handleLoadDocument handles the load_document tool invocation
func (s *Server) handleLoadDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "path parameter is required", map[string]interface{}{
			"param":  "path",
			"reason": "missing or empty",
		})
	}
	if !filepath.IsAbs(path) {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid path", map[string]interface{}{
			"param":  "path",
			"reason": ErrPathNotAbsolute.Error(),
		})
	}

	doc, err := docwatch.Load(path)
	if err != nil {
		code := ErrorCodeDocumentLoad
		if errors.Is(err, docwatch.ErrUnsupportedType) {
			code = ErrorCodeInvalidParams
		}
		return nil, newMCPError(code, "failed to load document", map[string]interface{}{
			"param":  "path",
			"reason": err.Error(),
		})
	}
	s.svc.SetDocContext(doc)

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"loaded":     true,
		"name":       doc.Name,
		"characters": len([]rune(doc.Text)),
	})), nil
}

// handleUnifiedSearch handles the unified_search tool invocation
func (s *Server) handleUnifiedSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, err := requireQuery(args)
	if err != nil {
		return nil, err
	}

	limit, err := getIntDefault(args, "max_results", provider.DefaultMaxResults)
	if err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, err.Error(), map[string]interface{}{
			"param": "max_results",
			"value": args["max_results"],
		})
	}
	if limit < 1 || limit > provider.MaxResultsLimit {
		return nil, newMCPError(ErrorCodeInvalidParams, fmt.Sprintf("max_results must be between 1 and %d", provider.MaxResultsLimit), map[string]interface{}{
			"param": "max_results",
			"value": limit,
		})
	}

	start := time.Now()
	hits := s.svc.UnifiedSearch(ctx, query, limit)
	if hits == nil {
		hits = []types.Hit{}
	}

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"query":         query,
		"total_results": len(hits),
		"results":       hits,
		"duration_ms":   time.Since(start).Milliseconds(),
	})), nil
}

// handleGetProviderStats handles the get_provider_stats tool invocation
func (s *Server) handleGetProviderStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snapshot := s.svc.ProviderStats()

	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	providers := make([]map[string]interface{}, 0, len(names))
	for _, name := range names {
		st := snapshot[name]
		entry := map[string]interface{}{
			"provider":       name,
			"calls":          st.Calls,
			"errors":         st.Errors,
			"avg_latency_ms": st.AvgLatencyMs,
			"error_rate":     st.ErrorRate(),
		}
		if !st.LastUsed.IsZero() {
			entry["last_used"] = st.LastUsed.UTC().Format(time.RFC3339)
		}
		providers = append(providers, entry)
	}

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"providers": providers,
	})), nil
}

// handleGetHistory handles the get_history tool invocation
func (s *Server) handleGetHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	turns := s.svc.History()
	if turns == nil {
		turns = []types.ConversationTurn{}
	}
	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"turns": turns,
		"count": len(turns),
	})), nil
}

// handleResetSession handles the reset_session tool invocation
func (s *Server) handleResetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	resetProviders, _ := args["providers"].(bool)

	s.svc.Reset()
	if resetProviders {
		s.svc.ResetProviders()
	}
	s.logger.Info("session reset", "providers", resetProviders)

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"reset":     true,
		"providers": resetProviders,
	})), nil
}

// Helper functions

// requireQuery extracts the query parameter. A blank string is accepted and
// handed to the service, which answers it without calling any provider.
func requireQuery(args map[string]interface{}) (string, error) {
	query, ok := args["query"].(string)
	if !ok {
		return "", newMCPError(ErrorCodeInvalidParams, "query parameter is required and must be a string", map[string]interface{}{
			"param":  "query",
			"reason": "missing or not a string",
		})
	}
	return strings.TrimSpace(query), nil
}

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getIntDefault extracts an integer parameter with a default value. JSON
// numbers arrive as float64; fractional or out-of-range values are rejected.
func getIntDefault(args map[string]interface{}, key string, defaultValue int) (int, error) {
	switch val := args[key].(type) {
	case nil:
		return defaultValue, nil
	case int:
		return val, nil
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) || val != math.Trunc(val) {
			return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidInteger, key)
		}
		if val < math.MinInt32 || val > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %s is out of range", ErrInvalidInteger, key)
		}
		return int(val), nil
	default:
		return 0, fmt.Errorf("%w: %s must be a number", ErrInvalidInteger, key)
	}
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}

// Validation errors
var (
	ErrPathNotAbsolute = errors.New("path must be absolute")
	ErrInvalidInteger  = errors.New("invalid integer parameter")
)
