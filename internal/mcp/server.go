package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dshills/askroute/internal/logging"
	"github.com/dshills/askroute/pkg/types"
)

const (
	// ServerName is the MCP server name
	ServerName = "askroute"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Service is the answer engine surface the server exposes
type Service interface {
	Answer(ctx context.Context, query string) string
	SetDocContext(doc types.DocContext)
	DocContext() types.DocContext
	UnifiedSearch(ctx context.Context, query string, maxResults int) []types.Hit
	ProviderStats() map[string]types.ProviderStat
	History() []types.ConversationTurn
	Reset()
	ResetProviders()
}

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp    *server.MCPServer
	svc    Service
	logger *slog.Logger
}

// NewServer creates a new MCP server instance
func NewServer(svc Service, logger *slog.Logger) *Server {
	s := &Server{
		mcp:    server.NewMCPServer(ServerName, ServerVersion),
		svc:    svc,
		logger: logging.OrDefault(logger),
	}
	s.registerTools()
	return s
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("mcp server listening on stdio", "name", ServerName, "version", ServerVersion)
	return server.ServeStdio(s.mcp)
}

// toolEntry pairs a tool definition with its handler
type toolEntry struct {
	tool    mcp.Tool
	handler server.ToolHandlerFunc
}

func (s *Server) tools() []toolEntry {
	return []toolEntry{
		{answerTool(), s.handleAnswer},
		{setDocContextTool(), s.handleSetDocContext},
		{loadDocumentTool(), s.handleLoadDocument},
		{unifiedSearchTool(), s.handleUnifiedSearch},
		{getProviderStatsTool(), s.handleGetProviderStats},
		{getHistoryTool(), s.handleGetHistory},
		{resetSessionTool(), s.handleResetSession},
	}
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	for _, t := range s.tools() {
		s.mcp.AddTool(t.tool, t.handler)
	}
}
