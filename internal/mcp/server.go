package mcp

import (
	"context"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ecoquery/ecoquery-mcp/internal/engine"
)

const (
	// ServerName is the MCP server name
	ServerName = "ecoquery-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp    *server.MCPServer
	engine *engine.Engine
}

// NewServer creates a new MCP server instance around a query engine built
// from the given config. The knowledge base is loaded before the server is
// returned; a source failure degrades to the built-in knowledge base and
// is logged rather than fatal.
func NewServer(ctx context.Context, cfg engine.Config) (*Server, error) {
	eng, err := engine.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize engine: %w", err)
	}

	if err := eng.Load(ctx); err != nil {
		log.Printf("Knowledge base load degraded to built-in defaults: %v", err)
	}

	return newServerWithEngine(eng)
}

// newServerWithEngine wires an already-constructed engine. Split out for
// tests.
func newServerWithEngine(eng *engine.Engine) (*Server, error) {
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:    mcpServer,
		engine: eng,
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() error {
	s.mcp.AddTool(processQueryTool(), s.handleProcessQuery)
	s.mcp.AddTool(getSearchPatternsTool(), s.handleGetSearchPatterns)
	s.mcp.AddTool(getStatusTool(), s.handleGetStatus)
	return nil
}
