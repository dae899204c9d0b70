package mcp

import (
	"context"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/KrishTanna28/CollEdge-Internship-Assignment/internal/service"
)

const (
	// ServerName is the MCP server name
	ServerName = "contacts-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp    *server.MCPServer
	svc    *service.Service
	logger *zap.Logger
}

// NewServer creates a new MCP server backed by the contact service
func NewServer(svc *service.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		mcp:    server.NewMCPServer(ServerName, ServerVersion),
		svc:    svc,
		logger: logger,
	}
	s.registerTools()
	return s
}

// Serve starts the MCP server on stdio and blocks until stdin closes or
// ctx is cancelled
func (s *Server) Serve(ctx context.Context) error {
	return s.Listen(ctx, os.Stdin, os.Stdout)
}

// Listen serves MCP requests read from in and writes responses to out.
// Logging goes to the zap logger since out carries the protocol.
func (s *Server) Listen(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(zap.NewStdLog(s.logger))

	s.logger.Info("mcp server started", zap.String("name", ServerName), zap.String("version", ServerVersion))
	return stdio.Listen(ctx, in, out)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(listContactsTool(), s.handleListContacts)
	s.mcp.AddTool(createContactTool(), s.handleCreateContact)
	s.mcp.AddTool(getContactTool(), s.handleGetContact)
	s.mcp.AddTool(deleteContactTool(), s.handleDeleteContact)
	s.mcp.AddTool(getStatusTool(), s.handleGetStatus)
}
