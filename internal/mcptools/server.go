// Package mcptools exposes launchpad over the Model Context Protocol so
// agent clients can drive projects and generations from a stdio
// transport.
package mcptools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/launchpad/internal/advisor"
	"github.com/fyrsmithlabs/launchpad/internal/session"
	"github.com/fyrsmithlabs/launchpad/internal/store"
)

// Server is the MCP facade over the store, session, and advisor.
type Server struct {
	mcp     *mcp.Server
	store   *store.Store
	session *session.Session
	advisor *advisor.Service
	logger  *zap.Logger
}

// Config configures the MCP server.
type Config struct {
	// Name is the server implementation name (default: "launchpad").
	Name string

	// Version is the server version (default: "1.0.0").
	Version string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Name:    "launchpad",
		Version: "1.0.0",
	}
}

// NewServer creates a new MCP server with the given services.
func NewServer(cfg *Config, st *store.Store, sess *session.Session, adv *advisor.Service, logger *zap.Logger) (*Server, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if st == nil {
		return nil, fmt.Errorf("store is required")
	}
	if sess == nil {
		return nil, fmt.Errorf("session is required")
	}
	if adv == nil {
		return nil, fmt.Errorf("advisor service is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    cfg.Name,
			Version: cfg.Version,
		},
		nil,
	)

	s := &Server{
		mcp:     mcpServer,
		store:   st,
		session: sess,
		advisor: adv,
		logger:  logger,
	}
	s.registerTools()
	return s, nil
}

// Run serves MCP over stdio until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("starting mcp server on stdio")
	transport := &mcp.StdioTransport{}
	return s.mcp.Run(ctx, transport)
}
