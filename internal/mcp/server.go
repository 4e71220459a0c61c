package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tiantiangg/dagger/internal/graph"
)

// GraphLoader produces a fresh binding graph for each tool call, so edits to
// manifests on disk are visible without restarting the server.
type GraphLoader interface {
	Load(ctx context.Context) (*graph.BindingGraph, error)
}

type Server struct {
	loader GraphLoader
	mcp    *sdk.Server
}

func NewServer(loader GraphLoader, version string) *Server {
	s := &Server{
		loader: loader,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "bindcheck",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
