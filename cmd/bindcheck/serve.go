package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tiantiangg/dagger/internal/config"
	"github.com/tiantiangg/dagger/internal/mcp"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		RunE:  runServe,
	}
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadProjectConfig(configFile)
	if err != nil {
		return err
	}

	server := mcp.NewServer(&configLoader{cfg: cfg}, version)
	return server.Run(ctx, &sdk.StdioTransport{})
}
