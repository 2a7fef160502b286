// Package mcp exposes the documentation service over the Model Context
// Protocol: one tool returning the whole-file documentation model and one
// mapping a cursor line to its enclosing declaration.
package mcp

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/docsight/docsight/internal/docindex"
)

// DocServer manages the MCP server lifecycle.
type DocServer struct {
	service *docindex.Service
	mcp     *server.MCPServer
}

// NewDocServer creates an MCP server backed by the documentation service.
func NewDocServer(service *docindex.Service) (*DocServer, error) {
	if service == nil {
		return nil, fmt.Errorf("documentation service is required")
	}

	mcpServer := server.NewMCPServer(
		"docsight",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	AddFileDocsTool(mcpServer, service)
	AddSymbolAtTool(mcpServer, service)

	return &DocServer{service: service, mcp: mcpServer}, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *DocServer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting MCP server on stdio...")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
		}
	}()

	select {
	case <-sigCh:
		log.Printf("Received shutdown signal, stopping gracefully...")
		cancel()
		return nil
	case err := <-errCh:
		cancel()
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
