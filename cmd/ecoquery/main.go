package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ecoquery/ecoquery-mcp/internal/engine"
	"github.com/ecoquery/ecoquery-mcp/internal/kb"
	"github.com/ecoquery/ecoquery-mcp/internal/mcp"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("EcoQuery MCP Server\n")
		fmt.Printf("Version: %s\n", version)
		fmt.Printf("Build Time: %s\n", buildTime)
		fmt.Printf("Build Mode: %s\n", kb.BuildMode)
		fmt.Printf("SQLite Driver: %s\n", kb.DriverName)
		os.Exit(0)
	}

	// Log startup info to stderr (stdout reserved for MCP protocol)
	log.SetOutput(os.Stderr)
	log.Printf("EcoQuery MCP Server v%s starting...", version)
	log.Printf("Build Mode: %s, Driver: %s", kb.BuildMode, kb.DriverName)

	// Knowledge-base sources and cache size come from ECOQUERY_* env vars
	cfg := engine.FromEnv()
	if cfg.KBPath != "" {
		log.Printf("Knowledge base JSON source: %s", cfg.KBPath)
	}
	if cfg.KBDSN != "" {
		log.Printf("Knowledge base SQLite source: %s", cfg.KBDSN)
	}

	// Set up graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create MCP server (loads the knowledge base)
	server, err := mcp.NewServer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	errChan := make(chan error, 1)
	go func() {
		log.Println("MCP server ready, listening on stdio...")
		errChan <- server.Serve(ctx)
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down gracefully...", sig)
		cancel()
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}

	log.Println("Server stopped")
}
