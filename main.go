// YouTube MCP Server - A Model Context Protocol server for the YouTube Data API v3
// Exposes read-only tools for searching videos, reading video/channel metadata,
// fetching comments, and listing trending charts.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/youtube-mcp-server/internal/youtube"
	"github.com/olgasafonova/youtube-mcp-server/tools"
	"github.com/olgasafonova/youtube-mcp-server/tracing"
)

const (
	ServerName    = "youtube-mcp-server"
	ServerVersion = "1.0.0"
)

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	// Load configuration from environment
	config, err := youtube.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Initialize tracing (no-op unless OTEL_ENABLED or an OTLP endpoint is set)
	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		_ = shutdownTracing(context.Background())
	}()

	// Create YouTube Data API client
	client := youtube.NewClient(config, youtube.WithLogger(logger))
	defer client.Close()

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger: logger,
		Instructions: `YouTube MCP Server provides read-only tools for the YouTube Data API.

Available tools:
- youtube_search_videos: Search for videos by text query
- youtube_get_video_details: Get metadata and statistics for a video
- youtube_get_channel_info: Get metadata and statistics for a channel
- youtube_get_video_comments: Get top-level comments for a video
- youtube_get_trending_videos: Get trending videos by region and category

All tools return the raw YouTube API JSON response. When the upstream API
call fails, the result is {"error": "..."} instead.

Configure via environment variables:
- YOUTUBE_API_KEY: Data API key (required; https://console.cloud.google.com/apis/credentials)
- YOUTUBE_API_TIMEOUT: Per-request timeout (default 30s)`,
	})

	// Register all tools
	registry := tools.NewHandlerRegistry(client, logger)
	registry.RegisterAll(server)

	// Run server on stdio transport
	logger.Info("Starting YouTube MCP Server",
		"name", ServerName,
		"version", ServerVersion,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// logLevel reads the log level from the environment, defaulting to info.
func logLevel() slog.Level {
	switch os.Getenv("YOUTUBE_MCP_LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
