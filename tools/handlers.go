package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/youtube-mcp-server/internal/youtube"
	"github.com/olgasafonova/youtube-mcp-server/metrics"
	"github.com/olgasafonova/youtube-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	client *youtube.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *youtube.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		client: client,
		logger: logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "SearchVideos":
		register(h, server, tool, spec, h.client.SearchVideosMCP)
	case "GetVideoDetails":
		register(h, server, tool, spec, h.client.GetVideoDetailsMCP)
	case "GetChannelInfo":
		register(h, server, tool, spec, h.client.GetChannelInfoMCP)
	case "GetVideoComments":
		register(h, server, tool, spec, h.client.GetVideoCommentsMCP)
	case "GetTrendingVideos":
		register(h, server, tool, spec, h.client.GetTrendingVideosMCP)
	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and
// logging. Upstream failures arrive as an error envelope in the result, not
// as a Go error: they count as errors in metrics but succeed at the protocol
// level, per the tool contract.
func register[Args any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (youtube.Response, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, youtube.Response, error) {
		defer h.recoverPanic(spec.Name)

		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		tracing.AddToolAttributes(span, spec.Name, spec.Category)
		span.SetAttributes(attribute.String("youtube.api.endpoint", spec.Endpoint))

		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			return nil, nil, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		if msg, failed := envelopeError(result); failed {
			span.SetStatus(codes.Error, msg)
			metrics.RecordRequest(spec.Name, duration, false)
			h.logger.Warn("Tool returned error envelope", "tool", spec.Name, "error", msg)
			return nil, result, nil
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args)
		return nil, result, nil
	})
}

// envelopeError reports whether a result is the uniform upstream-failure
// envelope and returns its message.
func envelopeError(resp youtube.Response) (string, bool) {
	if len(resp) != 1 {
		return "", false
	}
	msg, ok := resp["error"].(string)
	return msg, ok
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args any) {
	attrs := []any{"tool", spec.Name, "endpoint", spec.Endpoint}

	switch a := args.(type) {
	case youtube.SearchVideosArgs:
		attrs = append(attrs, "query", a.Query, "max_results", a.MaxResults)
	case youtube.GetVideoDetailsArgs:
		attrs = append(attrs, "video_id", a.VideoID)
	case youtube.GetChannelInfoArgs:
		attrs = append(attrs, "channel_id", a.ChannelID)
	case youtube.GetVideoCommentsArgs:
		attrs = append(attrs, "video_id", a.VideoID, "max_results", a.MaxResults)
	case youtube.GetTrendingVideosArgs:
		attrs = append(attrs, "region_code", a.RegionCode, "category_id", a.CategoryID)
	}

	h.logger.Info("Tool executed", attrs...)
}
