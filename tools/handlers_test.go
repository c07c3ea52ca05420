package tools

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/olgasafonova/youtube-mcp-server/internal/youtube"
)

func newTestRegistry(t *testing.T) *HandlerRegistry {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client := youtube.NewClient(&youtube.Config{
		APIKey:  "test-key",
		BaseURL: "http://localhost:0",
	}, youtube.WithLogger(logger))
	t.Cleanup(client.Close)
	return NewHandlerRegistry(client, logger)
}

func TestNewHandlerRegistry(t *testing.T) {
	registry := newTestRegistry(t)
	if registry == nil {
		t.Fatal("expected non-nil registry")
	}
	if registry.client == nil {
		t.Error("registry should hold the client reference")
	}
	if registry.logger == nil {
		t.Error("registry should hold the logger reference")
	}
}

func TestAllToolsDefinitions(t *testing.T) {
	if len(AllTools) != 5 {
		t.Errorf("AllTools has %d entries, want 5", len(AllTools))
	}

	seen := make(map[string]bool)
	for _, spec := range AllTools {
		if spec.Name == "" {
			t.Error("tool with empty name")
		}
		if seen[spec.Name] {
			t.Errorf("duplicate tool name %q", spec.Name)
		}
		seen[spec.Name] = true

		if !strings.HasPrefix(spec.Name, "youtube_") {
			t.Errorf("tool %q should be prefixed youtube_", spec.Name)
		}
		if spec.Method == "" {
			t.Errorf("tool %q has no method", spec.Name)
		}
		if spec.Description == "" {
			t.Errorf("tool %q has no description", spec.Name)
		}
		if !strings.Contains(spec.Description, "USE WHEN:") {
			t.Errorf("tool %q description missing USE WHEN section", spec.Name)
		}
		if !spec.ReadOnly {
			t.Errorf("tool %q should be read-only; this server exposes no write operations", spec.Name)
		}
		if !spec.OpenWorld {
			t.Errorf("tool %q calls an external API and should be open-world", spec.Name)
		}
		if spec.Endpoint == "" {
			t.Errorf("tool %q has no endpoint", spec.Name)
		}
	}

	for _, want := range []string{
		"youtube_search_videos",
		"youtube_get_video_details",
		"youtube_get_channel_info",
		"youtube_get_video_comments",
		"youtube_get_trending_videos",
	} {
		if !seen[want] {
			t.Errorf("missing tool %q", want)
		}
	}
}

func TestBuildTool(t *testing.T) {
	registry := newTestRegistry(t)

	spec := ToolSpec{
		Name:        "youtube_search_videos",
		Title:       "Search Videos",
		Description: "Search YouTube for videos",
		Method:      "SearchVideos",
		Category:    "search",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	}

	tool := registry.buildTool(spec)

	if tool.Name != spec.Name {
		t.Errorf("Name = %q, want %q", tool.Name, spec.Name)
	}
	if tool.Description != spec.Description {
		t.Errorf("Description = %q", tool.Description)
	}
	if tool.Annotations == nil {
		t.Fatal("Annotations should not be nil")
	}
	if tool.Annotations.Title != spec.Title {
		t.Errorf("Title = %q", tool.Annotations.Title)
	}
	if !tool.Annotations.ReadOnlyHint {
		t.Error("ReadOnlyHint should be true")
	}
	if !tool.Annotations.IdempotentHint {
		t.Error("IdempotentHint should be true")
	}
	if tool.Annotations.OpenWorldHint == nil || !*tool.Annotations.OpenWorldHint {
		t.Error("OpenWorldHint should be true")
	}
}

func TestEnvelopeError(t *testing.T) {
	tests := []struct {
		name     string
		resp     youtube.Response
		wantMsg  string
		wantFail bool
	}{
		{
			name:     "error envelope",
			resp:     youtube.Response{"error": "HTTP error occurred: HTTP 403: Forbidden"},
			wantMsg:  "HTTP error occurred: HTTP 403: Forbidden",
			wantFail: true,
		},
		{
			name:     "successful response",
			resp:     youtube.Response{"kind": "youtube#searchListResponse", "items": []any{}},
			wantFail: false,
		},
		{
			name:     "error key among other keys is upstream data",
			resp:     youtube.Response{"error": "text", "items": []any{}},
			wantFail: false,
		},
		{
			name:     "non-string error value is upstream data",
			resp:     youtube.Response{"error": map[string]any{"code": float64(403)}},
			wantFail: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, failed := envelopeError(tt.resp)
			if failed != tt.wantFail {
				t.Errorf("failed = %v, want %v", failed, tt.wantFail)
			}
			if msg != tt.wantMsg {
				t.Errorf("msg = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}
