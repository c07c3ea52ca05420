// Command benchmark measures cache effectiveness against the live YouTube
// Data API. It requires YOUTUBE_API_KEY and spends real quota units.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/olgasafonova/youtube-mcp-server/internal/youtube"
)

func main() {
	config, err := youtube.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client := youtube.NewClient(config, youtube.WithLogger(logger))
	defer client.Close()
	ctx := context.Background()

	fmt.Println("=== Cache Performance Test ===")
	fmt.Println()

	// Video details is the cheapest call (1 quota unit) and is cached 15m.
	const videoID = "dQw4w9WgXcQ"

	fmt.Println("1. Video Details Cache Test:")
	start := time.Now()
	if _, err := client.VideoDetails(ctx, videoID); err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	firstCall := time.Since(start)
	fmt.Printf("   First call (network):  %v\n", firstCall)

	start = time.Now()
	_, _ = client.VideoDetails(ctx, videoID)
	secondCall := time.Since(start)
	fmt.Printf("   Second call (cached):  %v\n", secondCall)
	if secondCall > 0 {
		fmt.Printf("   Speedup: %.0fx faster\n", float64(firstCall)/float64(secondCall))
	}
	fmt.Println()

	// Search is the expensive call (100 quota units); run it once as a
	// latency baseline.
	fmt.Println("2. Search Performance (baseline):")
	start = time.Now()
	if _, err := client.Search(ctx, "golang", 10, "relevance"); err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   Search time: %v\n", time.Since(start))
	fmt.Println()

	fmt.Println("3. Trending Chart Performance:")
	start = time.Now()
	if _, err := client.TrendingVideos(ctx, "US", "", 10); err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   Trending time: %v\n", time.Since(start))
}
