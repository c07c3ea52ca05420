package tools

// AllTools contains all tool specifications for the YouTube MCP server.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	{
		Name:     "youtube_search_videos",
		Method:   "SearchVideos",
		Title:    "Search Videos",
		Category: "search",
		Endpoint: "search",
		Description: `Search YouTube for videos matching a text query.

USE WHEN: User asks "find videos about X", "search YouTube for X", or wants a list of candidate videos on a topic.

NOT FOR: Looking up a video you already have the ID of (use youtube_get_video_details), or browsing what is popular right now (use youtube_get_trending_videos).

PARAMETERS:
- query: Search text (required)
- max_results: Max results, 1-50 (default 10; larger values are clamped to 50)
- order: relevance, date, rating, title, or viewCount (default relevance)

RETURNS: The raw YouTube API search response: a list of matching videos with snippet metadata (title, channel, description, thumbnails).`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_get_video_details",
		Method:   "GetVideoDetails",
		Title:    "Get Video Details",
		Category: "read",
		Endpoint: "videos",
		Description: `Get full metadata and statistics for one video by its ID.

USE WHEN: User has a specific video ID or URL and wants its title, description, duration, view count, like count, or other statistics.

NOT FOR: Finding videos by topic (use youtube_search_videos), or reading viewer comments (use youtube_get_video_comments).

PARAMETERS:
- video_id: YouTube video ID (required)

RETURNS: The raw YouTube API videos response with snippet, contentDetails, and statistics parts.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_get_channel_info",
		Method:   "GetChannelInfo",
		Title:    "Get Channel Info",
		Category: "read",
		Endpoint: "channels",
		Description: `Get metadata and statistics for a channel by its ID.

USE WHEN: User asks about a channel's subscriber count, total views, description, or upload playlist.

NOT FOR: Information about a single video (use youtube_get_video_details).

PARAMETERS:
- channel_id: YouTube channel ID (required)

RETURNS: The raw YouTube API channels response with snippet, statistics, and contentDetails parts.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_get_video_comments",
		Method:   "GetVideoComments",
		Title:    "Get Video Comments",
		Category: "read",
		Endpoint: "commentThreads",
		Description: `Get top-level comment threads for a video.

USE WHEN: User asks "what are people saying about this video", or wants viewer reactions and comment text.

NOT FOR: Video metadata or statistics (use youtube_get_video_details).

PARAMETERS:
- video_id: YouTube video ID (required)
- max_results: Max comments, 1-100 (default 20; larger values are clamped to 100)
- order: time or relevance (default relevance)

RETURNS: The raw YouTube API commentThreads response with comment snippets.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "youtube_get_trending_videos",
		Method:   "GetTrendingVideos",
		Title:    "Get Trending Videos",
		Category: "charts",
		Endpoint: "videos",
		Description: `Get the videos currently trending in a region.

USE WHEN: User asks "what's trending on YouTube", optionally in a specific country or category (e.g., music, gaming).

NOT FOR: Topic searches (use youtube_search_videos).

PARAMETERS:
- region_code: Two-letter country code (default US)
- category_id: Optional numeric video category ID filter
- max_results: Max results, 1-50 (default 10; larger values are clamped to 50)

RETURNS: The raw YouTube API mostPopular chart response with snippet, contentDetails, and statistics parts.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
