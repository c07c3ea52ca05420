package youtube

// SearchVideosArgs contains parameters for video search.
type SearchVideosArgs struct {
	Query      string `json:"query" jsonschema:"required" jsonschema_description:"Search query string"`
	MaxResults int    `json:"max_results,omitempty" jsonschema_description:"Maximum number of results to return (1-50, default: 10; higher values are clamped to 50)"`
	Order      string `json:"order,omitempty" jsonschema_description:"Order of results: relevance, date, rating, title, viewCount (default: relevance)"`
}

// GetVideoDetailsArgs contains parameters for video details lookup.
type GetVideoDetailsArgs struct {
	VideoID string `json:"video_id" jsonschema:"required" jsonschema_description:"YouTube video ID (e.g., dQw4w9WgXcQ)"`
}

// GetChannelInfoArgs contains parameters for channel lookup.
type GetChannelInfoArgs struct {
	ChannelID string `json:"channel_id" jsonschema:"required" jsonschema_description:"YouTube channel ID (e.g., UC_x5XG1OV2P6uZZ5FSM9Ttw)"`
}

// GetVideoCommentsArgs contains parameters for comment retrieval.
type GetVideoCommentsArgs struct {
	VideoID    string `json:"video_id" jsonschema:"required" jsonschema_description:"YouTube video ID"`
	MaxResults int    `json:"max_results,omitempty" jsonschema_description:"Maximum number of comments to return (1-100, default: 20; higher values are clamped to 100)"`
	Order      string `json:"order,omitempty" jsonschema_description:"Order of comments: time, relevance (default: relevance)"`
}

// GetTrendingVideosArgs contains parameters for the trending chart.
type GetTrendingVideosArgs struct {
	RegionCode string `json:"region_code,omitempty" jsonschema_description:"ISO 3166-1 alpha-2 country code (default: US)"`
	CategoryID string `json:"category_id,omitempty" jsonschema_description:"Optional numeric video category ID to filter by"`
	MaxResults int    `json:"max_results,omitempty" jsonschema_description:"Maximum number of results to return (1-50, default: 10; higher values are clamped to 50)"`
}
