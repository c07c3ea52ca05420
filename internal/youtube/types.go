package youtube

// Response is the verbatim JSON payload returned by the YouTube Data API,
// decoded into a generic object. Tool results pass it through unmodified,
// or carry a single "error" key when the upstream call failed.
type Response map[string]any

// ErrorEnvelope converts a failed upstream call into the uniform error shape
// returned to MCP callers: one top-level "error" key, nothing else.
func ErrorEnvelope(err error) Response {
	return Response{"error": "HTTP error occurred: " + err.Error()}
}

// apiErrorBody matches the error document the Data API returns with
// non-2xx statuses.
type apiErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason  string `json:"reason"`
			Message string `json:"message"`
		} `json:"errors"`
	} `json:"error"`
}

// Result-count caps and defaults. Out-of-range values are clamped, never
// rejected.
const (
	MaxSearchResults       = 50
	MaxCommentResults      = 100
	MaxTrendingResults     = 50
	DefaultSearchResults   = 10
	DefaultCommentResults  = 20
	DefaultTrendingResults = 10

	DefaultRegionCode = "US"
	DefaultOrder      = "relevance"
)

// SearchOrders are the sort orders accepted by the search endpoint.
var SearchOrders = []string{"relevance", "date", "rating", "title", "viewCount"}

// CommentOrders are the sort orders accepted by the commentThreads endpoint.
var CommentOrders = []string{"time", "relevance"}

// Data API endpoints used by this server.
const (
	endpointSearch         = "search"
	endpointVideos         = "videos"
	endpointChannels       = "channels"
	endpointCommentThreads = "commentThreads"
)

// quotaCosts estimates Data API quota units per request, per Google's
// published cost table. Search is two orders of magnitude above list calls.
var quotaCosts = map[string]int{
	endpointSearch:         100,
	endpointVideos:         1,
	endpointChannels:       1,
	endpointCommentThreads: 1,
}

// QuotaCost returns the estimated quota units one request to endpoint spends.
func QuotaCost(endpoint string) int {
	if cost, ok := quotaCosts[endpoint]; ok {
		return cost
	}
	return 1
}
