package youtube

import (
	"context"
)

// MCP tool wrapper methods.
//
// Each wrapper validates non-numeric inputs, clamps result counts, performs
// the API call, and converts any transport or HTTP failure into the uniform
// {"error": "..."} envelope. Upstream failures are a tool RESULT, not a
// protocol error; only invalid input surfaces as an error to the MCP layer.

// SearchVideosMCP is the MCP wrapper for Search.
func (c *Client) SearchVideosMCP(ctx context.Context, args SearchVideosArgs) (Response, error) {
	if err := ValidateSearchQuery(args.Query); err != nil {
		return nil, err
	}
	order := args.Order
	if order == "" {
		order = DefaultOrder
	}
	if err := ValidateOrder(order, SearchOrders); err != nil {
		return nil, err
	}

	maxResults := ClampResults(args.MaxResults, DefaultSearchResults, MaxSearchResults)

	resp, err := c.Search(ctx, args.Query, maxResults, order)
	if err != nil {
		return ErrorEnvelope(err), nil
	}
	return resp, nil
}

// GetVideoDetailsMCP is the MCP wrapper for VideoDetails.
func (c *Client) GetVideoDetailsMCP(ctx context.Context, args GetVideoDetailsArgs) (Response, error) {
	if err := ValidateVideoID(args.VideoID); err != nil {
		return nil, err
	}

	resp, err := c.VideoDetails(ctx, args.VideoID)
	if err != nil {
		return ErrorEnvelope(err), nil
	}
	return resp, nil
}

// GetChannelInfoMCP is the MCP wrapper for ChannelInfo.
func (c *Client) GetChannelInfoMCP(ctx context.Context, args GetChannelInfoArgs) (Response, error) {
	if err := ValidateChannelID(args.ChannelID); err != nil {
		return nil, err
	}

	resp, err := c.ChannelInfo(ctx, args.ChannelID)
	if err != nil {
		return ErrorEnvelope(err), nil
	}
	return resp, nil
}

// GetVideoCommentsMCP is the MCP wrapper for VideoComments.
func (c *Client) GetVideoCommentsMCP(ctx context.Context, args GetVideoCommentsArgs) (Response, error) {
	if err := ValidateVideoID(args.VideoID); err != nil {
		return nil, err
	}
	order := args.Order
	if order == "" {
		order = DefaultOrder
	}
	if err := ValidateOrder(order, CommentOrders); err != nil {
		return nil, err
	}

	maxResults := ClampResults(args.MaxResults, DefaultCommentResults, MaxCommentResults)

	resp, err := c.VideoComments(ctx, args.VideoID, maxResults, order)
	if err != nil {
		return ErrorEnvelope(err), nil
	}
	return resp, nil
}

// GetTrendingVideosMCP is the MCP wrapper for TrendingVideos.
func (c *Client) GetTrendingVideosMCP(ctx context.Context, args GetTrendingVideosArgs) (Response, error) {
	region := args.RegionCode
	if region == "" {
		region = DefaultRegionCode
	}
	if err := ValidateRegionCode(region); err != nil {
		return nil, err
	}
	if err := ValidateCategoryID(args.CategoryID); err != nil {
		return nil, err
	}

	maxResults := ClampResults(args.MaxResults, DefaultTrendingResults, MaxTrendingResults)

	resp, err := c.TrendingVideos(ctx, region, args.CategoryID, maxResults)
	if err != nil {
		return ErrorEnvelope(err), nil
	}
	return resp, nil
}
