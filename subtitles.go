package subspedia

import "context"

// Methods related to subtitles (latest releases, per-series listings)

// LatestSubtitles retrieves the most recently released subtitles.
func (c *Client) LatestSubtitles(ctx context.Context) ([]Subtitle, error) {
	return Get(ctx, c, NewLatestSubtitlesRequest())
}

// SeriesSubtitles retrieves every subtitle released for the series with the given id.
func (c *Client) SeriesSubtitles(ctx context.Context, seriesID uint) ([]Subtitle, error) {
	return Get(ctx, c, NewSeriesSubtitlesRequest(seriesID))
}
