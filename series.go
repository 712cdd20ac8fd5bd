package subspedia

import (
	"context"
	"strings"
)

// Methods related to series (translation status, catalog, search)

// SeriesInTranslation retrieves the series whose next episode is being translated.
func (c *Client) SeriesInTranslation(ctx context.Context) ([]TranslatingSeries, error) {
	return Get(ctx, c, NewSeriesInTranslationRequest())
}

// SeriesList retrieves the full series catalog.
func (c *Client) SeriesList(ctx context.Context) ([]Series, error) {
	return Get(ctx, c, NewSeriesListRequest())
}

// SearchByName returns every catalog entry whose name contains name,
// compared case-insensitively. An empty name matches the whole catalog.
// It fails with KindNotFound when nothing matches.
func (c *Client) SearchByName(ctx context.Context, name string) ([]Series, error) {
	catalog, err := c.SeriesList(ctx)
	if err != nil {
		return nil, err
	}

	matches := FilterByName(catalog, name)
	if len(matches) == 0 {
		return nil, notFoundError("Series with name %s not found", name)
	}
	c.logger.WithField("query", name).WithField("count", len(matches)).Debug("Series found by name")
	return matches, nil
}

// SearchByID returns the catalog entry with the given id. If the catalog
// lists the id more than once the last entry wins.
// It fails with KindNotFound when the id is absent.
func (c *Client) SearchByID(ctx context.Context, id uint) (Series, error) {
	catalog, err := c.SeriesList(ctx)
	if err != nil {
		return Series{}, err
	}

	s, ok := FindByID(catalog, id)
	if !ok {
		return Series{}, notFoundError("Series with id %d not found.", id)
	}
	return s, nil
}

// FilterByName keeps the entries of catalog whose lower-cased name contains
// the lower-cased name, preserving catalog order.
func FilterByName(catalog []Series, name string) []Series {
	needle := strings.ToLower(name)

	var matches []Series
	for _, s := range catalog {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			matches = append(matches, s)
		}
	}
	return matches
}

// FindByID returns the last entry of catalog whose ID equals id.
func FindByID(catalog []Series, id uint) (Series, bool) {
	for i := len(catalog) - 1; i >= 0; i-- {
		if catalog[i].ID == id {
			return catalog[i], true
		}
	}
	return Series{}, false
}

// SearchByName calls Client.SearchByName on DefaultClient.
func SearchByName(ctx context.Context, name string) ([]Series, error) {
	return DefaultClient().SearchByName(ctx, name)
}

// SearchByID calls Client.SearchByID on DefaultClient.
func SearchByID(ctx context.Context, id uint) (Series, error) {
	return DefaultClient().SearchByID(ctx, id)
}
