package subspedia

import (
	"github.com/google/go-querystring/query"

	"github.com/angelospk/subspedia-go/internal/constants"
)

// Kind identifies which endpoint a Request targets.
type Kind int

const (
	KindSeriesInTranslation Kind = iota + 1
	KindSeriesList
	KindLatestSubtitles
	KindSeriesSubtitles
)

func (k Kind) String() string {
	switch k {
	case KindSeriesInTranslation:
		return "series_in_translation"
	case KindSeriesList:
		return "series_list"
	case KindLatestSubtitles:
		return "latest_subtitles"
	case KindSeriesSubtitles:
		return "series_subtitles"
	default:
		return "unknown"
	}
}

// Request describes one API call. The type parameter is the record type the
// endpoint returns, so Get[T] can only decode what the request declares.
// Build values with the New*Request constructors.
type Request[T any] struct {
	kind     Kind
	path     string
	rawQuery string
}

// seriesSubtitlesParams is the query string of the per-series subtitle endpoint.
type seriesSubtitlesParams struct {
	Serie uint `url:"serie"`
}

// NewSeriesInTranslationRequest requests the series currently being translated.
func NewSeriesInTranslationRequest() Request[TranslatingSeries] {
	return Request[TranslatingSeries]{kind: KindSeriesInTranslation, path: constants.PathSeriesInTranslation}
}

// NewSeriesListRequest requests the full series catalog.
func NewSeriesListRequest() Request[Series] {
	return Request[Series]{kind: KindSeriesList, path: constants.PathSeriesList}
}

// NewLatestSubtitlesRequest requests the most recently released subtitles.
func NewLatestSubtitlesRequest() Request[Subtitle] {
	return Request[Subtitle]{kind: KindLatestSubtitles, path: constants.PathLatestSubtitles}
}

// NewSeriesSubtitlesRequest requests every subtitle released for the series with the given id.
func NewSeriesSubtitlesRequest(id uint) Request[Subtitle] {
	// A flat struct of integers always encodes.
	v, _ := query.Values(seriesSubtitlesParams{Serie: id})
	return Request[Subtitle]{kind: KindSeriesSubtitles, path: constants.PathSeriesSubtitles, rawQuery: v.Encode()}
}

// Kind reports which endpoint r targets.
func (r Request[T]) Kind() Kind {
	return r.kind
}

// URL returns the absolute endpoint URL on the public API host.
func (r Request[T]) URL() string {
	return r.urlFor(constants.DefaultBaseURL)
}

// urlFor resolves r against base, which must not end with a slash.
func (r Request[T]) urlFor(base string) string {
	u := base + r.path
	if r.rawQuery != "" {
		u += "?" + r.rawQuery
	}
	return u
}
