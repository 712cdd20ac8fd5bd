// Package matcher links a video release name to a Subspedia series and the
// subtitles released for the same episode.
package matcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	ptn "github.com/razsteinmetz/go-ptn"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/cases"

	subspedia "github.com/angelospk/subspedia-go"
)

// ErrNoTitle is returned when no series title can be read from the release name.
var ErrNoTitle = errors.New("matcher: no title found in release name")

// ErrNoSubtitles is returned when the series exists but has no subtitle for the episode.
var ErrNoSubtitles = errors.New("matcher: no subtitles for this episode")

// SubspediaClient defines the methods needed from the Subspedia client.
type SubspediaClient interface {
	SearchByName(ctx context.Context, name string) ([]subspedia.Series, error)
	SeriesSubtitles(ctx context.Context, seriesID uint) ([]subspedia.Subtitle, error)
}

// Release holds what could be read from a release file name.
type Release struct {
	FileName   string `json:"fileName"`
	Title      string `json:"title"`
	Year       int    `json:"year,omitempty"`
	Season     int    `json:"season,omitempty"`
	Episode    int    `json:"episode,omitempty"`
	Resolution string `json:"resolution,omitempty"` // e.g., "1080p", "720p"
	Source     string `json:"source,omitempty"`     // e.g., "WEB-DL", "HDTV"
	Group      string `json:"group,omitempty"`
}

// Match is the outcome of matching a release.
type Match struct {
	Release   Release              `json:"release"`
	Series    subspedia.Series     `json:"series"`
	Subtitles []subspedia.Subtitle `json:"subtitles"`
}

// ParseRelease extracts title, season and episode from a release file name.
// When the name cannot be parsed the title falls back to the base name with
// dots replaced by spaces.
func ParseRelease(fileName string) Release {
	base := filepath.Base(fileName)
	r := Release{FileName: base}

	parsed, err := ptn.Parse(base)
	if err != nil {
		log.Warnf("Failed to parse release name '%s': %v", base, err)
		r.Title = strings.ReplaceAll(strings.TrimSuffix(base, filepath.Ext(base)), ".", " ")
		return r
	}

	r.Title = strings.TrimSpace(parsed.Title)
	r.Year = parsed.Year
	r.Season = parsed.Season
	r.Episode = parsed.Episode
	r.Resolution = parsed.Resolution
	r.Source = parsed.Quality
	r.Group = parsed.Group
	return r
}

// Matcher resolves releases against the Subspedia catalog.
type Matcher struct {
	client SubspediaClient
	logger *log.Logger
}

// New creates a Matcher. A nil logger uses the logrus standard logger.
func New(client SubspediaClient, logger *log.Logger) *Matcher {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Matcher{client: client, logger: logger}
}

// Match finds the series named in fileName and the subtitles for its season
// and episode. A release without an episode number matches the whole season;
// one without a season matches every subtitle of the series.
func (m *Matcher) Match(ctx context.Context, fileName string) (*Match, error) {
	release := ParseRelease(fileName)
	if release.Title == "" {
		return nil, ErrNoTitle
	}

	entry := m.logger.WithFields(log.Fields{
		"file":    release.FileName,
		"title":   release.Title,
		"season":  release.Season,
		"episode": release.Episode,
	})
	entry.Info("Matching release")

	candidates, err := m.client.SearchByName(ctx, release.Title)
	if err != nil {
		return nil, fmt.Errorf("search series %q: %w", release.Title, err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("search series %q: %w", release.Title, subspedia.ErrNotFound)
	}
	series := BestSeries(candidates, release)
	entry.WithField("series_id", series.ID).Infof("Selected series '%s' among %d candidates", series.Name, len(candidates))

	subs, err := m.client.SeriesSubtitles(ctx, series.ID)
	if err != nil {
		return nil, fmt.Errorf("list subtitles for series %d: %w", series.ID, err)
	}

	matched := FilterEpisode(subs, release.Season, release.Episode)
	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: %s S%02dE%02d", ErrNoSubtitles, series.Name, release.Season, release.Episode)
	}

	return &Match{Release: release, Series: series, Subtitles: matched}, nil
}

// BestSeries picks the candidate that fits release best: an exact name match
// beats a partial one, and a matching year breaks ties. Earlier candidates
// win remaining ties. candidates must not be empty.
func BestSeries(candidates []subspedia.Series, release Release) subspedia.Series {
	fold := cases.Fold()
	title := fold.String(release.Title)

	best, bestScore := candidates[0], -1
	for _, s := range candidates {
		score := 0
		if fold.String(s.Name) == title {
			score += 2
		}
		if release.Year > 0 && int(s.Year) == release.Year {
			score++
		}
		if score > bestScore {
			best, bestScore = s, score
		}
	}
	return best
}

// FilterEpisode keeps the subtitles for season and episode. Zero means any.
func FilterEpisode(subs []subspedia.Subtitle, season, episode int) []subspedia.Subtitle {
	var out []subspedia.Subtitle
	for _, s := range subs {
		if season > 0 && int(s.Season) != season {
			continue
		}
		if episode > 0 && int(s.Episode) != episode {
			continue
		}
		out = append(out, s)
	}
	return out
}
