// Package subspedia is a client for the Subspedia JSON API: the series
// catalog, the series currently in translation, and their Italian subtitles.
//
//	series, err := subspedia.SearchByName(ctx, "breaking")
//	subs, err := subspedia.Get(ctx, nil, subspedia.NewSeriesSubtitlesRequest(series[0].ID))
package subspedia

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/angelospk/subspedia-go/internal/constants"
	"github.com/angelospk/subspedia-go/internal/httpclient"
)

// Config holds the configuration for the Subspedia client.
type Config struct {
	BaseURL    string        // Optional: override the default API base URL
	UserAgent  string        // Optional: defaults to constants.DefaultUserAgent
	HTTPClient *http.Client  // Optional: defaults to a fresh http.Client
	Timeout    time.Duration // Optional: applied to the default HTTP client only; zero means none
	Logger     *logrus.Logger
}

// Client is the Subspedia API client. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *httpclient.Client
	logger     *logrus.Logger
}

// NewClient creates a new Subspedia API client.
func NewClient(config Config) (*Client, error) {
	baseURL := constants.DefaultBaseURL
	if config.BaseURL != "" {
		parsed, err := url.ParseRequestURI(config.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid BaseURL provided: %w", err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return nil, errors.New("invalid BaseURL provided: scheme and host are required")
		}
		baseURL = strings.TrimRight(config.BaseURL, "/")
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = constants.DefaultUserAgent
	}

	hc := config.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: config.Timeout}
	}

	logger := config.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpclient.New(hc, userAgent),
		logger:     logger,
	}, nil
}

// BaseURL returns the API base URL the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

var (
	defaultOnce   sync.Once
	defaultClient *Client
)

// DefaultClient returns the shared client used by the package-level functions.
// It talks to the public API host with no timeout and a silent logger.
func DefaultClient() *Client {
	defaultOnce.Do(func() {
		// The zero Config is always valid.
		defaultClient, _ = NewClient(Config{})
	})
	return defaultClient
}
