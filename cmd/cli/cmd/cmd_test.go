package cmd_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	subspedia "github.com/angelospk/subspedia-go"
	clicmd "github.com/angelospk/subspedia-go/cmd/cli/cmd"
)

// MockClient is a mock implementation of clicmd.SubspediaClient using testify/mock
type MockClient struct {
	mock.Mock
}

var _ clicmd.SubspediaClient = (*MockClient)(nil)

func (m *MockClient) SeriesInTranslation(ctx context.Context) ([]subspedia.TranslatingSeries, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]subspedia.TranslatingSeries), args.Error(1)
}

func (m *MockClient) SeriesList(ctx context.Context) ([]subspedia.Series, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]subspedia.Series), args.Error(1)
}

func (m *MockClient) LatestSubtitles(ctx context.Context) ([]subspedia.Subtitle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]subspedia.Subtitle), args.Error(1)
}

func (m *MockClient) SeriesSubtitles(ctx context.Context, seriesID uint) ([]subspedia.Subtitle, error) {
	args := m.Called(ctx, seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]subspedia.Subtitle), args.Error(1)
}

func (m *MockClient) SearchByName(ctx context.Context, name string) ([]subspedia.Series, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]subspedia.Series), args.Error(1)
}

func (m *MockClient) SearchByID(ctx context.Context, id uint) (subspedia.Series, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(subspedia.Series), args.Error(1)
}

// resetFlags restores every flag to its default so runs do not leak into each other.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs the CLI with args against client and returns stdout.
func executeCommand(t *testing.T, client clicmd.SubspediaClient, args ...string) (string, error) {
	t.Helper()

	original := clicmd.NewSubspediaClientFunc
	t.Cleanup(func() { clicmd.NewSubspediaClientFunc = original })
	clicmd.NewSubspediaClientFunc = func(cfg subspedia.Config) (clicmd.SubspediaClient, error) {
		return client, nil
	}

	resetFlags(clicmd.RootCmd)
	outBuf := bytes.NewBufferString("")
	errBuf := bytes.NewBufferString("")
	clicmd.RootCmd.SetOut(outBuf)
	clicmd.RootCmd.SetErr(errBuf)
	clicmd.RootCmd.SetArgs(args)

	err := clicmd.RootCmd.Execute()

	clicmd.RootCmd.SetArgs([]string{})
	return outBuf.String(), err
}

var catalog = []subspedia.Series{
	{ID: 10, Name: "Breaking Bad", Year: 2008, Status: "Conclusa", TheTVDBID: 81189},
	{ID: 11, Name: "Dark", Year: 2017, Status: "Conclusa", TheTVDBID: 334824},
}

func TestSeriesCommand(t *testing.T) {
	client := new(MockClient)
	client.On("SeriesList", mock.Anything).Return(catalog, nil).Once()

	output, err := executeCommand(t, client, "series")
	require.NoError(t, err)
	assert.Contains(t, output, "Breaking Bad")
	assert.Contains(t, output, "334824")
	client.AssertExpectations(t)
}

func TestSeriesCommandJSON(t *testing.T) {
	client := new(MockClient)
	client.On("SeriesList", mock.Anything).Return(catalog, nil).Once()

	output, err := executeCommand(t, client, "series", "--json")
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Dark", decoded[1]["nome_serie"])
}

func TestTranslatingCommand(t *testing.T) {
	client := new(MockClient)
	client.On("SeriesInTranslation", mock.Anything).Return([]subspedia.TranslatingSeries{
		{ID: 102, Name: "The Walking Dead", Season: 9, Episode: 14, Status: "in traduzione"},
	}, nil).Once()

	output, err := executeCommand(t, client, "translating")
	require.NoError(t, err)
	assert.Contains(t, output, "The Walking Dead")
	assert.Contains(t, output, "S09E14")
	assert.Contains(t, output, "In Traduzione")
}

func TestSearchCommand(t *testing.T) {
	client := new(MockClient)
	client.On("SearchByName", mock.Anything, "breaking").Return(catalog[:1], nil).Once()

	output, err := executeCommand(t, client, "search", "breaking")
	require.NoError(t, err)
	assert.Contains(t, output, "Breaking Bad")
	assert.NotContains(t, output, "Dark")
}

func TestSearchCommandNotFound(t *testing.T) {
	client := new(MockClient)
	notFound := &subspedia.FetchError{Kind: subspedia.KindNotFound, Message: "Series with name Lost not found"}
	client.On("SearchByName", mock.Anything, "Lost").Return(nil, notFound).Once()

	_, err := executeCommand(t, client, "search", "Lost")
	require.Error(t, err)
	assert.ErrorIs(t, err, subspedia.ErrNotFound)
	assert.Contains(t, err.Error(), "Series with name Lost not found")
}

func TestShowCommand(t *testing.T) {
	client := new(MockClient)
	client.On("SearchByID", mock.Anything, uint(11)).Return(catalog[1], nil).Once()

	output, err := executeCommand(t, client, "show", "11")
	require.NoError(t, err)
	assert.Contains(t, output, "Dark")
	assert.Contains(t, output, "2017")
}

func TestShowCommandInvalidID(t *testing.T) {
	client := new(MockClient)

	_, err := executeCommand(t, client, "show", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid series id")
	client.AssertNotCalled(t, "SearchByID", mock.Anything, mock.Anything)
}

var subtitles = []subspedia.Subtitle{
	{SeriesID: 10, SeriesName: "Breaking Bad", Season: 1, Episode: 1, EpisodeTitle: "Pilot", Description: "Walter &amp; Jesse<br>cucinano", FileLink: "https://example.org/1x01.srt"},
	{SeriesID: 10, SeriesName: "Breaking Bad", Season: 2, Episode: 1, EpisodeTitle: "Seven Thirty-Seven", FileLink: "https://example.org/2x01.srt"},
}

func TestSubtitlesCommandFiltersSeason(t *testing.T) {
	client := new(MockClient)
	client.On("SeriesSubtitles", mock.Anything, uint(10)).Return(subtitles, nil).Once()

	output, err := executeCommand(t, client, "subtitles", "10", "--season", "2")
	require.NoError(t, err)
	assert.Contains(t, output, "Seven Thirty-Seven")
	assert.NotContains(t, output, "Pilot")
}

func TestSubtitlesCommandNoMatches(t *testing.T) {
	client := new(MockClient)
	client.On("SeriesSubtitles", mock.Anything, uint(10)).Return(subtitles, nil).Once()

	output, err := executeCommand(t, client, "subtitles", "10", "--season", "7")
	require.NoError(t, err)
	assert.Contains(t, output, "No subtitles found.")
}

func TestLatestCommandDetails(t *testing.T) {
	client := new(MockClient)
	client.On("LatestSubtitles", mock.Anything).Return(subtitles[:1], nil).Once()

	output, err := executeCommand(t, client, "latest", "--details")
	require.NoError(t, err)
	assert.Contains(t, output, "Breaking Bad S01E01 - Pilot")
	assert.Contains(t, output, "\n  Walter & Jesse\n  cucinano\n")
	assert.Contains(t, output, "Download: https://example.org/1x01.srt")
}

func TestLatestCommandFetchError(t *testing.T) {
	client := new(MockClient)
	httpErr := &subspedia.FetchError{Kind: subspedia.KindHTTP}
	client.On("LatestSubtitles", mock.Anything).Return(nil, httpErr).Once()

	_, err := executeCommand(t, client, "latest")
	require.Error(t, err)
	assert.ErrorIs(t, err, subspedia.ErrHTTP)
}

func TestMatchCommand(t *testing.T) {
	client := new(MockClient)
	client.On("SearchByName", mock.Anything, "Breaking Bad").Return(catalog[:1], nil).Once()
	client.On("SeriesSubtitles", mock.Anything, uint(10)).Return(subtitles, nil).Once()

	output, err := executeCommand(t, client, "match", "Breaking.Bad.S02E01.720p.HDTV.x264.mkv")
	require.NoError(t, err)
	assert.Contains(t, output, "Series:  Breaking Bad (2008) [id 10]")
	assert.Contains(t, output, "Seven Thirty-Seven")
	assert.NotContains(t, output, "Pilot")
	client.AssertExpectations(t)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := executeCommand(t, new(MockClient), "series", "--log-level", "chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestClientConfigFromFlags(t *testing.T) {
	client := new(MockClient)
	client.On("SeriesList", mock.Anything).Return(catalog, nil).Once()

	var got subspedia.Config
	original := clicmd.NewSubspediaClientFunc
	t.Cleanup(func() { clicmd.NewSubspediaClientFunc = original })

	resetFlags(clicmd.RootCmd)
	clicmd.NewSubspediaClientFunc = func(cfg subspedia.Config) (clicmd.SubspediaClient, error) {
		got = cfg
		return client, nil
	}
	clicmd.RootCmd.SetOut(bytes.NewBufferString(""))
	clicmd.RootCmd.SetErr(bytes.NewBufferString(""))
	clicmd.RootCmd.SetArgs([]string{"series", "--base-url", "http://localhost:9999/API", "--timeout", "5s"})
	t.Cleanup(func() { clicmd.RootCmd.SetArgs([]string{}) })

	require.NoError(t, clicmd.RootCmd.Execute())
	assert.Equal(t, "http://localhost:9999/API", got.BaseURL)
	assert.Equal(t, 5*time.Second, got.Timeout)
	assert.Same(t, clicmd.Logger, got.Logger)
}
