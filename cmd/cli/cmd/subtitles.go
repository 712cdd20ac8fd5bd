package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/angelospk/subspedia-go/pkg/core/matcher"
)

var (
	latestDetails    bool
	subtitlesDetails bool
	subtitlesSeason  int
	subtitlesEpisode int
)

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "List the most recently released subtitles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		subs, err := client.LatestSubtitles(context.Background())
		if err != nil {
			Logger.WithError(err).Error("Fetching latest subtitles failed")
			return fmt.Errorf("fetching latest subtitles failed: %w", err)
		}
		return printSubtitles(cmd, subs, latestDetails)
	},
}

var subtitlesCmd = &cobra.Command{
	Use:   "subtitles <series-id>",
	Short: "List the subtitles of a series",
	Long: `Lists every subtitle released for a series, optionally narrowed to
one season or one episode.

Examples:
  subspedia subtitles 500
  subspedia subtitles 500 --season 2 --episode 3 --details`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseSeriesID(args[0])
		if err != nil {
			return err
		}
		if subtitlesSeason < 0 || subtitlesEpisode < 0 {
			return fmt.Errorf("--season and --episode must not be negative")
		}
		if subtitlesEpisode > 0 && subtitlesSeason == 0 {
			Logger.Warn("--episode without --season matches that episode number in every season")
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		subs, err := client.SeriesSubtitles(context.Background(), id)
		if err != nil {
			Logger.WithError(err).WithField("series_id", id).Error("Fetching series subtitles failed")
			return fmt.Errorf("fetching subtitles for series %d failed: %w", id, err)
		}
		return printSubtitles(cmd, matcher.FilterEpisode(subs, subtitlesSeason, subtitlesEpisode), subtitlesDetails)
	},
}

func init() {
	RootCmd.AddCommand(latestCmd)
	RootCmd.AddCommand(subtitlesCmd)

	latestCmd.Flags().BoolVarP(&latestDetails, "details", "d", false, "Print descriptions and download links instead of a table")

	subtitlesCmd.Flags().BoolVarP(&subtitlesDetails, "details", "d", false, "Print descriptions and download links instead of a table")
	subtitlesCmd.Flags().IntVarP(&subtitlesSeason, "season", "s", 0, "Season number (0 for all)")
	subtitlesCmd.Flags().IntVarP(&subtitlesEpisode, "episode", "e", 0, "Episode number (0 for all)")
}
