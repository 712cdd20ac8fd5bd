package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/angelospk/subspedia-go/pkg/core/matcher"
)

var matchCmd = &cobra.Command{
	Use:   "match <release-file>",
	Short: "Find Subspedia subtitles for a video release",
	Long: `Reads the series title, season and episode from a release file name,
finds the series in the catalog and lists the subtitles for that episode.

Example:
  subspedia match Breaking.Bad.S01E02.720p.HDTV.x264-CTU.mkv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		m, err := matcher.New(client, Logger).Match(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("match failed: %w", err)
		}

		if wantJSON() {
			return writeJSON(cmd, m)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Release: %s (season %d, episode %d)\n", m.Release.Title, m.Release.Season, m.Release.Episode)
		fmt.Fprintf(cmd.OutOrStdout(), "Series:  %s\n", m.Series)
		return printSubtitles(cmd, m.Subtitles, false)
	},
}

func init() {
	RootCmd.AddCommand(matchCmd)
}
