package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	subspedia "github.com/angelospk/subspedia-go"
)

var translatingCmd = &cobra.Command{
	Use:   "translating",
	Short: "List the series whose next episode is being translated",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		series, err := client.SeriesInTranslation(context.Background())
		if err != nil {
			Logger.WithError(err).Error("Fetching series in translation failed")
			return fmt.Errorf("fetching series in translation failed: %w", err)
		}

		if wantJSON() {
			return writeJSON(cmd, series)
		}
		rows := make([][]string, 0, len(series))
		for _, s := range series {
			rows = append(rows, []string{uitoa(s.ID), s.Name, fmt.Sprintf("S%02dE%02d", s.Season, s.Episode), displayStatus(s.Status)})
		}
		writeTable(cmd, []string{"ID", "Name", "Episode", "Status"}, rows, 1)
		return nil
	},
}

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "List the full series catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		series, err := client.SeriesList(context.Background())
		if err != nil {
			Logger.WithError(err).Error("Fetching series catalog failed")
			return fmt.Errorf("fetching series catalog failed: %w", err)
		}
		return printSeries(cmd, series)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search the catalog by series name",
	Long: `Searches the series catalog for names containing the given text,
ignoring case. An empty name lists the whole catalog.

Examples:
  subspedia search "breaking bad"
  subspedia search dark --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		Logger.WithField("query", args[0]).Info("Searching series...")
		series, err := client.SearchByName(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("series search failed: %w", err)
		}
		return printSeries(cmd, series)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <series-id>",
	Short: "Show one series from the catalog by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseSeriesID(args[0])
		if err != nil {
			return err
		}
		client, err := newClient()
		if err != nil {
			return err
		}

		series, err := client.SearchByID(context.Background(), id)
		if err != nil {
			return fmt.Errorf("series lookup failed: %w", err)
		}
		return printSeries(cmd, []subspedia.Series{series})
	},
}

func init() {
	RootCmd.AddCommand(translatingCmd)
	RootCmd.AddCommand(seriesCmd)
	RootCmd.AddCommand(searchCmd)
	RootCmd.AddCommand(showCmd)
}
