package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	subspedia "github.com/angelospk/subspedia-go"
	"github.com/angelospk/subspedia-go/internal/htmltext"
)

// wantJSON reports whether --json (or output.json) is set.
func wantJSON() bool {
	return viper.GetBool(CfgKeyJSON)
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeTable renders rows to the command's stdout: a rounded table on a
// terminal, tab-separated values otherwise so the output can be piped.
// Columns listed in right are right-aligned.
func writeTable(cmd *cobra.Command, headers []string, rows [][]string, right ...int) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(toRow(headers))
	for _, row := range rows {
		tw.AppendRow(toRow(row))
	}

	configs := make([]table.ColumnConfig, 0, len(right))
	for _, col := range right {
		configs = append(configs, table.ColumnConfig{Number: col, Align: text.AlignRight, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)

	out := cmd.OutOrStdout()
	if isTerminal(out) {
		fmt.Fprintln(out, tw.Render())
		return
	}
	fmt.Fprintln(out, tw.RenderTSV())
}

func toRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// displayStatus title-cases the status string the API returns in lower case
// ("in corso", "conclusa").
func displayStatus(status string) string {
	return cases.Title(language.Italian).String(status)
}

func uitoa(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}

func printSeries(cmd *cobra.Command, series []subspedia.Series) error {
	if wantJSON() {
		return writeJSON(cmd, series)
	}
	rows := make([][]string, 0, len(series))
	for _, s := range series {
		rows = append(rows, []string{uitoa(s.ID), s.Name, uitoa(s.Year), displayStatus(s.Status), uitoa(s.TheTVDBID)})
	}
	writeTable(cmd, []string{"ID", "Name", "Year", "Status", "TheTVDB"}, rows, 1, 3, 5)
	return nil
}

func printSubtitles(cmd *cobra.Command, subs []subspedia.Subtitle, details bool) error {
	if wantJSON() {
		return writeJSON(cmd, subs)
	}
	if len(subs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No subtitles found.")
		return nil
	}
	if details {
		out := cmd.OutOrStdout()
		for _, s := range subs {
			fmt.Fprintf(out, "%s %s - %s\n", s.SeriesName, s.EpisodeCode(), s.EpisodeTitle)
			fmt.Fprintf(out, "  Released: %s  Thanks: %d\n", s.ReleaseDate, s.Thanks)
			fmt.Fprintf(out, "  Download: %s\n", s.FileLink)
			if desc := htmltext.Plain(s.Description); desc != "" {
				fmt.Fprintf(out, "  %s\n", strings.ReplaceAll(desc, "\n", "\n  "))
			}
			fmt.Fprintln(out, "--------------------------------------------------")
		}
		return nil
	}

	rows := make([][]string, 0, len(subs))
	for _, s := range subs {
		rows = append(rows, []string{s.SeriesName, s.EpisodeCode(), s.EpisodeTitle, s.ReleaseDate, uitoa(s.Thanks), s.FileLink})
	}
	writeTable(cmd, []string{"Series", "Episode", "Title", "Released", "Thanks", "Download"}, rows, 5)
	return nil
}

func parseSeriesID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("invalid series id %q: must be a non-negative integer", arg)
	}
	return uint(id), nil
}
