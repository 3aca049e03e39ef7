package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"marquee/internal/transform"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show the latest transform quality report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			path := filepath.Join(cfg.Paths.DocsDir, "transform_quality.json")
			data, err := os.ReadFile(path)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("no quality report at %s; run the transform stage first", path)
				}
				return fmt.Errorf("read quality report: %w", err)
			}

			var quality transform.Quality
			if err := json.Unmarshal(data, &quality); err != nil {
				return fmt.Errorf("parse quality report %s: %w", path, err)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			printSection(out, "Row Counts", colorize)
			fmt.Fprintln(out, renderPairs("Table", "Rows", rowCountPairs(quality.RowCounts)))

			printSection(out, "Coverage", colorize)
			fmt.Fprintln(out, renderPairs("Check", "Movies", [][2]string{
				{"without genre", strconv.Itoa(quality.MoviesWithoutGenre)},
				{"without cast", strconv.Itoa(quality.MoviesWithoutCast)},
				{"without keywords", strconv.Itoa(quality.MoviesWithoutKeywords)},
				{"budget zero", strconv.Itoa(quality.BudgetZero)},
				{"revenue zero", strconv.Itoa(quality.RevenueZero)},
			}))

			printSection(out, "Anomalies", colorize)
			fmt.Fprintln(out, renderPairs("Anomaly", "Rows", [][2]string{
				{"movie rows dropped", strconv.Itoa(quality.Anomalies.MovieRowsDropped)},
				{"duplicate movie ids", strconv.Itoa(quality.Anomalies.DuplicateMovieIDs)},
				{"credit rows dropped", strconv.Itoa(quality.Anomalies.CreditRowsDropped)},
				{"cast without person id", strconv.Itoa(quality.Anomalies.CastWithoutPersonID)},
				{"crew without person id", strconv.Itoa(quality.Anomalies.CrewWithoutPersonID)},
				{"keyword rows dropped", strconv.Itoa(quality.Anomalies.KeywordRowsDropped)},
				{"bridge rows dropped", strconv.Itoa(quality.Anomalies.BridgeRowsDropped)},
				{"duplicate bridge ids", strconv.Itoa(quality.Anomalies.DuplicateBridgeIDs)},
			}))

			printSection(out, "Ratings Mapping", colorize)
			fmt.Fprintln(out, renderPairs("Metric", "Value", [][2]string{
				{"key column", quality.RatingsMapping.KeyColumn},
				{"matches catalog", strconv.Itoa(quality.RatingsMapping.MatchesCatalog)},
				{"missing in ratings", strconv.Itoa(quality.RatingsMapping.MissingInRatings)},
				{"missing in movies", strconv.Itoa(quality.RatingsMapping.MissingInMovies)},
				{"unmapped rating rows", strconv.Itoa(quality.RatingsMapping.UnmappedRatingRows)},
			}))

			return nil
		},
	}
}

func rowCountPairs(counts map[string]int) [][2]string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([][2]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, [2]string{name, strconv.Itoa(counts[name])})
	}
	return pairs
}

// renderPairs draws a rounded two-column table: left-aligned labels,
// right-aligned values. Every report section fits this shape.
func renderPairs(label, value string, pairs [][2]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{label, value})
	for _, pair := range pairs {
		tw.AppendRow(table.Row{pair[0], pair[1]})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

const (
	ansiReset = "\x1b[0m"
	ansiBlue  = "\x1b[34m"
)

func printSection(out io.Writer, title string, colorize bool) {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	if colorize {
		line = ansiBlue + line + ansiReset
	}
	fmt.Fprintln(out, line)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
