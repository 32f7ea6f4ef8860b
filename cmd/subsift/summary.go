package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"subsift/internal/sweep"
)

// printSummary renders the fixed-order counter block. Terminals get a framed
// table; pipes and cron logs get the plain indented form so output stays
// grep-stable.
func printSummary(w io.Writer, stats sweep.Stats, targetDisplay string) {
	rows := stats.Rows(targetDisplay)

	if isTerminal(w) {
		tw := table.NewWriter()
		tw.SetStyle(table.StyleRounded)
		tw.SetTitle("Summary")
		for _, row := range rows {
			tw.AppendRow(table.Row{row[0], row[1]})
		}
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 2, Align: text.AlignRight},
		})
		fmt.Fprintln(w, tw.Render())
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary")
	for _, row := range rows {
		fmt.Fprintf(w, "  %s: %s\n", row[0], row[1])
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
