package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"setlister/internal/workflow"
)

func writeSummary(w io.Writer, summary *workflow.Summary) {
	if summary.OutputFolderID == "" {
		fmt.Fprintln(w, "No folder links found in the agenda; nothing was copied.")
		return
	}
	if len(summary.Copies) == 0 {
		fmt.Fprintf(w, "Created empty output folder %s; no files matched the keywords.\n", summary.OutputFolderID)
		return
	}

	if isTerminalWriter(w) {
		fmt.Fprintln(w, renderCopyTable(summary))
	} else {
		for _, c := range summary.Copies {
			fmt.Fprintf(w, "%s <- %s\n", c.CopiedName, c.SourceName)
		}
	}
	fmt.Fprintf(w, "Copied %d files from %d folders into folder %s\n",
		len(summary.Copies), summary.FoldersWithMatches, summary.OutputFolderID)
}

func renderCopyTable(summary *workflow.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Copied Name", "Source", "Link"})

	for i, c := range summary.Copies {
		tw.AppendRow(table.Row{i + 1, c.CopiedName, c.SourceName, strconv.Itoa(c.LinkOrder + 1)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	return tw.Render()
}

func isTerminalWriter(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
