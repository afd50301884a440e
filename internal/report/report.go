package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"romfilter/internal/dedupe"
)

// Prefix returns the one-character marker for a status.
func Prefix(status dedupe.Status) string {
	switch status {
	case dedupe.StatusRemove:
		return "-"
	case dedupe.StatusUnknown:
		return "?"
	case dedupe.StatusKeep:
		return " "
	default:
		panic(fmt.Sprintf("report: unhandled status %d", status))
	}
}

// Render emits one "<prefix> <name>" line per file, in listing order.
func Render(result dedupe.Result) string {
	var b strings.Builder
	for i, name := range result.Names {
		b.WriteString(Prefix(result.Statuses[i]))
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteByte('\n')
	}
	return b.String()
}

// Summary renders the status counts of a run as a table.
func Summary(counts dedupe.Counts) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Status", "Files"})
	tw.AppendRow(table.Row{"kept", strconv.Itoa(counts.Keep)})
	tw.AppendRow(table.Row{"removed", strconv.Itoa(counts.Remove)})
	if counts.Unknown > 0 {
		tw.AppendRow(table.Row{"unknown", strconv.Itoa(counts.Unknown)})
	}
	tw.AppendFooter(table.Row{"total", strconv.Itoa(counts.Total())})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	return tw.Render()
}
