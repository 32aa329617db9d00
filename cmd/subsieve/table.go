package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"subsieve/internal/batch"
	"subsieve/internal/language"
	"subsieve/internal/subtitles"
)

func newTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	return tw
}

// renderSummaryTable renders the aggregate counts of one batch run.
func renderSummaryTable(summary batch.Summary) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"Videos", "Subtitles written", "Failures"})
	tw.AppendRow(table.Row{
		strconv.Itoa(summary.Processed),
		strconv.Itoa(summary.Extracted),
		strconv.Itoa(summary.Failed),
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// renderStreamTable renders probed subtitle streams, one row per stream,
// with the human-readable name resolved from the language tag.
func renderStreamTable(streams []subtitles.StreamInfo) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"Index", "Codec", "Code", "Language", "Title"})
	for _, stream := range streams {
		tw.AppendRow(table.Row{
			strconv.Itoa(stream.Index),
			stream.Codec,
			stream.Language,
			language.DisplayName(stream.Language),
			stream.Title,
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
