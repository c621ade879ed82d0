package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dshills/askroute/pkg/types"
)

const maxCellWidth = 60

func renderTable(w io.Writer, headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)

	headerRow := make(table.Row, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range headers {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		t.AppendRow(r)
	}
	t.Render()
}

func statsHeaders() []string {
	return []string{"Provider", "Calls", "Errors", "Error Rate", "Avg Latency", "Last Used"}
}

func statsRows(snapshot map[string]types.ProviderStat) [][]string {
	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		s := snapshot[name]
		last := "-"
		if !s.LastUsed.IsZero() {
			last = s.LastUsed.Format("15:04:05")
		}
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%d", s.Calls),
			fmt.Sprintf("%d", s.Errors),
			fmt.Sprintf("%.0f%%", s.ErrorRate()*100),
			fmt.Sprintf("%.0fms", s.AvgLatencyMs),
			last,
		})
	}
	return rows
}

func hitRows(hits []types.Hit) [][]string {
	rows := make([][]string, 0, len(hits))
	for _, h := range hits {
		rows = append(rows, []string{h.Provider, truncate(h.Title, maxCellWidth), h.URL})
	}
	return rows
}

func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-3]) + "..."
}
