package main

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/Givikap120/beatmap-difficulty/app/settings"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

func float2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	return table
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func renderResults(w io.Writer, format string, results []result) error {
	if format == settings.OutputJSON {
		return writeJSON(w, results)
	}

	table := newTable(w, "Beatmap", "Mode", "Stars", "Aim", "Speed", "Colour", "Rhythm", "Stamina", "Max combo", "Objects")

	for _, r := range results {
		if r.err != nil {
			table.Append([]string{r.Name, r.Mode, "error", r.Error, "", "", "", "", "", ""})
			continue
		}

		attr := r.Attributes

		table.Append([]string{
			r.Name,
			r.Mode,
			float2(attr.StarRating),
			float2(attr.Aim),
			float2(attr.Speed),
			float2(attr.Colour),
			float2(attr.Rhythm),
			float2(attr.Stamina),
			humanize.Comma(int64(attr.MaxCombo)),
			humanize.Comma(int64(attr.ObjectCount)),
		})
	}

	table.Render()

	return nil
}
