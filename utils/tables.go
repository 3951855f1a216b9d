package utils

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pvlab/engcalc/common"
)

// report rendering helpers, used to paste calculation results into
// technical reports

func formatCell(cell any) any {
	switch v := cell.(type) {
	case float64:
		return fmt.Sprintf("%3.2f", v)
	case float32:
		return fmt.Sprintf("%3.2f", v)
	default:
		return cell
	}
}

func NumberedList(items []string) string {
	w := table.NewWriter()
	for i, item := range items {
		w.AppendRow(table.Row{i, item})
	}
	return w.Render()
}

func TextTable(rows [][]any) string {
	w := table.NewWriter()
	for _, row := range rows {
		cells := make(table.Row, 0, len(row))
		for _, cell := range row {
			cells = append(cells, formatCell(cell))
		}
		w.AppendRow(cells)
	}
	return w.Render()
}

// MarkdownTable renders numeric rows with a header line and a row-name
// first column.
func MarkdownTable(header []string, rowNames []string, rows [][]float64) (string, error) {
	if len(rowNames) != len(rows) {
		return "", common.ErrorInvalidType
	}

	w := table.NewWriter()

	headerRow := make(table.Row, 0, len(header)+1)
	headerRow = append(headerRow, "")
	for _, h := range header {
		headerRow = append(headerRow, h)
	}
	w.AppendHeader(headerRow)

	for i, row := range rows {
		cells := make(table.Row, 0, len(row)+1)
		cells = append(cells, rowNames[i])
		for _, cell := range row {
			cells = append(cells, fmt.Sprintf("%3.4f", cell))
		}
		w.AppendRow(cells)
	}

	return w.RenderMarkdown(), nil
}

func CSVTable(rows [][]any) string {
	w := table.NewWriter()
	for _, row := range rows {
		w.AppendRow(table.Row(row))
	}
	return w.RenderCSV()
}
