package render

import (
	"fmt"
	"io"

	"github.com/dorisops/dorisctl/pkg/doris"
	"github.com/olekukonko/tablewriter"
)

// Table renders headers and rows as an aligned text table.
func Table(w io.Writer, headers []string, rows [][]string) {
	t := tablewriter.NewWriter(w)
	t.SetHeader(headers)
	t.SetAutoWrapText(false)
	t.SetAutoFormatHeaders(false)
	t.AppendBulk(rows)
	t.Render()
}

// ResultTable renders a query result, preserving the server's column order.
func ResultTable(w io.Writer, result *doris.Result) {
	rows := make([][]string, len(result.Rows))
	for i, row := range result.Rows {
		cells := make([]string, len(result.Fields))
		for j, field := range result.Fields {
			cells[j] = CellString(row[field])
		}
		rows[i] = cells
	}
	Table(w, result.Fields, rows)
}

// CellString renders one cell value for display. NULL renders as an empty
// cell.
func CellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}
