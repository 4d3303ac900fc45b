package doris

import (
	"context"
	"os"
	"strings"

	"github.com/dorisops/dorisctl/pkg/consts"
	"github.com/pkg/errors"
)

// ExportOptions controls delimited-text export.
type ExportOptions struct {
	// Separator joins the cells of a row. Defaults to ",".
	Separator string

	// IncludeHeader emits the column names as the first line.
	IncludeHeader bool
}

// ExportToFile runs a query and writes the result as delimited text,
// overwriting any existing file. Values are joined verbatim — embedded
// separators are NOT escaped on this path; use render.EmitCSV when quoting
// matters. Returns the number of data rows written.
func (c *Client) ExportToFile(ctx context.Context, query, outPath string, opts ExportOptions) (int, error) {
	result, err := c.Query(ctx, query)
	if err != nil {
		return 0, err
	}

	sep := opts.Separator
	if sep == "" {
		sep = ","
	}

	var b strings.Builder
	if opts.IncludeHeader {
		b.WriteString(strings.Join(result.Fields, sep))
		b.WriteString("\n")
	}
	for _, row := range result.Rows {
		cells := make([]string, len(result.Fields))
		for i, field := range result.Fields {
			cells[i] = toString(row[field])
		}
		b.WriteString(strings.Join(cells, sep))
		b.WriteString("\n")
	}

	if err := os.WriteFile(outPath, []byte(b.String()), consts.ModeFile); err != nil {
		return 0, errors.Wrapf(err, "failed to write %s", outPath)
	}
	return len(result.Rows), nil
}
