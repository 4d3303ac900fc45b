package doris

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dorisops/dorisctl/pkg/errkind"
	"github.com/dorisops/dorisctl/pkg/utils"
)

// ImportOptions controls how a bulk-load statement is constructed.
type ImportOptions struct {
	// Format is the source file format (csv or orc). When empty it is
	// inferred from the file extension.
	Format string

	// Columns restricts the load to the named columns, in order.
	Columns []string

	// Separator is the column separator for delimited formats.
	Separator string

	// Where filters source rows; passed through as the load predicate.
	Where string
}

// BulkImport inserts rows into a table with a single multi-row statement.
// The table schema determines column order. The statement either succeeds
// atomically or the whole operation fails; there is no batching.
func (c *Client) BulkImport(ctx context.Context, database, table string, rows []Row) (int64, error) {
	if len(rows) == 0 {
		return 0, errkind.New(errkind.Validation, "no rows to import")
	}
	if err := utils.ValidIdentifier(database); err != nil {
		return 0, err
	}
	if err := utils.ValidIdentifier(table); err != nil {
		return 0, err
	}

	schema, err := c.GetTableSchema(ctx, database, table)
	if err != nil {
		return 0, err
	}
	if len(schema) == 0 {
		return 0, errkind.Newf(errkind.Validation, "table %s.%s has no columns", database, table)
	}

	columns := make([]string, len(schema))
	quoted := make([]string, len(schema))
	for i, col := range schema {
		columns[i] = col.Field
		quoted[i] = utils.Backtick(col.Field)
	}

	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",") + ")"
	placeholders := make([]string, len(rows))
	args := make([]any, 0, len(rows)*len(columns))
	for i, row := range rows {
		placeholders[i] = placeholder
		for _, col := range columns {
			args = append(args, row[col])
		}
	}

	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		utils.QualifiedName(database, table),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "))

	res, err := c.Exec(ctx, stmt, args...)
	if err != nil {
		return 0, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		// Some engines do not report affected counts for multi-row inserts.
		return int64(len(rows)), nil
	}
	return affected, nil
}

// ImportFromFile submits a cluster-native bulk-load statement for the given
// file. The load runs asynchronously under a timestamp-derived label; the
// returned rows are the engine's acknowledgment, and completion is tracked
// by the label, not by this call.
func (c *Client) ImportFromFile(ctx context.Context, database, table, path string, opts ImportOptions) (*Result, error) {
	if err := utils.ValidIdentifier(database); err != nil {
		return nil, err
	}
	if err := utils.ValidIdentifier(table); err != nil {
		return nil, err
	}

	stmt, _, err := buildLoadStatement(database, table, path, opts)
	if err != nil {
		return nil, err
	}
	return c.Query(ctx, stmt)
}

// buildLoadStatement constructs the LOAD LABEL text and returns it together
// with the generated label.
func buildLoadStatement(database, table, path string, opts ImportOptions) (string, string, error) {
	if strings.ContainsAny(path, `"`) {
		return "", "", errkind.Newf(errkind.Validation, "invalid file path %q", path)
	}
	for _, col := range opts.Columns {
		if err := utils.ValidIdentifier(col); err != nil {
			return "", "", err
		}
	}

	format := opts.Format
	if format == "" {
		format = inferFormat(path)
	}

	label := fmt.Sprintf("dorisctl_%s_%d", table, time.Now().UnixNano())

	var b strings.Builder
	fmt.Fprintf(&b, "LOAD LABEL %s.%s\n(\n", utils.Backtick(database), utils.Backtick(label))
	fmt.Fprintf(&b, "    DATA INFILE(%q)\n", path)
	fmt.Fprintf(&b, "    INTO TABLE %s\n", utils.Backtick(table))
	if opts.Separator != "" {
		fmt.Fprintf(&b, "    COLUMNS TERMINATED BY %q\n", opts.Separator)
	}
	fmt.Fprintf(&b, "    FORMAT AS %q\n", format)
	if len(opts.Columns) > 0 {
		quoted := make([]string, len(opts.Columns))
		for i, col := range opts.Columns {
			quoted[i] = utils.Backtick(col)
		}
		fmt.Fprintf(&b, "    (%s)\n", strings.Join(quoted, ", "))
	}
	if opts.Where != "" {
		fmt.Fprintf(&b, "    WHERE %s\n", opts.Where)
	}
	b.WriteString(")")

	return b.String(), label, nil
}

// inferFormat maps a file extension to a load format, defaulting to csv.
func inferFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".orc":
		return "orc"
	default:
		return "csv"
	}
}
