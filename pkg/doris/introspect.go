package doris

import (
	"context"
	"fmt"

	"github.com/dorisops/dorisctl/pkg/utils"
)

// ColumnInfo describes one column as reported by DESC.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default string
	Extra   string
}

// GetDatabases lists the databases visible to the connected user.
func (c *Client) GetDatabases(ctx context.Context) ([]string, error) {
	result, err := c.Query(ctx, "SHOW DATABASES")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		names = append(names, stringValue(row, result.Fields, "Database", "SCHEMA_NAME"))
	}
	return names, nil
}

// GetTables lists the tables of the given database.
func (c *Client) GetTables(ctx context.Context, database string) ([]string, error) {
	if err := utils.ValidIdentifier(database); err != nil {
		return nil, err
	}

	result, err := c.Query(ctx, "SHOW TABLES FROM "+utils.Backtick(database))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		names = append(names, stringValue(row, result.Fields, "Tables_in_"+database, "TABLE_NAME"))
	}
	return names, nil
}

// GetTableSchema describes the columns of a table in column order.
func (c *Client) GetTableSchema(ctx context.Context, database, table string) ([]ColumnInfo, error) {
	if err := utils.ValidIdentifier(database); err != nil {
		return nil, err
	}
	if err := utils.ValidIdentifier(table); err != nil {
		return nil, err
	}

	result, err := c.Query(ctx, "DESC "+utils.QualifiedName(database, table))
	if err != nil {
		return nil, err
	}

	columns := make([]ColumnInfo, 0, len(result.Rows))
	for _, row := range result.Rows {
		columns = append(columns, ColumnInfo{
			Field:   stringValue(row, result.Fields, "Field", "COLUMN_NAME"),
			Type:    stringValue(row, result.Fields, "Type", "COLUMN_TYPE"),
			Null:    stringValue(row, result.Fields, "Null", "IS_NULLABLE"),
			Key:     stringValue(row, result.Fields, "Key", "COLUMN_KEY"),
			Default: stringValue(row, result.Fields, "Default", "COLUMN_DEFAULT"),
			Extra:   stringValue(row, result.Fields, "Extra", "EXTRA"),
		})
	}
	return columns, nil
}

// GetVersion returns the server version string.
func (c *Client) GetVersion(ctx context.Context) (string, error) {
	result, err := c.Query(ctx, "SELECT version()")
	if err != nil {
		return "", err
	}
	if len(result.Rows) == 0 || len(result.Fields) == 0 {
		return "", nil
	}
	return toString(result.Rows[0][result.Fields[0]]), nil
}

// stringValue reads a cell by the primary key name, falling back to the
// alternate name and finally the first field. SHOW/DESC result shapes vary
// between server versions, hence the fallback.
func stringValue(row Row, fields []string, key, altKey string) string {
	if v, ok := row[key]; ok {
		return toString(v)
	}
	if v, ok := row[altKey]; ok {
		return toString(v)
	}
	if len(fields) > 0 {
		return toString(row[fields[0]])
	}
	return ""
}

func toString(v any) string {
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
