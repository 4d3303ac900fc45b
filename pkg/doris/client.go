package doris

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/dorisops/dorisctl/pkg/config"
	"github.com/dorisops/dorisctl/pkg/errkind"
	"github.com/go-sql-driver/mysql"
)

type (
	// Client owns at most one connection to a Doris FE over the MySQL wire
	// protocol. Operations that need a live connection open one lazily;
	// Connect replaces any prior handle. The client is not safe for
	// concurrent use — each invocation owns its own instance.
	Client struct {
		cfg config.Connection
		db  *sql.DB
	}

	// Row maps column names to driver-native values. []byte values are
	// normalized to string; everything else is passed through unchanged.
	Row = map[string]any

	// Result holds the rows of a query along with the column order
	// reported by the server.
	Result struct {
		Rows   []Row
		Fields []string
	}
)

// NewClient creates a client for the given connection parameters. No
// connection is opened until Connect or the first query.
func NewClient(cfg config.Connection) *Client {
	return &Client{cfg: cfg}
}

// FromDB wraps an already opened handle. Useful for callers that manage
// their own pool, and for tests that substitute a fake driver.
func FromDB(db *sql.DB, cfg config.Connection) *Client {
	return &Client{cfg: cfg, db: db}
}

// Config returns the connection parameters the client was built with.
func (c *Client) Config() config.Connection { return c.cfg }

// Connect opens a connection to the FE and verifies it with a ping. Any
// previously held handle is closed first. On failure the client is left
// disconnected; there is no retry.
func (c *Client) Connect(ctx context.Context) error {
	if c.db != nil {
		_ = c.db.Close()
		c.db = nil
	}

	db, err := sql.Open("mysql", c.dsn())
	if err != nil {
		return errkind.Wrap(errkind.Connection, "invalid connection parameters", err)
	}

	// One operation at a time, one connection at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		slog.Error("connect failed", "addr", c.cfg.Addr(), "err", err)
		return errkind.Wrap(errkind.Connection, "failed to connect to "+c.cfg.Addr(), err)
	}

	c.db = db
	return nil
}

// Close closes the active connection if any. It is idempotent; closing a
// disconnected client is a no-op.
func (c *Client) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// ensureConnected opens a connection if none is held. It is a single
// idempotent check, not retry logic.
func (c *Client) ensureConnected(ctx context.Context) error {
	if c.db != nil {
		return nil
	}
	return c.Connect(ctx)
}

// Query executes parameterized SQL and returns all rows plus the column
// order. It connects lazily when no connection is held. Driver errors are
// surfaced unchanged under the query kind.
func (c *Client) Query(ctx context.Context, query string, args ...any) (*Result, error) {
	if err := c.ensureConnected(ctx); err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Error("query failed", "err", err)
		return nil, errkind.Wrap(errkind.Query, "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	fields, err := rows.Columns()
	if err != nil {
		return nil, errkind.Wrap(errkind.Query, "failed to read column metadata", err)
	}

	result := &Result{Fields: fields}
	for rows.Next() {
		values := make([]any, len(fields))
		ptrs := make([]any, len(fields))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errkind.Wrap(errkind.Query, "failed to scan row", err)
		}

		row := make(Row, len(fields))
		for i, field := range fields {
			row[field] = normalizeValue(values[i])
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errkind.Wrap(errkind.Query, "failed to read rows", err)
	}

	return result, nil
}

// Exec executes a statement that produces no result set, connecting lazily
// when needed.
func (c *Client) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if err := c.ensureConnected(ctx); err != nil {
		return nil, err
	}

	res, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		slog.Error("exec failed", "err", err)
		return nil, errkind.Wrap(errkind.Query, "exec failed", err)
	}
	return res, nil
}

// dsn builds the driver DSN: UTF-8 charset, TLS disabled, connect timeout
// from the config. Client-side parameter interpolation is enabled since the
// FE has limited server-side prepare support.
func (c *Client) dsn() string {
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = c.cfg.Addr()
	mc.User = c.cfg.User
	mc.Passwd = c.cfg.Password
	mc.DBName = c.cfg.Database
	mc.Timeout = c.cfg.Timeout()
	mc.InterpolateParams = true
	mc.AllowNativePasswords = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
