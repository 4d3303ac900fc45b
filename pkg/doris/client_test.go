package doris

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dorisops/dorisctl/pkg/config"
	"github.com/dorisops/dorisctl/pkg/errkind"
	"github.com/stretchr/testify/require"
)

func mockClient(t *testing.T) (*Client, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &Client{db: db}, mock
}

func TestCloseIdempotent(t *testing.T) {
	t.Run("never connected", func(t *testing.T) {
		c := NewClient(config.Connection{})
		require.NoError(t, c.Close())
		require.NoError(t, c.Close())
	})

	t.Run("after connect", func(t *testing.T) {
		c, mock := mockClient(t)
		mock.ExpectClose()

		require.NoError(t, c.Close())
		require.NoError(t, c.Close())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestQuery(t *testing.T) {
	c, mock := mockClient(t)
	mock.ExpectQuery("SELECT id, name FROM t").WillReturnRows(
		sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), []byte("alpha")).
			AddRow(int64(2), nil))

	result, err := c.Query(context.Background(), "SELECT id, name FROM t")
	require.NoError(t, err)
	require.Equal(t, []string{"id", "name"}, result.Fields)
	require.Len(t, result.Rows, 2)
	require.Equal(t, int64(1), result.Rows[0]["id"])
	// []byte values are normalized to string.
	require.Equal(t, "alpha", result.Rows[0]["name"])
	require.Nil(t, result.Rows[1]["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryError(t *testing.T) {
	c, mock := mockClient(t)
	mock.ExpectQuery("SELECT boom").WillReturnError(errkind.New(errkind.Query, "syntax"))

	_, err := c.Query(context.Background(), "SELECT boom")
	require.Error(t, err)
	require.True(t, errkind.Is(err, errkind.Query))
}

func TestLazyConnectUnreachable(t *testing.T) {
	// No prior Connect: Query must attempt a lazy connect and surface a
	// connection-kind error when the host is unreachable.
	c := NewClient(config.Connection{Host: "127.0.0.1", Port: 1, User: "root", TimeoutMillis: 250})

	_, err := c.Query(context.Background(), "SELECT 1")
	require.Error(t, err)
	require.True(t, errkind.Is(err, errkind.Connection))
	require.NoError(t, c.Close())
}

func TestGetDatabases(t *testing.T) {
	c, mock := mockClient(t)
	mock.ExpectQuery("SHOW DATABASES").WillReturnRows(
		sqlmock.NewRows([]string{"Database"}).AddRow("analytics").AddRow("sales"))

	names, err := c.GetDatabases(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"analytics", "sales"}, names)
}

func TestGetTables(t *testing.T) {
	t.Run("native key", func(t *testing.T) {
		c, mock := mockClient(t)
		mock.ExpectQuery("SHOW TABLES FROM `analytics`").WillReturnRows(
			sqlmock.NewRows([]string{"Tables_in_analytics"}).AddRow("events"))

		names, err := c.GetTables(context.Background(), "analytics")
		require.NoError(t, err)
		require.Equal(t, []string{"events"}, names)
	})

	t.Run("information_schema key", func(t *testing.T) {
		c, mock := mockClient(t)
		mock.ExpectQuery("SHOW TABLES FROM `analytics`").WillReturnRows(
			sqlmock.NewRows([]string{"TABLE_NAME"}).AddRow("events"))

		names, err := c.GetTables(context.Background(), "analytics")
		require.NoError(t, err)
		require.Equal(t, []string{"events"}, names)
	})

	t.Run("invalid database", func(t *testing.T) {
		c, _ := mockClient(t)
		_, err := c.GetTables(context.Background(), "bad;name")
		require.True(t, errkind.Is(err, errkind.Validation))
	})
}

func TestGetTableSchema(t *testing.T) {
	c, mock := mockClient(t)
	mock.ExpectQuery("DESC `analytics`.`events`").WillReturnRows(
		sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("id", "BIGINT", "No", "true", nil, "").
			AddRow("name", "VARCHAR(64)", "Yes", "false", nil, ""))

	columns, err := c.GetTableSchema(context.Background(), "analytics", "events")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	require.Equal(t, "id", columns[0].Field)
	require.Equal(t, "BIGINT", columns[0].Type)
	require.Equal(t, "name", columns[1].Field)
}

func TestGetVersion(t *testing.T) {
	c, mock := mockClient(t)
	mock.ExpectQuery("SELECT version()").WillReturnRows(
		sqlmock.NewRows([]string{"version()"}).AddRow("5.7.99 Doris version doris-2.1.0"))

	version, err := c.GetVersion(context.Background())
	require.NoError(t, err)
	require.Equal(t, "5.7.99 Doris version doris-2.1.0", version)
}
