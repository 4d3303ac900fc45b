package cluster

import (
	"context"
	"fmt"

	"github.com/dorisops/dorisctl/pkg/doris"
	"github.com/dorisops/dorisctl/pkg/utils"
)

// validQueryID is the allow-list gate in front of every place a query id
// reaches SQL text or an HTTP path.
func validQueryID(id string) error { return utils.ValidQueryID(id) }

// GetTablePartitions lists the partitions of a table.
func (m *Manager) GetTablePartitions(ctx context.Context, database, table string) (*doris.Result, error) {
	if err := utils.ValidIdentifier(database); err != nil {
		return nil, err
	}
	if err := utils.ValidIdentifier(table); err != nil {
		return nil, err
	}
	return m.client.Query(ctx, "SHOW PARTITIONS FROM "+utils.QualifiedName(database, table))
}

// GetTableStats reports row-count and size statistics for a table.
func (m *Manager) GetTableStats(ctx context.Context, database, table string) (*doris.Result, error) {
	if err := utils.ValidIdentifier(database); err != nil {
		return nil, err
	}
	if err := utils.ValidIdentifier(table); err != nil {
		return nil, err
	}
	return m.client.Query(ctx, "SHOW TABLE STATS "+utils.QualifiedName(database, table))
}

// GetRunningQueries returns the current process list.
func (m *Manager) GetRunningQueries(ctx context.Context) (*doris.Result, error) {
	return m.client.Query(ctx, "SHOW PROCESSLIST")
}

// KillQuery terminates a running query. The id is allow-list validated
// before it is placed into the statement text; the server does not accept a
// placeholder in this position.
func (m *Manager) KillQuery(ctx context.Context, queryID string) error {
	if err := validQueryID(queryID); err != nil {
		return err
	}
	_, err := m.client.Exec(ctx, fmt.Sprintf("KILL QUERY '%s'", queryID))
	return err
}

// GetVersion reports the FE version via SQL.
func (m *Manager) GetVersion(ctx context.Context) (string, error) {
	return m.client.GetVersion(ctx)
}
