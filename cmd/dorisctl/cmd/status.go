package cmd

import (
	"context"
	"strconv"

	"github.com/dorisops/dorisctl/pkg/cluster"
	"github.com/dorisops/dorisctl/pkg/render"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

// status returns the CLI command that reports FE and BE node health from
// the control-plane API.
func status() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show cluster node status",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			spinner, _ := pterm.DefaultSpinner.Start("Fetching cluster status")
			manager := cluster.NewManager(currentConn, currentHTTPPort)
			defer func() { _ = manager.Close() }()

			st, err := manager.GetClusterStatus(ctx)
			if err != nil {
				spinner.Fail(err.Error())
				return nil
			}
			spinner.Success("Cluster status")

			feRows := make([][]string, len(st.Frontends))
			for i, node := range st.Frontends {
				feRows[i] = []string{
					node.Host,
					strconv.Itoa(node.QueryPort),
					node.Role,
					strconv.FormatBool(node.Alive),
				}
			}
			pterm.Println("Frontends:")
			render.Table(cmd.Writer, []string{"Host", "QueryPort", "Role", "Alive"}, feRows)

			beRows := make([][]string, len(st.Backends))
			for i, node := range st.Backends {
				beRows[i] = []string{
					node.Host,
					strconv.FormatBool(node.Alive),
					render.FormatBytes(float64(node.UsedCapacity)),
					render.FormatBytes(float64(node.TotalCapacity)),
				}
			}
			pterm.Println("Backends:")
			render.Table(cmd.Writer, []string{"Host", "Alive", "Used", "Total"}, beRows)
			return nil
		},
	}
}
