package cmd

import (
	"context"
	"fmt"

	"github.com/dorisops/dorisctl/pkg/cluster"
	"github.com/dorisops/dorisctl/pkg/render"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

// processlist returns the CLI command that shows running queries.
func processlist() *cli.Command {
	return &cli.Command{
		Name:  "processlist",
		Usage: "Show running queries",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			spinner, _ := pterm.DefaultSpinner.Start("Fetching process list")
			manager := cluster.NewManager(currentConn, currentHTTPPort)
			defer func() { _ = manager.Close() }()

			result, err := manager.GetRunningQueries(ctx)
			if err != nil {
				spinner.Fail(err.Error())
				return nil
			}
			spinner.Success(fmt.Sprintf("%d process(es)", len(result.Rows)))

			render.ResultTable(cmd.Writer, result)
			return nil
		},
	}
}
