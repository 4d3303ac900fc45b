package cmd

import (
	"context"
	"fmt"

	"github.com/dorisops/dorisctl/pkg/doris"
	"github.com/dorisops/dorisctl/pkg/render"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

// query returns the CLI command that runs one SQL statement and renders the
// result as a table, or exports it to a file when --out is given.
func query() *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Run a SQL statement",
		ArgsUsage: "<sql>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "File to write the result to",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sqlText := cmd.Args().First()
			if sqlText == "" {
				return errors.New("no sql provided")
			}

			spinner, _ := pterm.DefaultSpinner.Start("Running query")
			client := doris.NewClient(currentConn)
			defer func() { _ = client.Close() }()

			if out := cmd.String("out"); out != "" {
				n, err := client.ExportToFile(ctx, sqlText, out, doris.ExportOptions{IncludeHeader: true})
				if err != nil {
					spinner.Fail(err.Error())
					return nil
				}
				spinner.Success(fmt.Sprintf("Wrote %d row(s) to %s", n, out))
				return nil
			}

			result, err := client.Query(ctx, sqlText)
			if err != nil {
				spinner.Fail(err.Error())
				return nil
			}
			spinner.Success(fmt.Sprintf("%d row(s)", len(result.Rows)))

			render.ResultTable(cmd.Writer, result)
			return nil
		},
	}
}
