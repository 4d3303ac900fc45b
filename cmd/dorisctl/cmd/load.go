package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/dorisops/dorisctl/pkg/doris"
	"github.com/dorisops/dorisctl/pkg/render"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

// importCmd returns the CLI command that submits a bulk-load job for a
// file. The load runs asynchronously on the cluster; this command only
// submits it.
func importCmd() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Submit a bulk-load job for a file",
		ArgsUsage: "<file> <database> <table>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Source format (csv or orc); inferred from the extension when omitted",
			},
			&cli.StringFlag{
				Name:    "separator",
				Aliases: []string{"s"},
				Usage:   "Column separator for delimited formats",
			},
			&cli.StringFlag{
				Name:    "columns",
				Aliases: []string{"c"},
				Usage:   "Comma-separated column list",
			},
			&cli.StringFlag{
				Name:    "where",
				Aliases: []string{"w"},
				Usage:   "Row filter predicate",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			file, database, table := cmd.Args().Get(0), cmd.Args().Get(1), cmd.Args().Get(2)
			if file == "" || database == "" || table == "" {
				return errors.New("usage: import <file> <database> <table>")
			}

			opts := doris.ImportOptions{
				Format:    cmd.String("format"),
				Separator: cmd.String("separator"),
				Where:     cmd.String("where"),
			}
			if cols := cmd.String("columns"); cols != "" {
				opts.Columns = strings.Split(cols, ",")
			}

			spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Submitting load for %s into %s.%s", file, database, table))
			client := doris.NewClient(currentConn)
			defer func() { _ = client.Close() }()

			result, err := client.ImportFromFile(ctx, database, table, file, opts)
			if err != nil {
				spinner.Fail(err.Error())
				return nil
			}
			spinner.Success("Load job submitted")

			if len(result.Rows) > 0 {
				render.ResultTable(cmd.Writer, result)
			}
			return nil
		},
	}
}

// exportCmd returns the CLI command that writes a query result to a
// delimited file.
func exportCmd() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Export a query result to a delimited file",
		ArgsUsage: "<sql> <outFile>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "separator",
				Aliases: []string{"s"},
				Usage:   "Column separator",
				Value:   ",",
			},
			&cli.BoolFlag{
				Name:  "no-header",
				Usage: "Omit the header row",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sqlText, outFile := cmd.Args().Get(0), cmd.Args().Get(1)
			if sqlText == "" || outFile == "" {
				return errors.New("usage: export <sql> <outFile>")
			}

			spinner, _ := pterm.DefaultSpinner.Start("Exporting to " + outFile)
			client := doris.NewClient(currentConn)
			defer func() { _ = client.Close() }()

			n, err := client.ExportToFile(ctx, sqlText, outFile, doris.ExportOptions{
				Separator:     cmd.String("separator"),
				IncludeHeader: !cmd.Bool("no-header"),
			})
			if err != nil {
				spinner.Fail(err.Error())
				return nil
			}
			spinner.Success(fmt.Sprintf("Wrote %d row(s) to %s", n, outFile))
			return nil
		},
	}
}
