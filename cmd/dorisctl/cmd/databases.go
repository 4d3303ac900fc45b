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

// databases returns the CLI command that lists databases.
func databases() *cli.Command {
	return &cli.Command{
		Name:  "databases",
		Usage: "List databases",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			spinner, _ := pterm.DefaultSpinner.Start("Listing databases")
			client := doris.NewClient(currentConn)
			defer func() { _ = client.Close() }()

			names, err := client.GetDatabases(ctx)
			if err != nil {
				spinner.Fail(err.Error())
				return nil
			}
			spinner.Success(fmt.Sprintf("%d database(s)", len(names)))

			rows := make([][]string, len(names))
			for i, name := range names {
				rows[i] = []string{name}
			}
			render.Table(cmd.Writer, []string{"Database"}, rows)
			return nil
		},
	}
}

// tables returns the CLI command that lists the tables of a database.
func tables() *cli.Command {
	return &cli.Command{
		Name:      "tables",
		Usage:     "List tables in a database",
		ArgsUsage: "<database>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			database := cmd.Args().First()
			if database == "" {
				return errors.New("no database provided")
			}

			spinner, _ := pterm.DefaultSpinner.Start("Listing tables in " + database)
			client := doris.NewClient(currentConn)
			defer func() { _ = client.Close() }()

			names, err := client.GetTables(ctx, database)
			if err != nil {
				spinner.Fail(err.Error())
				return nil
			}
			spinner.Success(fmt.Sprintf("%d table(s)", len(names)))

			rows := make([][]string, len(names))
			for i, name := range names {
				rows[i] = []string{name}
			}
			render.Table(cmd.Writer, []string{"Table"}, rows)
			return nil
		},
	}
}

// schema returns the CLI command that describes a table's columns.
func schema() *cli.Command {
	return &cli.Command{
		Name:      "schema",
		Usage:     "Describe a table",
		ArgsUsage: "<database> <table>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			database, table := cmd.Args().Get(0), cmd.Args().Get(1)
			if database == "" || table == "" {
				return errors.New("usage: schema <database> <table>")
			}

			spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Describing %s.%s", database, table))
			client := doris.NewClient(currentConn)
			defer func() { _ = client.Close() }()

			columns, err := client.GetTableSchema(ctx, database, table)
			if err != nil {
				spinner.Fail(err.Error())
				return nil
			}
			spinner.Success(fmt.Sprintf("%d column(s)", len(columns)))

			rows := make([][]string, len(columns))
			for i, col := range columns {
				rows[i] = []string{col.Field, col.Type, col.Null, col.Key, col.Default, col.Extra}
			}
			render.Table(cmd.Writer, []string{"Field", "Type", "Null", "Key", "Default", "Extra"}, rows)
			return nil
		},
	}
}
