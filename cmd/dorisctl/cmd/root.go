package cmd

import (
	"context"

	"github.com/dorisops/dorisctl/pkg/config"
	"github.com/dorisops/dorisctl/pkg/consts"
	"github.com/urfave/cli/v3"
)

// Connection parameters resolved once per invocation in the root Before
// hook and consumed by every subcommand action.
var (
	currentConn     config.Connection
	currentHTTPPort int
)

// Run creates and executes the main dorisctl CLI application. Configuration
// is resolved before any subcommand runs: the optional config file, the
// DORIS_* environment variables, and finally the command-line flags, each
// layer overriding the previous one.
func Run(ctx context.Context, version string, args []string) error {
	app := &cli.Command{
		Name:  "dorisctl",
		Usage: "A tool for operating a Doris analytical cluster",
		Description: `dorisctl runs SQL queries, inspects schema, imports and exports data,
and manages cluster nodes through the FE HTTP control-plane API.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the dorisctl config file",
				Sources: cli.EnvVars("DORISCTL_CONFIG"),
				Value:   consts.DefaultConfigFile,
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "FE host",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "FE query port",
			},
			&cli.StringFlag{
				Name:  "user",
				Usage: "connection user",
			},
			&cli.StringFlag{
				Name:  "password",
				Usage: "connection password",
			},
			&cli.StringFlag{
				Name:    "database",
				Aliases: []string{"D"},
				Usage:   "target database",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			cfg, err := config.LoadOptional(cmd.String("config"))
			if err != nil {
				return ctx, err
			}

			conn, err := config.Resolve(cfg)
			if err != nil {
				return ctx, err
			}

			if v := cmd.String("host"); v != "" {
				conn.Host = v
			}
			if cmd.IsSet("port") {
				conn.Port = int(cmd.Int("port"))
			}
			if v := cmd.String("user"); v != "" {
				conn.User = v
			}
			if v := cmd.String("password"); v != "" {
				conn.Password = v
			}
			if v := cmd.String("database"); v != "" {
				conn.Database = v
			}

			currentConn = conn
			currentHTTPPort = config.ResolveHTTPPort(cfg)
			return ctx, nil
		},
		Commands: []*cli.Command{
			query(),
			status(),
			databases(),
			tables(),
			schema(),
			processlist(),
			importCmd(),
			exportCmd(),
			shell(),
		},
	}

	return app.Run(ctx, args)
}
