package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dorisops/dorisctl/pkg/doris"
	"github.com/dorisops/dorisctl/pkg/render"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

// shell returns the CLI command that runs an interactive read-eval-print
// loop. Every line is executed as SQL until an exit sentinel is read. The
// loop is strictly sequential: it blocks on input, then on the query.
func shell() *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "Interactive SQL shell",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rl, err := readline.New("doris> ")
			if err != nil {
				return err
			}
			defer func() { _ = rl.Close() }()

			client := doris.NewClient(currentConn)
			defer func() { _ = client.Close() }()

			pterm.Printf("Connected to %s. Type exit or quit to leave.\n", currentConn.Addr())

			for {
				line, err := rl.Readline()
				if err == readline.ErrInterrupt {
					continue
				}
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}

				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if isExit(line) {
					return nil
				}

				result, err := client.Query(ctx, line)
				if err != nil {
					pterm.Error.Println(err)
					continue
				}

				render.ResultTable(cmd.Writer, result)
				fmt.Fprintf(cmd.Writer, "%d row(s)\n", len(result.Rows))
			}
		},
	}
}

// isExit reports whether a trimmed input line is an exit sentinel,
// case-insensitively.
func isExit(line string) bool {
	switch strings.ToLower(line) {
	case "exit", "quit":
		return true
	}
	return false
}
