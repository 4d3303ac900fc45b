// Package tool is the structured-result entry point for automated callers.
// Unlike the CLI commands it never raises: every outcome, including
// configuration and connection failures, is folded into a uniform Result.
package tool

import (
	"context"
	"fmt"

	"github.com/dorisops/dorisctl/pkg/config"
	"github.com/dorisops/dorisctl/pkg/consts"
	"github.com/dorisops/dorisctl/pkg/doris"
)

type (
	// Request is one query to execute. Database optionally overrides the
	// configured target database.
	Request struct {
		SQL      string `json:"sql"`
		Database string `json:"database,omitempty"`
	}

	// Result is the uniform success/error envelope.
	Result struct {
		Success bool        `json:"success"`
		Data    []doris.Row `json:"data,omitempty"`
		Error   string      `json:"error,omitempty"`
		Message string      `json:"message"`
	}
)

// Execute loads the default config file (if present), runs one query, and
// returns a structured result. The connection is opened for this call and
// closed before returning.
func Execute(ctx context.Context, req Request) Result {
	return ExecuteWithConfig(ctx, consts.DefaultConfigFile, req)
}

// ExecuteWithConfig is Execute with an explicit config file path. A missing
// file falls back to environment variables and defaults.
func ExecuteWithConfig(ctx context.Context, configPath string, req Request) Result {
	if req.SQL == "" {
		return failure(nil, "no sql provided")
	}

	cfg, err := config.LoadOptional(configPath)
	if err != nil {
		return failure(err, "failed to load configuration")
	}

	conn, err := config.Resolve(cfg)
	if err != nil {
		return failure(err, "failed to resolve configuration")
	}
	conn = conn.WithDatabase(req.Database)

	client := doris.NewClient(conn)
	defer func() { _ = client.Close() }()

	result, err := client.Query(ctx, req.SQL)
	if err != nil {
		return failure(err, "query failed")
	}

	return Result{
		Success: true,
		Data:    result.Rows,
		Message: fmt.Sprintf("query returned %d row(s)", len(result.Rows)),
	}
}

func failure(err error, msg string) Result {
	res := Result{Success: false, Message: msg}
	if err != nil {
		res.Error = err.Error()
	} else {
		res.Error = msg
	}
	return res
}
