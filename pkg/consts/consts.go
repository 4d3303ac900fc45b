// Package consts holds shared defaults used across dorisctl packages.
package consts

import "os"

const (
	// DefaultHost is the FE host used when no configuration is provided
	DefaultHost = "localhost"

	// DefaultQueryPort is the FE MySQL-protocol port
	DefaultQueryPort = 9030

	// DefaultHTTPPort is the FE HTTP control-plane port
	DefaultHTTPPort = 8030

	// DefaultUser is the account used when no user is configured
	DefaultUser = "root"

	// DefaultTimeoutMillis is the connection-establishment timeout
	DefaultTimeoutMillis = 30000

	// DefaultConfigFile is the config file looked up by the CLI and the
	// tool adapter when no --config flag is given
	DefaultConfigFile = "config.json"
)

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)
)
