// Package config resolves connection parameters for dorisctl from process
// environment variables, an optional JSON or YAML side-config, and built-in
// defaults. Resolution happens once per invocation and produces an immutable
// Connection value that is passed to every component at construction time.
package config

import (
	"encoding/json"
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dorisops/dorisctl/pkg/consts"
	"github.com/dorisops/dorisctl/pkg/errkind"
	"gopkg.in/yaml.v3"
)

// Environment variables recognized during resolution. They take precedence
// over anything found in a config file.
const (
	EnvHost     = "DORIS_HOST"
	EnvPort     = "DORIS_PORT"
	EnvUser     = "DORIS_USER"
	EnvPassword = "DORIS_PASSWORD"
)

type (
	// Doris mirrors the "doris" section of config.json. The Env map may
	// reference process environment variables with ${NAME} placeholders;
	// substitution happens at resolution time.
	Doris struct {
		Host          string            `json:"host,omitempty" yaml:"host,omitempty"`
		Port          int               `json:"port,omitempty" yaml:"port,omitempty"`
		User          string            `json:"user,omitempty" yaml:"user,omitempty"`
		Password      string            `json:"password,omitempty" yaml:"password,omitempty"`
		Database      string            `json:"database,omitempty" yaml:"database,omitempty"`
		TimeoutMillis int               `json:"timeout_millis,omitempty" yaml:"timeout_millis,omitempty"`
		HTTPPort      int               `json:"http_port,omitempty" yaml:"http_port,omitempty"`
		Env           map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
	}

	// Config is the full side-config file shape.
	Config struct {
		Doris Doris `json:"doris" yaml:"doris"`
	}

	// Connection holds the resolved SQL connection parameters. It is
	// immutable after resolution; a per-call database override copies the
	// value rather than mutating it.
	Connection struct {
		Host          string
		Port          int
		User          string
		Password      string
		Database      string
		TimeoutMillis int
	}
)

// Addr returns the host:port address of the FE query port.
func (c Connection) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Timeout returns the connection-establishment timeout as a duration.
func (c Connection) Timeout() time.Duration {
	return time.Duration(c.TimeoutMillis) * time.Millisecond
}

// WithDatabase returns a copy of the connection targeting the given
// database. An empty override keeps the configured database.
func (c Connection) WithDatabase(database string) Connection {
	if database != "" {
		c.Database = database
	}
	return c
}

// LoadConfig parses a JSON config from the provided reader.
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errkind.Wrap(errkind.Config, "failed to unmarshal config", err)
	}
	return &cfg, nil
}

// LoadConfigFile loads a config from the given path. Files ending in .yaml
// or .yml are decoded as YAML, everything else as JSON.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errkind.Wrap(errkind.Config, "failed to open config file", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var cfg Config
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, errkind.Wrap(errkind.Config, "failed to unmarshal config", err)
		}
		return &cfg, nil
	default:
		return LoadConfig(f)
	}
}

// LoadOptional loads the config file at path if it exists. A missing file
// is not an error; commands that need no config run with defaults.
func LoadOptional(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return LoadConfigFile(path)
}

// Resolve merges environment variables, the optional side-config, and
// defaults into a Connection. Precedence, high to low: process environment,
// the side-config doris.env section (with ${NAME} placeholders expanded
// against the process environment), file-level doris fields, defaults.
// cfg may be nil.
func Resolve(cfg *Config) (Connection, error) {
	var d Doris
	if cfg != nil {
		d = cfg.Doris
	}

	conn := Connection{
		Host:          consts.DefaultHost,
		Port:          consts.DefaultQueryPort,
		User:          consts.DefaultUser,
		Database:      d.Database,
		TimeoutMillis: consts.DefaultTimeoutMillis,
	}

	if d.Host != "" {
		conn.Host = d.Host
	}
	if d.Port != 0 {
		conn.Port = d.Port
	}
	if d.User != "" {
		conn.User = d.User
	}
	if d.Password != "" {
		conn.Password = d.Password
	}
	if d.TimeoutMillis != 0 {
		conn.TimeoutMillis = d.TimeoutMillis
	}

	if v := lookup(EnvHost, d.Env); v != "" {
		conn.Host = v
	}
	if v := lookup(EnvPort, d.Env); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Connection{}, errkind.Wrap(errkind.Config, "invalid "+EnvPort, err)
		}
		conn.Port = port
	}
	if v := lookup(EnvUser, d.Env); v != "" {
		conn.User = v
	}
	if v := lookup(EnvPassword, d.Env); v != "" {
		conn.Password = v
	}

	return conn, nil
}

// ResolveHTTPPort returns the FE HTTP control-plane port from the config,
// falling back to the default. cfg may be nil.
func ResolveHTTPPort(cfg *Config) int {
	if cfg != nil && cfg.Doris.HTTPPort != 0 {
		return cfg.Doris.HTTPPort
	}
	return consts.DefaultHTTPPort
}

// lookup resolves a single variable: the process environment wins, then the
// side-config env section with ${NAME} placeholder substitution.
func lookup(name string, env map[string]string) string {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v
	}
	if raw, ok := env[name]; ok {
		return os.Expand(raw, os.Getenv)
	}
	return ""
}
