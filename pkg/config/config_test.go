package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/dorisops/dorisctl/pkg/config"
	"github.com/dorisops/dorisctl/pkg/errkind"
	"github.com/stretchr/testify/require"
)

const testConfigJSON = `{
  "doris": {
    "host": "fe.internal",
    "port": 9131,
    "user": "etl",
    "password": "s3cret",
    "database": "analytics",
    "timeout_millis": 5000,
    "http_port": 8131
  }
}`

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvHost, EnvPort, EnvUser, EnvPassword} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader(testConfigJSON))
		require.NoError(t, err)
		require.Equal(t, "fe.internal", cfg.Doris.Host)
		require.Equal(t, 9131, cfg.Doris.Port)
		require.Equal(t, "analytics", cfg.Doris.Database)
	})

	t.Run("error", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader("{not json"))
		require.Error(t, err)
		require.Nil(t, cfg)
		require.True(t, errkind.Is(err, errkind.Config))
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(testConfigJSON), 0o644))

		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)
		require.Equal(t, "fe.internal", cfg.Doris.Host)
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("doris:\n  host: fe.yaml\n  port: 9132\n"), 0o644))

		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)
		require.Equal(t, "fe.yaml", cfg.Doris.Host)
		require.Equal(t, 9132, cfg.Doris.Port)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		require.Nil(t, cfg)
		require.True(t, errkind.Is(err, errkind.Config))
	})
}

func TestLoadOptional(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	require.Nil(t, cfg)
}

func TestResolve(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		conn, err := Resolve(nil)
		require.NoError(t, err)
		require.Equal(t, "localhost", conn.Host)
		require.Equal(t, 9030, conn.Port)
		require.Equal(t, "root", conn.User)
		require.Empty(t, conn.Password)
		require.Equal(t, 30000, conn.TimeoutMillis)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := LoadConfig(strings.NewReader(testConfigJSON))
		require.NoError(t, err)

		conn, err := Resolve(cfg)
		require.NoError(t, err)
		require.Equal(t, "fe.internal", conn.Host)
		require.Equal(t, 9131, conn.Port)
		require.Equal(t, "etl", conn.User)
		require.Equal(t, "s3cret", conn.Password)
		require.Equal(t, "analytics", conn.Database)
		require.Equal(t, 5000, conn.TimeoutMillis)
	})

	t.Run("environment wins over file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvHost, "fe.env")
		t.Setenv(EnvPort, "9999")

		cfg, err := LoadConfig(strings.NewReader(testConfigJSON))
		require.NoError(t, err)

		conn, err := Resolve(cfg)
		require.NoError(t, err)
		require.Equal(t, "fe.env", conn.Host)
		require.Equal(t, 9999, conn.Port)
	})

	t.Run("placeholder round trip", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvHost, "x")
		require.NoError(t, os.Unsetenv(EnvPort))

		cfg := &Config{Doris: Doris{Env: map[string]string{
			EnvHost: "${DORIS_HOST}",
			EnvPort: "9205",
		}}}

		conn, err := Resolve(cfg)
		require.NoError(t, err)
		require.Equal(t, "x", conn.Host)
		require.Equal(t, 9205, conn.Port)
	})

	t.Run("invalid port", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvPort, "not-a-port")

		_, err := Resolve(nil)
		require.Error(t, err)
		require.True(t, errkind.Is(err, errkind.Config))
	})
}

func TestConnectionHelpers(t *testing.T) {
	conn := Connection{Host: "fe", Port: 9030, Database: "db1", TimeoutMillis: 1500}

	require.Equal(t, "fe:9030", conn.Addr())
	require.Equal(t, "1500ms", conn.Timeout().String())
	require.Equal(t, "db2", conn.WithDatabase("db2").Database)
	require.Equal(t, "db1", conn.WithDatabase("").Database)
	// Original value untouched.
	require.Equal(t, "db1", conn.Database)
}

func TestResolveHTTPPort(t *testing.T) {
	require.Equal(t, 8030, ResolveHTTPPort(nil))
	require.Equal(t, 8131, ResolveHTTPPort(&Config{Doris: Doris{HTTPPort: 8131}}))
}
