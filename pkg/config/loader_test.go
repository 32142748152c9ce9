package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/charseq/pkg/config"
)

type scanConfig struct {
	Schema    string   `env:"TEST_SCAN_SCHEMA" envDefault:"schema.yaml"`
	MaxIssues int      `env:"TEST_SCAN_MAX_ISSUES" envDefault:"100"`
	Strict    bool     `env:"TEST_SCAN_STRICT" envDefault:"true"`
	Columns   []string `env:"TEST_SCAN_COLUMNS" envSeparator:","`
}

type requiredConfig struct {
	Required string `env:"TEST_REQUIRED_VALUE,required"`
}

type fileConfig struct {
	Name     string `env:"TEST_FILE_NAME"`
	Priority string `env:"TEST_FILE_PRIORITY"`
	Only     string `env:"TEST_FILE_ONLY"`
}

// unset clears keys for the duration of the test and restores them after.
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeEnv(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad(t *testing.T) {
	t.Run("reads environment", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_SCAN_SCHEMA", "/etc/seqscan.yaml")
		t.Setenv("TEST_SCAN_MAX_ISSUES", "5")
		t.Setenv("TEST_SCAN_STRICT", "false")
		t.Setenv("TEST_SCAN_COLUMNS", "id,iban")

		var cfg scanConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "/etc/seqscan.yaml", cfg.Schema)
		assert.Equal(t, 5, cfg.MaxIssues)
		assert.False(t, cfg.Strict)
		assert.Equal(t, []string{"id", "iban"}, cfg.Columns)
	})

	t.Run("applies defaults", func(t *testing.T) {
		config.ResetCache()
		unset(t, "TEST_SCAN_SCHEMA", "TEST_SCAN_MAX_ISSUES", "TEST_SCAN_STRICT", "TEST_SCAN_COLUMNS")

		var cfg scanConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "schema.yaml", cfg.Schema)
		assert.Equal(t, 100, cfg.MaxIssues)
		assert.True(t, cfg.Strict)
		assert.Empty(t, cfg.Columns)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_SCAN_MAX_ISSUES", "1")

		var first scanConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_SCAN_MAX_ISSUES", "2")
		var second scanConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, 1, second.MaxIssues)

		require.NoError(t, config.Reload(&second))
		assert.Equal(t, 2, second.MaxIssues)
	})

	t.Run("missing required value", func(t *testing.T) {
		config.ResetCache()
		unset(t, "TEST_REQUIRED_VALUE")

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.ErrorIs(t, err, config.ErrParsingConfig)

		// failures are not cached
		t.Setenv("TEST_REQUIRED_VALUE", "set")
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "set", cfg.Required)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *scanConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("non struct type", func(t *testing.T) {
		var n int
		assert.ErrorIs(t, config.Load(&n), config.ErrInvalidConfigType)
	})
}

func TestMustLoad(t *testing.T) {
	config.ResetCache()
	unset(t, "TEST_REQUIRED_VALUE")

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})

	t.Setenv("TEST_REQUIRED_VALUE", "ok")
	assert.NotPanics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("later files win", func(t *testing.T) {
		config.ResetCache()
		unset(t, "TEST_FILE_NAME", "TEST_FILE_PRIORITY", "TEST_FILE_ONLY")
		dir := t.TempDir()
		base := writeEnv(t, dir, "base.env", "TEST_FILE_NAME=base\nTEST_FILE_PRIORITY=base\n")
		override := writeEnv(t, dir, "override.env", "TEST_FILE_PRIORITY=override\nTEST_FILE_ONLY=\"quoted value\"\n")

		require.NoError(t, config.LoadEnv(base, override))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "base", cfg.Name)
		assert.Equal(t, "override", cfg.Priority)
		assert.Equal(t, "quoted value", cfg.Only)
	})

	t.Run("process environment wins", func(t *testing.T) {
		config.ResetCache()
		unset(t, "TEST_FILE_NAME")
		t.Setenv("TEST_FILE_PRIORITY", "process")
		p := writeEnv(t, t.TempDir(), "app.env", "TEST_FILE_PRIORITY=file\nTEST_FILE_NAME=file\n")

		require.NoError(t, config.LoadEnv(p))
		assert.Equal(t, "process", os.Getenv("TEST_FILE_PRIORITY"))
		assert.Equal(t, "file", os.Getenv("TEST_FILE_NAME"))
	})

	t.Run("named file must exist", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
		assert.Panics(t, func() {
			config.MustLoadEnv(filepath.Join(t.TempDir(), "missing.env"))
		})
	})

	t.Run("default file is optional", func(t *testing.T) {
		t.Chdir(t.TempDir())
		assert.NoError(t, config.LoadEnv())
	})

	t.Run("default file is read", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		unset(t, "TEST_FILE_NAME")
		writeEnv(t, dir, ".env", "TEST_FILE_NAME=default\n")

		require.NoError(t, config.LoadEnv())
		assert.Equal(t, "default", os.Getenv("TEST_FILE_NAME"))
	})
}
