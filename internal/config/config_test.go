package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Family Ledger")
	cfg.Logging.Level = "debug"

	path := filepath.Join(t.TempDir(), "wealthtrack.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Ledger.Name, got.Ledger.Name)
	assert.Equal(t, cfg.Ledger.Currency, got.Ledger.Currency)
	assert.Equal(t, "debug", got.Logging.Level)
	assert.Equal(t, cfg.Git.AutoCommit, got.Git.AutoCommit)
	assert.Equal(t, cfg.Git.AuthorName, got.Git.AuthorName)
	assert.Equal(t, cfg.Git.AuthorEmail, got.Git.AuthorEmail)
}

func TestDefaults(t *testing.T) {
	cfg := Default("My Ledger")

	assert.Equal(t, "My Ledger", cfg.Ledger.Name)
	assert.Equal(t, "USD", cfg.Ledger.Currency)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Git.AutoCommit)
	assert.Equal(t, "WealthTrack", cfg.Git.AuthorName)
	assert.Equal(t, "ledger@wealthtrack.local", cfg.Git.AuthorEmail)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Family Ledger")
	path := filepath.Join(t.TempDir(), "wealthtrack.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Family Ledger")
	assert.Contains(t, contents, "currency: USD")
	assert.Contains(t, contents, "level: info")
	assert.Contains(t, contents, "auto_commit: true")
}
