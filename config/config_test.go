package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ByteMirror/journal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain runs before all tests to set up the test environment
func TestMain(m *testing.M) {
	// Initialize the logger before any tests run
	log.Initialize()
	defer log.Close()

	exitCode := m.Run()
	os.Exit(exitCode)
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.NotNil(t, config)
	assert.Empty(t, config.DefaultJournal)
	assert.Equal(t, "text", config.ListFormat)
}

func TestGetConfigDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	configDir, err := GetConfigDir()

	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(configDir, ".journal"))
	assert.True(t, filepath.IsAbs(configDir))
}

func TestLoadConfig(t *testing.T) {
	t.Run("writes and returns defaults when file doesn't exist", func(t *testing.T) {
		tempHome := t.TempDir()
		t.Setenv("HOME", tempHome)

		config := LoadConfig()

		assert.Equal(t, DefaultConfig(), config)
		_, err := os.Stat(filepath.Join(tempHome, ".journal", ConfigFileName))
		assert.NoError(t, err)
	})

	t.Run("loads valid config file", func(t *testing.T) {
		tempHome := t.TempDir()
		t.Setenv("HOME", tempHome)
		configDir := filepath.Join(tempHome, ".journal")
		require.NoError(t, os.MkdirAll(configDir, 0755))

		configContent := `{
			"default_journal": "~/tasks.json",
			"list_format": "yaml"
		}`
		require.NoError(t, os.WriteFile(filepath.Join(configDir, ConfigFileName), []byte(configContent), 0644))

		config := LoadConfig()

		assert.Equal(t, "~/tasks.json", config.DefaultJournal)
		assert.Equal(t, "yaml", config.ListFormat)
	})

	t.Run("fills missing list format", func(t *testing.T) {
		tempHome := t.TempDir()
		t.Setenv("HOME", tempHome)
		configDir := filepath.Join(tempHome, ".journal")
		require.NoError(t, os.MkdirAll(configDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(configDir, ConfigFileName), []byte(`{"default_journal":"/tmp/j.json"}`), 0644))

		config := LoadConfig()

		assert.Equal(t, "/tmp/j.json", config.DefaultJournal)
		assert.Equal(t, "text", config.ListFormat)
	})

	t.Run("returns default config on invalid JSON", func(t *testing.T) {
		tempHome := t.TempDir()
		t.Setenv("HOME", tempHome)
		configDir := filepath.Join(tempHome, ".journal")
		require.NoError(t, os.MkdirAll(configDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(configDir, ConfigFileName), []byte(`{"invalid": json content}`), 0644))

		config := LoadConfig()

		assert.Equal(t, DefaultConfig(), config)
	})
}

func TestSaveConfig(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	err := SaveConfig(&Config{DefaultJournal: "/srv/journal.json", ListFormat: "json"})
	require.NoError(t, err)

	configDir := filepath.Join(tempHome, ".journal")
	entries, err := os.ReadDir(configDir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file must be renamed away")

	loaded := LoadConfig()
	assert.Equal(t, "/srv/journal.json", loaded.DefaultJournal)
	assert.Equal(t, "json", loaded.ListFormat)
}

func TestResolveJournalPath(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	t.Run("flag wins over config", func(t *testing.T) {
		path, err := ResolveJournalPath("/tmp/flag.json", &Config{DefaultJournal: "/tmp/config.json"})
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag.json", path)
	})

	t.Run("falls back to config", func(t *testing.T) {
		path, err := ResolveJournalPath("", &Config{DefaultJournal: "/tmp/config.json"})
		require.NoError(t, err)
		assert.Equal(t, "/tmp/config.json", path)
	})

	t.Run("expands home", func(t *testing.T) {
		path, err := ResolveJournalPath("~/tasks.json", nil)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tempHome, "tasks.json"), path)
	})

	t.Run("fails when nothing is set", func(t *testing.T) {
		_, err := ResolveJournalPath("  ", DefaultConfig())
		assert.ErrorIs(t, err, ErrNoJournalPath)

		_, err = ResolveJournalPath("", nil)
		assert.ErrorIs(t, err, ErrNoJournalPath)
	})
}

func TestAtomicWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	require.NoError(t, atomicWriteFile(path, []byte("new"), 0600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	err = atomicWriteFile(filepath.Join(t.TempDir(), "missing", "out.json"), []byte("x"), 0644)
	assert.Error(t, err)
}
