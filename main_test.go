package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteExitStatus(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "journal.json")

	t.Run("success exits zero", func(t *testing.T) {
		var stdout, stderr bytes.Buffer

		code := execute([]string{"-j", path, "add", "wash car"}, &stdout, &stderr)

		assert.Equal(t, 0, code)
		assert.Empty(t, stderr.String())
	})

	t.Run("bad position exits one with the message on stderr", func(t *testing.T) {
		before, err := os.ReadFile(path)
		require.NoError(t, err)
		var stdout, stderr bytes.Buffer

		code := execute([]string{"-j", path, "done", "5"}, &stdout, &stderr)

		assert.Equal(t, 1, code)
		assert.Empty(t, stdout.String())
		assert.True(t, strings.HasPrefix(stderr.String(), "Error: invalid task position: 5"), stderr.String())

		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("list prints to stdout", func(t *testing.T) {
		var stdout, stderr bytes.Buffer

		code := execute([]string{"-j", path, "list"}, &stdout, &stderr)

		assert.Equal(t, 0, code)
		assert.True(t, strings.HasPrefix(stdout.String(), "1: wash car "), stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("missing journal path exits one", func(t *testing.T) {
		var stdout, stderr bytes.Buffer

		code := execute([]string{"-j", "", "list"}, &stdout, &stderr)

		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "no journal file specified")
	})
}
