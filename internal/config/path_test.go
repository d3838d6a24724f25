package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("FACLOAD_TEST_DIR", "/opt/facload")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty path", input: "", expected: ""},
		{name: "absolute path unchanged", input: "/var/lib/facload.db", expected: "/var/lib/facload.db"},
		{name: "tilde expansion", input: "~/data/facload.db", expected: filepath.Join(home, "data", "facload.db")},
		{name: "bare tilde", input: "~", expected: home},
		{name: "env var expansion", input: "$FACLOAD_TEST_DIR/facload.db", expected: "/opt/facload/facload.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}

func TestDefaultDatabasePath(t *testing.T) {
	path, err := DefaultDatabasePath()
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(path, filepath.Join(".local", "share", "facload", "facload.db")))
}
