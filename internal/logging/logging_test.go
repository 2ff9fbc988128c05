package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyPathDiscards(t *testing.T) {
	t.Parallel()

	l, err := New("", "debug", true)
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(-1))
}

func TestWritesToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "slides.log")
	l, err := New(path, "info", false)
	require.NoError(t, err)
	l.Debug("hidden")
	l.Warn("unknown type")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"unknown type"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestVerboseEnablesDebug(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "slides.log")
	l, err := New(path, "warn", true)
	require.NoError(t, err)
	l.Debug("slide mounted")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "slide mounted")
}

func TestBadLevel(t *testing.T) {
	t.Parallel()

	_, err := New(filepath.Join(t.TempDir(), "x.log"), "loud", false)
	require.ErrorContains(t, err, "parse log level")
}
