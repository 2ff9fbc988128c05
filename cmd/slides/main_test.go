package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jask/slides/internal/deck"
)

const brokenDeck = `slides:
  - id: 1
    type: title
    title: Opening
  - id: 2
    type: roadmp
    title: Plan
  - id: 3
    type: usage
    title: Usage
`

// execute runs the root command with fresh flag state and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SLIDES_CONFIG", "")
	deckPath, configPath, logPath, verbose, skipIntro, rawOutline = "", "", "", false, false, false
	logger = zap.NewNop()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeDeck(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestValidateDefaultDeck(t *testing.T) {
	out, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "17 slides, no issues")
}

func TestValidateReportsIssues(t *testing.T) {
	out, err := execute(t, "validate", "--deck", writeDeck(t, brokenDeck))
	require.Error(t, err)
	assert.Contains(t, out, `did you mean "roadmap"`)
	assert.Contains(t, out, "missing modules")
}

func TestValidateMissingFile(t *testing.T) {
	_, err := execute(t, "validate", "--deck", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestOutlineRaw(t *testing.T) {
	out, err := execute(t, "outline", "--raw")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Deck outline"))
	assert.Contains(t, out, "## 1. Analysis of Information System Implementation")
	assert.Contains(t, out, "## 17. ")
}

func TestOutlineRendered(t *testing.T) {
	out, err := execute(t, "outline", "--deck", writeDeck(t, brokenDeck))
	require.NoError(t, err)
	assert.Contains(t, out, "Opening")
	assert.Contains(t, out, "roadmp")
}

func TestConfigCommandWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slides.toml")
	out, err := execute(t, "config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "configuration saved")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "wheel_cooldown")
}

func TestOutlineCoversEveryLayout(t *testing.T) {
	d, err := deck.Default()
	require.NoError(t, err)
	md := outline(d)
	for i := range d.Len() {
		s, _ := d.At(i)
		assert.Contains(t, md, s.Title)
	}
	assert.Contains(t, md, "**1800 Beds**")

	md = outline(deck.New([]deck.Slide{{ID: 4, Type: "nexus"}}))
	assert.Contains(t, md, "(untitled)")
	assert.Contains(t, md, `unknown type "nexus"`)
}
