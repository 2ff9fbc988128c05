package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SLIDES_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load()
	require.NoError(t, err)
	assert.Empty(t, c.Deck.Path)
	assert.Equal(t, 1200*time.Millisecond, c.Input.WheelCooldown)
	assert.False(t, c.Intro.Skip)
	assert.Equal(t, "JSS HOSPITAL", c.Intro.Sign)
	assert.Equal(t, 30, c.Render.FPS)
	assert.Equal(t, 400*time.Millisecond, c.Render.ExitDuration)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, time.Second/30, c.FrameInterval())
	assert.Equal(t, 1200*time.Millisecond, c.WheelCooldown())
}

func TestZeroCooldownDisablesWheelLimit(t *testing.T) {
	isolate(t)
	t.Setenv("SLIDES_INPUT_WHEEL_COOLDOWN", "0s")

	c, err := Load()
	require.NoError(t, err)
	assert.Zero(t, c.Input.WheelCooldown)
	assert.Negative(t, c.WheelCooldown())
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("SLIDES_DECK_PATH", "/tmp/talk.yaml")
	t.Setenv("SLIDES_INPUT_WHEEL_COOLDOWN", "800ms")
	t.Setenv("SLIDES_INTRO_SKIP", "true")
	t.Setenv("SLIDES_RENDER_FPS", "60")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/talk.yaml", c.Deck.Path)
	assert.Equal(t, 800*time.Millisecond, c.Input.WheelCooldown)
	assert.True(t, c.Intro.Skip)
	assert.Equal(t, 60, c.Render.FPS)
}

func TestConfigFile(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "slides")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	body := "[render]\nfps = 12\nexit_duration = \"1s\"\n\n[log]\npath = \"/tmp/slides.log\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o644))

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 12, c.Render.FPS)
	assert.Equal(t, time.Second, c.Render.ExitDuration)
	assert.Equal(t, "/tmp/slides.log", c.Log.Path)
	assert.Equal(t, 1200*time.Millisecond, c.Input.WheelCooldown, "unset keys keep defaults")
}

func TestRejectsNonPositiveFPS(t *testing.T) {
	isolate(t)
	t.Setenv("SLIDES_RENDER_FPS", "0")

	_, err := Load()
	require.ErrorContains(t, err, "render.fps")
}

func TestSaveRoundTrip(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom", "slides.toml")
	t.Setenv("SLIDES_CONFIG", path)

	want, err := Load()
	require.NoError(t, err)
	want.Deck.Path = "/decks/q3.yaml"
	want.Input.WheelCooldown = 900 * time.Millisecond
	want.Intro.Skip = true
	require.NoError(t, Save(want))
	require.FileExists(t, path)

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
