package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Deck   DeckConfig
	Input  InputConfig
	Intro  IntroConfig
	Render RenderConfig
	Log    LogConfig
}

// DeckConfig selects the slides. An empty path means the embedded deck.
type DeckConfig struct {
	Path string
}

// InputConfig holds navigation settings. A wheel_cooldown of zero turns the
// wheel limit off.
type InputConfig struct {
	WheelCooldown time.Duration `mapstructure:"wheel_cooldown"`
}

// IntroConfig holds intro gate settings.
type IntroConfig struct {
	Skip bool
	Sign string
}

// RenderConfig holds frame timing.
type RenderConfig struct {
	FPS          int
	ExitDuration time.Duration `mapstructure:"exit_duration"`
}

// LogConfig holds the diagnostic log. An empty path disables logging.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix SLIDES_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("deck.path", "")
	v.SetDefault("input.wheel_cooldown", 1200*time.Millisecond)
	v.SetDefault("intro.skip", false)
	v.SetDefault("intro.sign", "JSS HOSPITAL")
	v.SetDefault("render.fps", 30)
	v.SetDefault("render.exit_duration", 400*time.Millisecond)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SLIDES_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "slides"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SLIDES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Render.FPS <= 0 {
		return Config{}, fmt.Errorf("render.fps must be positive, got %d", c.Render.FPS)
	}
	return c, nil
}

// FrameInterval is the time between animation ticks.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Render.FPS)
}

// WheelCooldown is the wheel limit handed to the presenter, negative when the
// configured cooldown is zero or less.
func (c Config) WheelCooldown() time.Duration {
	if c.Input.WheelCooldown <= 0 {
		return -1
	}
	return c.Input.WheelCooldown
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("SLIDES_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "slides", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("deck.path", cfg.Deck.Path)
	v.Set("input.wheel_cooldown", cfg.Input.WheelCooldown.String())
	v.Set("intro.skip", cfg.Intro.Skip)
	v.Set("intro.sign", cfg.Intro.Sign)
	v.Set("render.fps", cfg.Render.FPS)
	v.Set("render.exit_duration", cfg.Render.ExitDuration.String())
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
