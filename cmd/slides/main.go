package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/slides/internal/config"
	"github.com/jask/slides/internal/deck"
	"github.com/jask/slides/internal/logging"
	"github.com/jask/slides/internal/presentation"
	"github.com/jask/slides/internal/tui"
)

var (
	// Global flags
	deckPath   string
	configPath string
	logPath    string
	verbose    bool
	skipIntro  bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "slides",
	Short: "Present an animated slide deck in the terminal",
	Long: `slides plays a deck of animated layouts full screen.

Arrow keys or the mouse wheel move between slides; clicks reveal content
inside a slide. Without --deck the built-in case study deck is shown.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			if err := os.Setenv("SLIDES_CONFIG", configPath); err != nil {
				return fmt.Errorf("set config path: %w", err)
			}
		}
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if deckPath != "" {
			cfg.Deck.Path = deckPath
		}
		if logPath != "" {
			cfg.Log.Path = logPath
		}
		if skipIntro {
			cfg.Intro.Skip = true
		}
		logger, err = logging.New(cfg.Log.Path, cfg.Log.Level, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPresenter()
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the deck for unknown types and missing content",
	RunE:  runValidate,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write the effective configuration to the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "configuration saved")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&deckPath, "deck", "", "deck file (YAML); defaults to the built-in deck")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/slides/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write diagnostics to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level diagnostics")
	rootCmd.Flags().BoolVar(&skipIntro, "skip-intro", false, "start on the first slide without the intro")

	outlineCmd.Flags().BoolVar(&rawOutline, "raw", false, "print markdown without rendering it")

	rootCmd.AddCommand(validateCmd, outlineCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadDeck() (deck.Deck, error) {
	if cfg.Deck.Path == "" {
		return deck.Default()
	}
	return deck.LoadFile(cfg.Deck.Path)
}

func runPresenter() error {
	d, err := loadDeck()
	if err != nil {
		return err
	}
	for _, is := range deck.Validate(d) {
		logger.Warn("deck issue", zap.String("issue", is.String()))
	}

	st := presentation.NewState(d, presentation.WithSkipIntro(cfg.Intro.Skip))
	app := tui.New(st, tui.Options{
		FrameInterval: cfg.FrameInterval(),
		WheelCooldown: cfg.WheelCooldown(),
		ExitDuration:  cfg.Render.ExitDuration,
		Sign:          cfg.Intro.Sign,
		Logger:        logger,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run presenter: %w", err)
	}
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	d, err := loadDeck()
	if err != nil {
		return err
	}
	issues := deck.Validate(d)
	out := cmd.OutOrStdout()
	for _, is := range issues {
		fmt.Fprintln(out, is.String())
	}
	if len(issues) > 0 {
		return fmt.Errorf("deck has %d issue(s)", len(issues))
	}
	fmt.Fprintf(out, "%d slides, no issues\n", d.Len())
	return nil
}
