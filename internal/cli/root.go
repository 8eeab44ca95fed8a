// Package cli implements the nightsky command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/nightsky/internal/config"
	"github.com/litescript/nightsky/internal/logging"
	"github.com/litescript/nightsky/internal/sky"
	"github.com/litescript/nightsky/internal/ui"
	"github.com/litescript/nightsky/internal/version"
)

// Flags shared by every command.
var (
	configPath string
	seed       uint64
	logLevel   string
	logFile    string
)

// showStatus is only meaningful for the terminal host.
var showStatus bool

var rootCmd = &cobra.Command{
	Use:   "nightsky",
	Short: "An animated night sky with a moon, twinkling stars and meteors",
	Long: `nightsky paints a night sky in the terminal: a dusk gradient, a glowing
moon, twinkling stars and the occasional meteor. Press q to quit.

Use "nightsky window" for a desktop window and "nightsky snapshot" to
render a single frame to a file.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTerminal,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate("nightsky version {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "path to a YAML config file")
	pf.Uint64Var(&seed, "seed", 0, "seed for a reproducible sky (default: random)")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "append logs to this file")

	rootCmd.Flags().BoolVar(&showStatus, "status", false, "show a status line under the sky")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runTerminal(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal; use \"nightsky snapshot\" for non-interactive output")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	// The TUI owns the screen, so logs only go to a file when asked.
	logger := logging.Discard()
	if logFile != "" {
		l, closeLog, err := logging.Open(logFile, logging.ParseLevel(logLevel))
		if err != nil {
			return err
		}
		defer closeLog()
		logger = l
	}

	ctx, cancel := signalContext()
	defer cancel()

	model := ui.New(ui.Options{
		Scene:         newScene(cmd, cfg.Scene),
		FrameInterval: cfg.Terminal.FrameInterval,
		Debounce:      cfg.Resize.Debounce,
		DotSize:       cfg.Terminal.DotSize,
		ShowStatus:    showStatus,
		Logger:        logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			logger.Info("stopped by signal")
			return nil
		}
		return fmt.Errorf("run terminal: %w", err)
	}
	return nil
}

// newScene seeds the scene from --seed when it was given.
func newScene(cmd *cobra.Command, cfg sky.Config) *sky.Scene {
	if cmd.Flags().Changed("seed") {
		return sky.NewSeededScene(cfg, seed)
	}
	return sky.NewScene(cfg, nil)
}

// stderrLogger builds the logger used by the non-interactive commands.
func stderrLogger(cmd *cobra.Command) (*logging.Logger, func() error, error) {
	level := logging.ParseLevel(logLevel)
	if logFile != "" {
		return logging.Open(logFile, level)
	}
	l := logging.New(level)
	l.SetOutput(cmd.ErrOrStderr())
	return l, func() error { return nil }, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}
