package cli

import (
	"github.com/spf13/cobra"

	"github.com/litescript/nightsky/internal/config"
	"github.com/litescript/nightsky/internal/window"
)

var (
	windowWidth  int
	windowHeight int
	windowTitle  string
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show the sky in a desktop window",
	Long: `Opens a resizable desktop window and animates the sky in it at native
resolution. Close the window or press Ctrl+C in the terminal to quit.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&windowWidth, "width", config.DefaultWindowWidth, "initial window width in pixels")
	windowCmd.Flags().IntVar(&windowHeight, "height", config.DefaultWindowHeight, "initial window height in pixels")
	windowCmd.Flags().StringVar(&windowTitle, "title", config.DefaultWindowTitle, "window title")

	rootCmd.AddCommand(windowCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	applyWindowFlags(cmd, cfg)
	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	logger, closeLog, err := stderrLogger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := signalContext()
	defer cancel()

	logger.Info("opening %dx%d window", cfg.Window.Width, cfg.Window.Height)
	return window.Run(ctx, newScene(cmd, cfg.Scene), *cfg, logger)
}

// applyWindowFlags overrides the config file with flags set on the command
// line.
func applyWindowFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("width") {
		cfg.Window.Width = windowWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Window.Height = windowHeight
	}
	if cmd.Flags().Changed("title") {
		cfg.Window.Title = windowTitle
	}
}
