package cli

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/litescript/nightsky/internal/config"
	"github.com/litescript/nightsky/internal/raster"
	"github.com/litescript/nightsky/internal/sky"
)

// Snapshot output formats.
const (
	formatANSI = "ansi"
	formatPNG  = "png"
)

var (
	snapshotFormat string
	snapshotOut    string
	snapshotAt     time.Duration
	snapshotCols   int
	snapshotRows   int
	snapshotWidth  int
	snapshotHeight int
	snapshotWarmup int
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render a single frame to a file or stdout",
	Long: `Renders one frame of the sky without opening a terminal UI or window.

ANSI output is sized in terminal cells (--cols/--rows) and uses truecolor
escapes. PNG output is sized in pixels (--width/--height). Use --warmup to
run frames before the captured one so meteors have a chance to appear.`,
	Example: `  nightsky snapshot --cols 100 --rows 30
  nightsky snapshot --format png --width 1920 --height 1080 --out sky.png --seed 7`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runSnapshot,
}

func init() {
	f := snapshotCmd.Flags()
	f.StringVar(&snapshotFormat, "format", formatANSI, "output format (ansi, png)")
	f.StringVarP(&snapshotOut, "out", "o", "-", "output file (- for stdout)")
	f.DurationVar(&snapshotAt, "at", 2*time.Second, "animation time of the captured frame")
	f.IntVar(&snapshotCols, "cols", 80, "ANSI width in cells")
	f.IntVar(&snapshotRows, "rows", 24, "ANSI height in lines")
	f.IntVar(&snapshotWidth, "width", config.DefaultWindowWidth, "PNG width in pixels")
	f.IntVar(&snapshotHeight, "height", config.DefaultWindowHeight, "PNG height in pixels")
	f.IntVar(&snapshotWarmup, "warmup", 0, "frames to run before the captured one")

	snapshotCmd.MarkFlagsMutuallyExclusive("cols", "width")
	snapshotCmd.MarkFlagsMutuallyExclusive("rows", "height")

	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	if snapshotFormat != formatANSI && snapshotFormat != formatPNG {
		return fmt.Errorf("unknown format %q (want %s or %s)", snapshotFormat, formatANSI, formatPNG)
	}
	if snapshotWarmup < 0 {
		return fmt.Errorf("--warmup must be >= 0, got %d", snapshotWarmup)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := stderrLogger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()
	log := logger.Named("snapshot")

	canvas, err := snapshotCanvas(cfg)
	if err != nil {
		return err
	}

	scene := newScene(cmd, cfg.Scene)
	renderFrames(scene, canvas, snapshotAt, snapshotWarmup, cfg.Terminal.FrameInterval)
	st := scene.Stats()
	log.Debug("rendered %d frames at %v: %d stars, %d meteors", st.Frames, snapshotAt, st.Stars, st.Meteors)

	var w io.Writer = cmd.OutOrStdout()
	if snapshotOut != "-" {
		f, err := os.Create(snapshotOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := writeSnapshot(w, canvas, snapshotFormat); err != nil {
		return err
	}
	if snapshotOut != "-" {
		log.Info("wrote %s snapshot to %s", snapshotFormat, snapshotOut)
	}
	return nil
}

// snapshotCanvas sizes a raster for the selected format. ANSI uses the
// terminal dot size; PNG draws one dot per pixel.
func snapshotCanvas(cfg *config.Config) (*raster.Canvas, error) {
	if snapshotFormat == formatPNG {
		if snapshotWidth <= 0 || snapshotHeight <= 0 {
			return nil, fmt.Errorf("invalid PNG size %dx%d", snapshotWidth, snapshotHeight)
		}
		return raster.New(snapshotWidth, snapshotHeight, 1), nil
	}
	if snapshotCols <= 0 || snapshotRows <= 0 {
		return nil, fmt.Errorf("invalid terminal size %dx%d", snapshotCols, snapshotRows)
	}
	return raster.New(snapshotCols, snapshotRows*2, cfg.Terminal.DotSize), nil
}

// renderFrames sizes the scene to the canvas and runs warmup frames spaced
// one interval apart, ending with the frame at time at.
func renderFrames(scene *sky.Scene, canvas *raster.Canvas, at time.Duration, warmup int, interval time.Duration) {
	scene.Resize(canvas.Width(), canvas.Height())
	for i := warmup; i >= 0; i-- {
		ts := at - time.Duration(i)*interval
		if ts < 0 {
			ts = 0
		}
		scene.Frame(ts, canvas)
	}
}

func writeSnapshot(w io.Writer, canvas *raster.Canvas, format string) error {
	switch format {
	case formatPNG:
		if err := png.Encode(w, canvas.Image()); err != nil {
			return fmt.Errorf("failed to encode PNG: %w", err)
		}
	default:
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.TrueColor)
		if _, err := io.WriteString(w, canvas.ANSI(r)+"\n"); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
	}
	return nil
}
