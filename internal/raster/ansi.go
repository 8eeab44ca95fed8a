package raster

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// halfBlock paints the upper half of a cell in the foreground colour; the
// background colour shows through the lower half.
const halfBlock = "▀"

// Lines returns the number of terminal lines ANSI produces.
func (c *Canvas) Lines() int {
	return (c.rows + 1) / 2
}

// ANSI encodes the canvas as terminal text, two dot rows per line. Runs of
// cells with identical colours share one style. A nil renderer uses the
// lipgloss default.
func (c *Canvas) ANSI(r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	var b strings.Builder
	for line := 0; line < c.Lines(); line++ {
		if line > 0 {
			b.WriteByte('\n')
		}
		top := line * 2
		bottom := top + 1
		if bottom >= c.rows {
			bottom = top
		}

		runStart := 0
		var runFg, runBg string
		for x := 0; x <= c.cols; x++ {
			var fg, bg string
			if x < c.cols {
				fg = hex(c.At(x, top))
				bg = hex(c.At(x, bottom))
				if x > runStart && fg == runFg && bg == runBg {
					continue
				}
			}
			if x > runStart {
				style := r.NewStyle().
					Foreground(lipgloss.Color(runFg)).
					Background(lipgloss.Color(runBg))
				b.WriteString(style.Render(strings.Repeat(halfBlock, x-runStart)))
			}
			runStart, runFg, runBg = x, fg, bg
		}
	}
	return b.String()
}

func hex(c colorful.Color) string {
	return c.Clamped().Hex()
}
