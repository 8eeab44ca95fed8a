package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// statusLines is the height reserved for the status line.
const statusLines = 1

const (
	colorDim    = "60"      // muted purple
	colorAccent = "#ffb6a5" // moonlit rose
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready || m.frame == "" {
		return ""
	}
	if !m.showStatus {
		return m.frame
	}
	return m.frame + "\n" + m.renderStatus()
}

// renderStatus summarises the scene in one line.
func (m Model) renderStatus() string {
	dimStyle := m.renderer.NewStyle().Foreground(lipgloss.Color(colorDim))
	accentStyle := m.renderer.NewStyle().Foreground(lipgloss.Color(colorAccent))

	st := m.scene.Stats()
	parts := []string{
		accentStyle.Render("☾ nightsky"),
		dimStyle.Render(fmt.Sprintf("%.0fx%.0f px", st.Viewport.W, st.Viewport.H)),
		dimStyle.Render(fmt.Sprintf("%d stars", st.Stars)),
		dimStyle.Render(fmt.Sprintf("%d meteors", st.Meteors)),
		dimStyle.Render(fmt.Sprintf("%.0f fps", m.fps)),
		dimStyle.Render("q: quit"),
	}

	line := " " + strings.Join(parts, dimStyle.Render(" | "))
	return m.renderer.NewStyle().MaxWidth(m.width).Render(line)
}
