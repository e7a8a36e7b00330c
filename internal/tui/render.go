package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed   = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"} // Dark red / Bright red
	colorGray  = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan  = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
	colorPink  = lipgloss.AdaptiveColor{Light: "#ad1457", Dark: "#ff79c6"} // Deep pink / Soft pink
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleGreeting = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPink)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleButton = lipgloss.NewStyle().
			Foreground(colorCyan)

	styleButtonFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}).
				Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"})
)

// renderMain renders the card view: banners, confetti, the message card,
// the status bar and the live region.
func (m *Model) renderMain() string {
	var sections []string

	if banners := m.renderBanners(); banners != "" {
		sections = append(sections, banners)
	}

	if m.settings.Animation {
		sections = append(sections, m.renderConfetti())
	}

	sections = append(sections, m.renderCard())

	body := lipgloss.JoinVertical(lipgloss.Center, sections...)

	placed := lipgloss.Place(
		m.width,
		m.height-2, // leave room for status bar and live region
		lipgloss.Center,
		lipgloss.Center,
		body,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		placed,
		m.renderStatusBar(),
		m.renderLiveRegion(),
	)
}

// renderBanners stacks active notifications newest-last. Exiting banners
// render dimmed for their transition window.
func (m *Model) renderBanners() string {
	banners := m.notifications.Banners()
	if len(banners) == 0 {
		return ""
	}

	lines := make([]string, 0, len(banners))
	for _, b := range banners {
		style := styleSuccess
		prefix := "✓ "
		if b.Kind == bannerError {
			style = styleError
			prefix = "✗ "
		}
		if b.Exiting {
			style = styleSubtle
		}
		lines = append(lines, style.Render(prefix+b.Message))
	}
	return strings.Join(lines, "\n")
}

// renderConfetti draws the particle band above the card.
func (m *Model) renderConfetti() string {
	width := m.confettiWidth()
	if width <= 0 {
		return ""
	}

	field := m.animation.Confetti()
	frame := field.Frame()

	grid := make([][]string, confettiRows)
	for y := range grid {
		grid[y] = make([]string, width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	for _, p := range field.Particles() {
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= confettiRows {
			continue
		}
		if !p.Visible(frame) {
			continue
		}
		cell := lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Color)).
			Render(string(p.Glyph))
		grid[p.Y][p.X] = cell
	}

	rows := make([]string, confettiRows)
	for y := range grid {
		rows[y] = strings.Join(grid[y], "")
	}
	return strings.Join(rows, "\n")
}

// renderCard draws the message card: candle, greeting, edit hint. The
// border flashes green during the success window.
func (m *Model) renderCard() string {
	borderColor := colorGray
	if m.cardGlow {
		borderColor = colorGreen
	}

	greeting := fmt.Sprintf(m.settings.Message, m.displayName)

	var candle string
	if m.settings.Animation {
		candle = m.renderCandle()
	}

	var b strings.Builder
	if candle != "" {
		b.WriteString(candle)
		b.WriteString("\n\n")
	}
	b.WriteString(styleGreeting.Render(greeting))
	b.WriteString("\n\n")
	b.WriteString(styleSubtle.Render("press e to edit the name"))

	cardWidth := min(44, max(24, m.width-6))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(cardWidth).
		Padding(1, 2).
		Align(lipgloss.Center).
		Render(b.String())
}

// renderCandle draws the candle with the flame's current glyph and color.
func (m *Model) renderCandle() string {
	flame := m.animation.Flame()
	flameLine := lipgloss.NewStyle().
		Foreground(lipgloss.Color(flame.Color())).
		Render(string(flame.Glyph()))

	return flameLine + "\n│\n┌┴┐\n└─┘"
}

// renderStatusBar draws the footer with key hints and the status message.
func (m *Model) renderStatusBar() string {
	hints := "[e] edit name  [r] replay  [y] copy  [?] help  [q] quit"

	replayNote := ""
	if m.animation.Animating() {
		replayNote = "  replaying..."
	}

	status := ""
	if m.statusMsg != "" {
		status = "  " + m.statusMsg
	}

	return styleSubtle.Render(hints+replayNote) + styleSuccess.Render(status)
}

// renderLiveRegion draws the polite screen-reader line with the current
// announcements, oldest first.
func (m *Model) renderLiveRegion() string {
	messages := m.announcer.Messages()
	if len(messages) == 0 {
		return " "
	}
	return styleSubtle.Render(strings.Join(messages, " · "))
}

// renderModalWithFooter renders a centered modal with a title and a
// subtle footer line.
func (m *Model) renderModalWithFooter(title, content, footer string, width, height int) string {
	inner := styleTitle.Render(title) + "\n\n" + content + "\n\n" + styleSubtle.Render(footer)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCyan).
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(inner)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderHelpModal renders the keyboard shortcut reference
func (m *Model) renderHelpModal() string {
	rows := []struct{ key, desc string }{
		{"e, ctrl+e", "Edit the recipient name"},
		{"r, space", "Replay the animation"},
		{"y", "Copy the greeting to the clipboard"},
		{"enter", "Save (in the edit dialog)"},
		{"tab / shift+tab", "Cycle focus in the edit dialog"},
		{"esc", "Close the open dialog"},
		{"?", "Toggle this help"},
		{"q, ctrl+c", "Quit"},
	}

	var b strings.Builder
	for _, r := range rows {
		// Pad before styling so ANSI codes don't break the column.
		b.WriteString(styleTitle.Render(fmt.Sprintf("%-16s", r.key)) + " " + r.desc + "\n")
	}
	b.WriteString("\n" + styleSubtle.Render(fmt.Sprintf("version %s", m.version)))

	return m.renderModalWithFooter("Help", b.String(), "[ESC] close", helpModalWidth, helpModalHeight)
}
