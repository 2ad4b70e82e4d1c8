package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/state"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render("marquee", styles.Logo)}

	switch m.snapshot.Screen() {
	case state.ScreenDetail:
		parts = append(parts, bg.Render("Details", styles.AccentText))
	default:
		parts = append(parts, bg.Render("Discover", styles.AccentText))
	}

	parts = append(parts,
		bg.Render("Movies:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(m.snapshot.Movies)), styles.Text),
	)

	if m.snapshot.Pending() {
		parts = append(parts,
			bg.Render(m.spinner.View(), styles.WarningText)+bg.Space()+
				bg.Render("Loading...", styles.WarningText.Bold(true)),
		)
	} else if !m.snapshot.LastUpdated.IsZero() && !compact {
		parts = append(parts, bg.Render(m.snapshot.LastUpdated.Format("15:04:05"), styles.MutedText))
	}

	if err := m.snapshot.LastError; err != nil {
		maxErr := 80
		if compact {
			maxErr = 40
		}
		parts = append(parts,
			bg.Render(classifyCatalogError(err), styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(truncate(err.Error(), maxErr), styles.DangerText),
		)
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// classifyCatalogError maps a fetch error to a short header label.
func classifyCatalogError(err error) string {
	if err == nil {
		return ""
	}
	var rse *catalog.RemoteServiceError
	if errors.As(err, &rse) {
		switch {
		case rse.IsUnauthorized():
			return "BAD API KEY"
		case rse.IsNotFound():
			return "NOT FOUND"
		case rse.StatusCode != 0:
			return fmt.Sprintf("HTTP %d", rse.StatusCode)
		}
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	case strings.Contains(msg, "decode response"):
		return "BAD RESPONSE"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the key hints for the current screen.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc, zone string }
	var commands []cmd

	switch m.snapshot.Screen() {
	case state.ScreenDetail:
		commands = []cmd{
			{"esc", "Back", backZoneID},
			{"j/k", "Scroll", ""},
			{"ctrl+d/u", "Page", ""},
			{"?", "More", ""},
			{"q", "Quit", ""},
		}
	default:
		commands = []cmd{
			{"enter", "Details", ""},
			{"j/k", "Navigate", ""},
			{"g/G", "Top/Bottom", ""},
			{"?", "More", ""},
			{"q", "Quit", ""},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segment := bg.Render(c.key, styles.AccentText) + colon + bg.Render(c.desc, styles.MutedText)
		if c.zone != "" {
			segment = m.zones.Mark(c.zone, segment)
		}
		segments = append(segments, segment)
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Footer.Width(m.width).Render(bg.Join(segments, "  "))
}

// renderTitledBox draws a bordered box with the title set into the top edge.
func (m Model) renderTitledBox(title, content string, width, height int) string {
	bgColor := lipgloss.Color(m.theme.SurfaceAlt)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.BorderFocus)).Background(bgColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text)).Background(bgColor)

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 1))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := borderStyle.Render("┌"+strings.Repeat("─", leftPad)) +
		titleStyle.Render(" "+title+" ") +
		borderStyle.Render(strings.Repeat("─", rightPad)+"┐")
	bottomBorder := borderStyle.Render("└" + strings.Repeat("─", innerWidth) + "┘")

	contentStyle := lipgloss.NewStyle().
		Width(innerWidth).
		MaxWidth(innerWidth).
		Background(bgColor)
	side := borderStyle.Render("│")

	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-boxChrome, 0)
	lines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		lines = append(lines, side+contentStyle.Render(line)+side)
	}

	return topBorder + "\n" + strings.Join(lines, "\n") + "\n" + bottomBorder
}
