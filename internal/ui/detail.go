package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/state"
)

// renderDetailBody renders the selected movie's detail for the viewport.
// While the detail is missing it shows placeholders instead of stale data.
func renderDetailBody(snap state.Snapshot, imageBase string, theme Theme, width int) string {
	styles := theme.Styles().WithBackground(theme.SurfaceAlt)
	label := func(s string) string { return styles.MutedText.Render(s) }
	wrap := lipgloss.NewStyle().Width(max(width, 10))

	d := snap.Detail
	if d == nil {
		var b strings.Builder
		switch {
		case snap.DetailPending:
			b.WriteString(styles.WarningText.Render("Loading details..."))
		case snap.LastError != nil:
			b.WriteString(styles.DangerText.Render("Could not load details."))
			b.WriteString("\n")
			b.WriteString(wrap.Render(styles.MutedText.Render(snap.LastError.Error())))
		default:
			b.WriteString(styles.MutedText.Render("No details available."))
		}
		b.WriteString("\n\n")
		b.WriteString(label("Original title") + "\n" + styles.Text.Render(orPlaceholder("")) + "\n\n")
		b.WriteString(label("Overview") + "\n" + styles.Text.Render(orPlaceholder("")) + "\n\n")
		b.WriteString(label("Backdrop") + "\n" + styles.Text.Render(orPlaceholder("")))
		return b.String()
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(orPlaceholder(d.OriginalTitle)))
	if d.Title != "" && d.Title != d.OriginalTitle {
		b.WriteString(styles.MutedText.Render("  (" + d.Title + ")"))
	}
	b.WriteString("\n")
	if d.Tagline != "" {
		b.WriteString(wrap.Render(styles.InfoText.Italic(true).Render(d.Tagline)))
		b.WriteString("\n")
	}
	if meta := detailMeta(d); meta != "" {
		b.WriteString(styles.FaintText.Render(meta))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(label("Overview") + "\n")
	b.WriteString(wrap.Render(styles.Text.Render(orPlaceholder(d.Overview))))
	b.WriteString("\n\n")

	b.WriteString(label("Backdrop") + "\n")
	b.WriteString(styles.AccentText.Render(orPlaceholder(catalog.ImageURL(imageBase, d.BackdropPath))))

	if d.Homepage != "" {
		b.WriteString("\n\n")
		b.WriteString(label("Homepage") + "\n")
		b.WriteString(styles.AccentText.Render(d.Homepage))
	}
	return b.String()
}

// detailMeta joins year, runtime, rating and genres into one line.
func detailMeta(d *catalog.MovieDetail) string {
	var parts []string
	for _, p := range []string{releaseYear(d.ReleaseDate), formatRuntime(d.Runtime), formatRating(d.VoteAverage)} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if genres := d.GenreNames(); len(genres) > 0 {
		parts = append(parts, strings.Join(genres, ", "))
	}
	return strings.Join(parts, " · ")
}

// selectedTitle returns the listing title of the selected movie.
func selectedTitle(snap state.Snapshot) string {
	if !snap.HasSelection {
		return ""
	}
	for _, mv := range snap.Movies {
		if mv.ID == snap.SelectedID {
			return mv.Title
		}
	}
	return ""
}

// renderDetailView renders the detail pane around the viewport.
func (m Model) renderDetailView() string {
	title := selectedTitle(m.snapshot)
	if title == "" {
		title = "Details"
	}
	return m.renderTitledBox(title, m.viewport.View(), m.width, m.contentHeight())
}
