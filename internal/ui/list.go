package ui

import (
	"fmt"
	"strings"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/state"
)

// listCard is one rendered entry of the discover listing.
type listCard struct {
	ID        int64
	Title     string
	PosterURL string
}

// listCards builds one card per movie, preserving listing order.
func listCards(movies []catalog.MovieSummary, imageBase string) []listCard {
	cards := make([]listCard, 0, len(movies))
	for _, mv := range movies {
		title := strings.TrimSpace(mv.Title)
		if title == "" {
			title = fmt.Sprintf("Untitled #%d", mv.ID)
		}
		cards = append(cards, listCard{
			ID:        mv.ID,
			Title:     title,
			PosterURL: catalog.ImageURL(imageBase, mv.PosterPath),
		})
	}
	return cards
}

// visibleRange returns the [start, end) window of cards that keeps cursor on screen.
func visibleRange(total, cursor, rows int) (int, int) {
	perPage := max(rows/cardHeight, 1)
	start := 0
	if cursor >= perPage {
		start = cursor - perPage + 1
	}
	end := min(start+perPage, total)
	return start, end
}

// backZoneID names the mouse zone around the Back hint on the detail screen.
const backZoneID = "back"

// cardZoneID names the mouse zone around a card.
func cardZoneID(id int64) string {
	return fmt.Sprintf("movie-%d", id)
}

// renderListBody renders the cards inside the list pane. mark, when set,
// wraps each card so it can be clicked.
func renderListBody(snap state.Snapshot, cards []listCard, cursor int, theme Theme, width, rows int, mark func(id string, s string) string) string {
	styles := theme.Styles().WithBackground(theme.SurfaceAlt)

	if len(cards) == 0 {
		switch {
		case snap.DiscoverPending:
			return styles.WarningText.Render("Loading movies...")
		case snap.LastError != nil:
			return styles.DangerText.Render("Could not load movies.") + "\n" +
				styles.MutedText.Render(truncate(snap.LastError.Error(), max(width, 10)))
		default:
			return styles.MutedText.Render("No movies to show.")
		}
	}

	start, end := visibleRange(len(cards), cursor, rows)
	blocks := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		card := cards[i]
		title := truncate(card.Title, max(width-2, 1))
		var titleLine, posterLine string
		if i == cursor {
			titleLine = styles.Selected.Width(width).Render("▸ " + title)
		} else {
			titleLine = styles.Text.Render("  " + title)
		}
		if card.PosterURL == "" {
			posterLine = styles.FaintText.Render("  no poster")
		} else {
			posterLine = styles.FaintText.Render("  " + truncate(card.PosterURL, max(width-2, 1)))
		}

		block := titleLine + "\n" + posterLine
		if mark != nil {
			block = mark(cardZoneID(card.ID), block)
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n")
}

// renderListView renders the list pane for the current snapshot.
func (m Model) renderListView() string {
	height := m.contentHeight()
	cards := listCards(m.snapshot.Movies, m.imageBase)
	body := renderListBody(m.snapshot, cards, m.cursor, m.theme, max(m.width-2, 1), max(height-boxChrome, 1), m.zones.Mark)

	title := "Discover"
	if len(cards) > 0 {
		title = fmt.Sprintf("Discover (%d/%d)", m.cursor+1, len(cards))
	}
	return m.renderTitledBox(title, body, m.width, height)
}
