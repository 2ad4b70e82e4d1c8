package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/logging"
	"github.com/five82/marquee/internal/logtail"
	"github.com/five82/marquee/internal/state"
)

// showConcurrency bounds the detail fetches Show runs at once.
const showConcurrency = 4

// List prints the discover listing without starting the TUI.
func List(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger := logging.NewConsole(opts.stderr(), cfg.Logging.Level)

	client, err := newClient(cfg, opts.Version, logger)
	if err != nil {
		return err
	}

	coord := state.NewCoordinator(client, logger)
	coord.Mount(ctx)
	coord.Wait()

	snap := coord.Snapshot()
	if snap.LastError != nil {
		return fmt.Errorf("discover movies: %w", snap.LastError)
	}

	out := opts.stdout()
	st := newPrintStyles(out)
	if len(snap.Movies) == 0 {
		_, err := fmt.Fprintln(out, st.muted.Render("No movies."))
		return err
	}
	for _, mv := range snap.Movies {
		poster := catalog.ImageURL(cfg.ImageURL, mv.PosterPath)
		if poster == "" {
			poster = "-"
		}
		line := st.id.Render(fmt.Sprintf("%8d", mv.ID)) + "  " +
			st.title.Render(mv.Title) + "  " +
			st.muted.Render(poster)
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	logger.Debug().Int("count", len(snap.Movies)).Msg("listed movies")
	return nil
}

// Show fetches the details for ids concurrently and prints them in the
// order given.
func Show(ctx context.Context, opts Options, ids []int64) error {
	if len(ids) == 0 {
		return fmt.Errorf("no movie ids given")
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger := logging.NewConsole(opts.stderr(), cfg.Logging.Level)

	client, err := newClient(cfg, opts.Version, logger)
	if err != nil {
		return err
	}

	details := make([]*catalog.MovieDetail, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(showConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			d, err := client.FetchMovieDetail(gctx, id)
			if err != nil {
				return fmt.Errorf("movie %d: %w", id, err)
			}
			details[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := opts.stdout()
	st := newPrintStyles(out)
	for i, d := range details {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(out, formatDetail(st, d, cfg.ImageURL)); err != nil {
			return err
		}
	}
	return nil
}

type printStyles struct {
	id    lipgloss.Style
	title lipgloss.Style
	label lipgloss.Style
	muted lipgloss.Style
}

// newPrintStyles binds styles to w so colour is dropped when w is not a terminal.
func newPrintStyles(w io.Writer) printStyles {
	r := lipgloss.NewRenderer(w)
	return printStyles{
		id:    r.NewStyle().Foreground(lipgloss.Color("#dbc074")),
		title: r.NewStyle().Bold(true),
		label: r.NewStyle().Foreground(lipgloss.Color("#719cd6")),
		muted: r.NewStyle().Foreground(lipgloss.Color("#738091")),
	}
}

func formatDetail(st printStyles, d *catalog.MovieDetail, imageBase string) string {
	var b strings.Builder
	field := func(name, value string) {
		if value == "" {
			return
		}
		b.WriteString(st.label.Render(fmt.Sprintf("%-10s", name)))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	b.WriteString(st.id.Render(fmt.Sprintf("%d", d.ID)) + "  " + st.title.Render(d.OriginalTitle) + "\n")
	if d.Title != "" && d.Title != d.OriginalTitle {
		field("Title", d.Title)
	}
	field("Tagline", d.Tagline)
	field("Released", d.ReleaseDate)
	if d.Runtime > 0 {
		field("Runtime", fmt.Sprintf("%d min", d.Runtime))
	}
	if d.VoteAverage > 0 {
		field("Rating", fmt.Sprintf("%.1f", d.VoteAverage))
	}
	field("Genres", strings.Join(d.GenreNames(), ", "))
	field("Backdrop", catalog.ImageURL(imageBase, d.BackdropPath))
	field("Homepage", d.Homepage)
	field("Overview", d.Overview)
	return b.String()
}

// Logs prints the last n entries of the TUI log file.
func Logs(ctx context.Context, opts Options, n int) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	lines, err := logtail.Tail(cfg.Logging.File, n)
	if err != nil {
		return err
	}
	out := opts.stdout()
	if len(lines) == 0 {
		_, err := fmt.Fprintf(out, "no log entries in %s\n", cfg.Logging.File)
		return err
	}
	f, isFile := out.(*os.File)
	return logtail.Render(out, lines, isFile && logging.IsTerminal(f))
}
