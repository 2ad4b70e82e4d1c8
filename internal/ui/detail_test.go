package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/state"
)

func TestRenderDetailBody_ShowsDetail(t *testing.T) {
	snap := state.Snapshot{
		Movies:       []catalog.MovieSummary{{ID: 1, Title: "A"}},
		SelectedID:   1,
		HasSelection: true,
		Detail: &catalog.MovieDetail{
			ID:            1,
			OriginalTitle: "A!",
			Overview:      "plot",
			BackdropPath:  "/b.jpg",
		},
	}
	body := renderDetailBody(snap, testImageBase, GetTheme("Nightfox"), 80)

	for _, want := range []string{"A!", "plot", testImageBase + "/b.jpg"} {
		if !strings.Contains(body, want) {
			t.Fatalf("detail body missing %q:\n%s", want, body)
		}
	}
	if strings.Contains(body, "Loading") {
		t.Fatalf("resolved detail still shows loading:\n%s", body)
	}
}

func TestRenderDetailBody_PlaceholdersWhilePending(t *testing.T) {
	snap := state.Snapshot{
		Movies:        []catalog.MovieSummary{{ID: 1, Title: "A"}},
		SelectedID:    1,
		HasSelection:  true,
		DetailPending: true,
	}
	body := renderDetailBody(snap, testImageBase, GetTheme("Nightfox"), 80)

	if !strings.Contains(body, "Loading details") {
		t.Fatalf("pending body = %q, want loading text", body)
	}
	if strings.Count(body, "—") != 3 {
		t.Fatalf("pending body should have three placeholders:\n%s", body)
	}
}

func TestRenderDetailBody_FailedFetch(t *testing.T) {
	snap := state.Snapshot{
		Movies:       []catalog.MovieSummary{{ID: 1, Title: "A"}},
		SelectedID:   1,
		HasSelection: true,
		LastError:    errors.New("catalog detail: status 404"),
	}
	body := renderDetailBody(snap, testImageBase, GetTheme("Nightfox"), 80)

	if !strings.Contains(body, "Could not load details") || !strings.Contains(body, "status 404") {
		t.Fatalf("failed body = %q", body)
	}
}

func TestRenderDetailBody_MissingFieldsUsePlaceholders(t *testing.T) {
	snap := state.Snapshot{
		SelectedID:   1,
		HasSelection: true,
		Detail:       &catalog.MovieDetail{ID: 1, OriginalTitle: "A!"},
	}
	body := renderDetailBody(snap, testImageBase, GetTheme("Nightfox"), 80)
	if strings.Count(body, "—") != 2 {
		t.Fatalf("expected overview and backdrop placeholders:\n%s", body)
	}
}

func TestDetailMeta(t *testing.T) {
	d := &catalog.MovieDetail{
		ReleaseDate: "2024-03-01",
		Runtime:     101,
		VoteAverage: 7.5,
		Genres:      []catalog.Genre{{ID: 18, Name: "Drama"}, {ID: 35, Name: "Comedy"}},
	}
	if got, want := detailMeta(d), "2024 · 1h 41m · ★ 7.5 · Drama, Comedy"; got != want {
		t.Fatalf("detailMeta = %q, want %q", got, want)
	}
	if got := detailMeta(&catalog.MovieDetail{}); got != "" {
		t.Fatalf("detailMeta(empty) = %q, want empty", got)
	}
}

func TestSelectedTitle(t *testing.T) {
	snap := state.Snapshot{
		Movies:       []catalog.MovieSummary{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}},
		SelectedID:   2,
		HasSelection: true,
	}
	if got := selectedTitle(snap); got != "B" {
		t.Fatalf("selectedTitle = %q, want B", got)
	}
	snap.HasSelection = false
	if got := selectedTitle(snap); got != "" {
		t.Fatalf("selectedTitle without selection = %q, want empty", got)
	}
}
