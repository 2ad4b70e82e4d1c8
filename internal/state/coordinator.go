package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/marquee/internal/catalog"
)

// ErrUnknownMovie is returned when selecting an id absent from the listing.
var ErrUnknownMovie = errors.New("movie is not in the current listing")

// Snapshot represents the latest data available to the views.
type Snapshot struct {
	Movies          []catalog.MovieSummary
	SelectedID      int64
	HasSelection    bool
	Detail          *catalog.MovieDetail
	DiscoverPending bool
	DetailPending   bool
	LastUpdated     time.Time
	LastError       error
	// Version increases with every state change. A snapshot with a lower
	// Version than one already seen is outdated.
	Version uint64
}

// Screen names the view a snapshot should render.
type Screen int

const (
	ScreenList Screen = iota
	ScreenDetail
)

// Screen returns ScreenDetail while a selection is present.
func (s Snapshot) Screen() Screen {
	if s.HasSelection {
		return ScreenDetail
	}
	return ScreenList
}

// Pending reports whether any fetch is in flight.
func (s Snapshot) Pending() bool {
	return s.DiscoverPending || s.DetailPending
}

// detailTicket tags a dispatched detail request. Only the ticket matching
// the coordinator's current one may update state.
type detailTicket struct {
	id  int64
	seq uint64
}

// Coordinator owns the movie listing, the selection and the selected
// movie's detail, and runs the fetches that keep them in sync.
type Coordinator struct {
	fetcher catalog.Fetcher
	logger  zerolog.Logger

	mountOnce sync.Once
	inflight  sync.WaitGroup

	mu          sync.RWMutex
	snapshot    Snapshot
	current     detailTicket
	seq         uint64
	subscribers map[int]chan Snapshot
	nextSub     int
}

// NewCoordinator returns a coordinator in the list state with no movies.
func NewCoordinator(fetcher catalog.Fetcher, logger zerolog.Logger) *Coordinator {
	return &Coordinator{
		fetcher:     fetcher,
		logger:      logger.With().Str("component", "coordinator").Logger(),
		subscribers: make(map[int]chan Snapshot),
	}
}

// Mount dispatches the discover fetch. Only the first call has any effect.
// It returns immediately; the listing arrives through Subscribe.
func (c *Coordinator) Mount(ctx context.Context) {
	c.mountOnce.Do(func() {
		c.mu.Lock()
		c.snapshot.DiscoverPending = true
		c.inflight.Add(1)
		c.publishLocked()
		c.mu.Unlock()

		go c.loadDiscover(ctx)
	})
}

func (c *Coordinator) loadDiscover(ctx context.Context) {
	defer c.inflight.Done()

	movies, err := c.fetcher.FetchDiscoverList(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot.DiscoverPending = false
	c.snapshot.LastUpdated = time.Now()
	if err != nil {
		c.logger.Warn().Err(err).Msg("discover fetch failed")
		c.snapshot.LastError = err
		c.publishLocked()
		return
	}
	c.logger.Debug().Int("count", len(movies)).Msg("discover fetch complete")
	c.snapshot.Movies = cloneMovies(movies)
	c.snapshot.LastError = nil
	c.publishLocked()
}

// SelectMovie selects id and dispatches its detail fetch. Selecting the
// movie that is already selected does nothing.
func (c *Coordinator) SelectMovie(ctx context.Context, id int64) error {
	c.mu.Lock()
	if c.snapshot.HasSelection && c.snapshot.SelectedID == id {
		c.mu.Unlock()
		return nil
	}
	if !containsMovie(c.snapshot.Movies, id) {
		c.mu.Unlock()
		return fmt.Errorf("select %d: %w", id, ErrUnknownMovie)
	}

	c.seq++
	ticket := detailTicket{id: id, seq: c.seq}
	c.current = ticket
	c.snapshot.SelectedID = id
	c.snapshot.HasSelection = true
	c.snapshot.Detail = nil
	c.snapshot.DetailPending = true
	c.inflight.Add(1)
	c.publishLocked()
	c.mu.Unlock()

	go c.loadDetail(ctx, ticket)
	return nil
}

func (c *Coordinator) loadDetail(ctx context.Context, ticket detailTicket) {
	defer c.inflight.Done()

	detail, err := c.fetcher.FetchMovieDetail(ctx, ticket.id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.snapshot.HasSelection || c.current != ticket {
		c.logger.Debug().
			Int64("movie_id", ticket.id).
			Uint64("seq", ticket.seq).
			Msg("discarding stale detail response")
		return
	}
	c.snapshot.DetailPending = false
	c.snapshot.LastUpdated = time.Now()
	if err != nil {
		c.logger.Warn().Err(err).Int64("movie_id", ticket.id).Msg("detail fetch failed")
		c.snapshot.LastError = err
		c.publishLocked()
		return
	}
	c.snapshot.Detail = detail.Clone()
	c.snapshot.LastError = nil
	c.publishLocked()
}

// ClearSelection returns to the list state. It is a no-op when nothing is
// selected. Any detail response still in flight is discarded on arrival.
func (c *Coordinator) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.snapshot.HasSelection {
		return
	}
	c.seq++
	c.current = detailTicket{seq: c.seq}
	c.snapshot.SelectedID = 0
	c.snapshot.HasSelection = false
	c.snapshot.Detail = nil
	c.snapshot.DetailPending = false
	c.publishLocked()
}

// Snapshot returns a copy of the current state.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cloneLocked()
}

// Subscribe returns a channel that receives the newest snapshot after every
// state change. A slow reader only ever sees the most recent snapshot.
// Call the returned func to stop receiving.
func (c *Coordinator) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subscribers[id] = ch
	c.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subscribers, id)
			c.mu.Unlock()
		})
	}
}

// Wait blocks until every dispatched fetch has returned.
func (c *Coordinator) Wait() {
	c.inflight.Wait()
}

// publishLocked advances the snapshot version and hands the result to every
// subscriber, replacing any snapshot the subscriber has not read yet.
// Callers hold c.mu and call it once per state change.
func (c *Coordinator) publishLocked() {
	c.snapshot.Version++
	if len(c.subscribers) == 0 {
		return
	}
	for _, ch := range c.subscribers {
		snap := c.cloneLocked()
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}

func (c *Coordinator) cloneLocked() Snapshot {
	snap := c.snapshot
	snap.Movies = cloneMovies(c.snapshot.Movies)
	snap.Detail = c.snapshot.Detail.Clone()
	return snap
}

func containsMovie(movies []catalog.MovieSummary, id int64) bool {
	for _, m := range movies {
		if m.ID == id {
			return true
		}
	}
	return false
}

func cloneMovies(items []catalog.MovieSummary) []catalog.MovieSummary {
	if len(items) == 0 {
		return nil
	}
	dup := make([]catalog.MovieSummary, len(items))
	copy(dup, items)
	return dup
}
