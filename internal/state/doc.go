// Package state coordinates the movie listing, the selection and the
// selected movie's detail for the marquee views.
//
// # Overview
//
// The Coordinator is the only writer of view state. Views read immutable
// Snapshots and request changes through three operations:
//
//   - Mount: fetch the discover listing (once per Coordinator)
//   - SelectMovie: select an id and fetch its detail
//   - ClearSelection: drop the selection and the detail
//
// # State Machine
//
//	           SelectMovie(id)
//	┌──────────┐ ─────────────→ ┌──────────────┐
//	│  List    │                │   Detail     │ ──┐ SelectMovie(other)
//	│ (no sel) │ ←───────────── │ (SelectedID) │ ←─┘ refetches
//	└──────────┘ ClearSelection └──────────────┘
//
// HasSelection carries presence; SelectedID is meaningful only when it is
// true. While a selection is present its detail fetch is in flight
// (DetailPending) or complete.
//
// # Stale Responses
//
// Every detail request is tagged with the selected id and a sequence number
// at dispatch. The response is applied only if that tag is still current, so
// a slow response for a movie the user already left is dropped instead of
// overwriting the newer selection. ClearSelection advances the sequence too.
//
// # Concurrency Model
//
// Fetches run on goroutines started by the Coordinator. Results are applied
// under the Coordinator's mutex and published to subscribers. Each
// subscription is a single-slot channel that always holds the newest
// snapshot, so a slow reader never blocks a fetch and never sees an outdated
// state after a newer one.
//
//	Coordinator                      UI event loop
//	┌───────────────────┐           ┌──────────────────┐
//	│ fetch (goroutine) │           │                  │
//	│       ↓           │  publish  │ <-Subscribe()    │
//	│ apply if current  │──────────→│ render(Snapshot) │
//	└───────────────────┘           └──────────────────┘
//
// # Error Handling
//
// A failed fetch never panics or clears data. The listing stays empty (or the
// detail absent) and LastError records the failure so the header can show it.
// The error value is shared between snapshots as is.
//
// # Ordering
//
// Every state change increments Snapshot.Version. A reader that holds a
// snapshot from Snapshot() and later receives an older one from its
// subscription can compare versions and keep the newer.
package state
