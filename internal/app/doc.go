// Package app wires configuration, logging, the catalog client, the view
// state coordinator and the UI together.
//
// # Overview
//
// This is the composition root. Every entry point loads the configuration
// once, builds one catalog.Client from it and hands explicit values to the
// components below; nothing reads globals.
//
// # Entry Points
//
//   - Run: the interactive TUI. Logs go to the configured log file because the
//     terminal belongs to Bubble Tea.
//   - List: prints the discover listing to stdout.
//   - Show: fetches several movie details concurrently (bounded by an
//     errgroup limit) and prints them in the order requested.
//
// List and Show log to stderr through a console writer, coloured only on a
// terminal.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()          Read config file + env
//	       ├─────> logging.NewFile()      JSON log file
//	       ├─────> catalog.NewClient()    HTTP client
//	       ├─────> state.NewCoordinator() Selection + fetch lifecycles
//	       └─────> ui.Run()               Bubble Tea program (blocks)
//
// # Error Handling
//
// Configuration problems (missing API key, bad URL, unparsable file, bad
// level) are returned before anything starts. Catalog failures inside the
// TUI are shown in the header; in List and Show they are returned wrapped so
// the CLI exits non-zero.
package app
