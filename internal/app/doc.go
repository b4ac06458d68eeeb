// Package app is the composition root of patternview.
//
// # Overview
//
// Run wires configuration, logging, the report source, the shared
// state.Store and the Bubble Tea UI together:
//
//  1. Validate the command line options
//  2. Load ~/.config/patternview/config.toml and apply flag overrides
//  3. Open the log file (the terminal belongs to the UI)
//  4. Build the report source: a local file or an S3 object
//  5. Start the loader goroutine, which fetches the report once
//  6. Run the UI until the user quits or the load fails
//
// # Data Flow
//
//	┌──────────────┐
//	│  StartLoader │ fetch, parse, retry with backoff
//	└──────┬───────┘
//	       │ Update / Fail
//	       ▼
//	┌──────────────┐
//	│ state.Store  │ one snapshot, cloned on read
//	└──────┬───────┘
//	       │ Snapshot (polled)
//	       ▼
//	┌──────────────┐
//	│   ui.Model   │ builds nav.Navigator once Loaded
//	└──────────────┘
//
// # Retries
//
// Only fetch errors are retried. A report that arrives but fails to parse
// or validate fails immediately, since fetching it again returns the same
// bytes.
package app
