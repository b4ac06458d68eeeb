// Package state shares the report load between the loader goroutine and the
// UI.
//
// # Overview
//
// The loader writes one Update per fetch attempt and, if every attempt
// fails, a final Fail. The UI reads Snapshot on each tick until the
// snapshot is no longer Pending, then builds its navigator from the
// snapshot's patterns.
//
//	Producer (loader):             Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ report.Load()  │            │                 │
//	│      ↓         │            │                 │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓          │
//	│ retry / Fail() │            │  render UI      │
//	└────────────────┘            └─────────────────┘
//
// # Update Semantics
//
// A failed attempt keeps any previous data and records the error. A
// successful attempt replaces the patterns and clears the error. Fail only
// flips the terminal flag; Begin resets everything for a new source.
//
// # Copying
//
// Update and Snapshot deep-copy the pattern slice, including samples and
// percents, so the UI can hand the patterns to a navigator without sharing
// memory with the loader.
//
// The zero Store is ready to use.
package state
