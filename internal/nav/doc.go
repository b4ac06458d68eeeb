// Package nav holds the navigation state of the viewer: which view is
// active, which pattern and sample rows are selected, and the rendered
// detail text with its scroll offset.
//
// A Navigator is driven by Action values and read through its query
// methods. It never performs I/O and is not safe for concurrent use; the UI
// owns it from its update loop.
package nav
