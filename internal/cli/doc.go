// Package cli defines the patternview command line.
//
// The root command parses report selection flags into app.Options and hands
// them to a RunFunc; a version subcommand prints build information.
package cli
