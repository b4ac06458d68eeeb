// Package ui is the Bubble Tea front end of patternview.
//
// The Model polls a state.Store until the loader has published a report,
// then hands key presses to a nav.Navigator and renders whichever view the
// navigator reports as active:
//
//   - Pattern: the pattern table with a preview of the selected pattern's samples
//   - Sample: a summary of the selected pattern above its sample table
//   - Detail: the selected sample's raw log, pretty printed and coloured when it is JSON
//
// All navigation state lives in the navigator. The UI only decodes keys,
// keeps the detail viewport in sync and draws.
package ui
