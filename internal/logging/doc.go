// Package logging builds the zerolog logger used by the app and loader.
//
// Logs are newline-delimited JSON appended to the file named by the log_file
// setting. Each subsystem tags its entries with a "component" field via
// Component.
package logging
