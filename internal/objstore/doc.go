// Package objstore downloads report objects from S3 or an S3-compatible
// store.
//
// Credentials and region come from the shared AWS configuration, optionally
// narrowed to a named profile. Reports live under
//
//	<prefix>/<namespace>/<app>/<year>/<month>/report.json
//
// (see report.ObjectKey) and are read in full; the viewer never writes.
//
// Retries are left to the caller. The app layer decides how often a failed
// download is attempted.
package objstore
