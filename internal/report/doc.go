// Package report holds the log-pattern report data model.
//
// A report is a JSON array of patterns. Each pattern carries its template
// text, an occurrence count and a list of samples. The samples field is
// stored as a JSON string containing the encoded array:
//
//	[
//	  {
//	    "patterns": "user <*> logged in",
//	    "count": 10,
//	    "samples": "[{\"predict\":0,\"date\":\"2022-03-01T10:00:00Z\",\"rawlog\":\"user 7 logged in\"}]"
//	  }
//	]
//
// Load is the single entry point used by the application: it fetches the
// bytes from a Source, decodes them, sorts patterns by count (highest first),
// rejects empty or zero-count reports and computes every pattern's share of
// the total. After Load returns, the patterns are treated as read-only.
package report
