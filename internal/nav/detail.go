package nav

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FormatRawLog renders a raw log line for the detail view. Lines that are a
// single valid JSON value are pretty printed with two-space indentation and
// object keys in sorted order. Number literals keep their source text.
// Anything else is returned as is.
func FormatRawLog(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !json.Valid([]byte(trimmed)) {
		return raw
	}

	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return raw
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return raw
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// IsJSON reports whether raw holds a single valid JSON value.
func IsJSON(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed != "" && json.Valid([]byte(trimmed))
}
