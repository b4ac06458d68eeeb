package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

var (
	// ErrEmptyReport is returned when a report holds no patterns.
	ErrEmptyReport = errors.New("report contains no patterns")
	// ErrZeroCount is returned when every pattern has a zero count.
	ErrZeroCount = errors.New("report total count is zero")
)

// DefaultKeyPrefix is the object key prefix reports are published under.
const DefaultKeyPrefix = "log-patterns-reports"

// Source provides the raw bytes of a report.
type Source interface {
	// Describe returns a human-readable location, used in titles and logs.
	Describe() string
	Fetch(ctx context.Context) ([]byte, error)
}

// FileSource reads a report from the local filesystem.
type FileSource struct {
	Path string
}

// Describe implements Source.
func (s FileSource) Describe() string {
	return s.Path
}

// Fetch implements Source.
func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(s.Path) == "" {
		return nil, fmt.Errorf("report path is empty")
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	return data, nil
}

// Decode parses a report document and orders its patterns by count,
// highest first. Patterns with equal counts keep their file order.
func Decode(data []byte) ([]Pattern, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}

	patterns := make([]Pattern, len(raw))
	for i, msg := range raw {
		if err := json.Unmarshal(msg, &patterns[i]); err != nil {
			return nil, fmt.Errorf("parse pattern %d: %w", i, err)
		}
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Count > patterns[j].Count
	})
	return patterns, nil
}

// Validate rejects reports the viewer cannot display.
func Validate(patterns []Pattern) error {
	if len(patterns) == 0 {
		return ErrEmptyReport
	}
	if TotalCount(patterns) == 0 {
		return ErrZeroCount
	}
	return nil
}

// Load fetches a report from src and parses it.
func Load(ctx context.Context, src Source) ([]Pattern, error) {
	if src == nil {
		return nil, fmt.Errorf("report source is nil")
	}
	data, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a report, then computes percentages. Every
// pattern of a successfully parsed report has its Percent set.
func Parse(data []byte) ([]Pattern, error) {
	patterns, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if err := Validate(patterns); err != nil {
		return nil, err
	}
	ComputePercentages(patterns)
	return patterns, nil
}

// ObjectKey builds the storage key of a monthly report.
func ObjectKey(prefix, namespace, app string, year, month int) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return fmt.Sprintf("%s/%s/%s/%d/%02d/report.json", prefix, namespace, app, year, month)
}
