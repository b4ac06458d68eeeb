package report

import (
	"encoding/json"
	"fmt"
	"time"
)

// Pattern is one cluster of log lines sharing a template.
type Pattern struct {
	Text    string
	Count   uint64
	Samples []Sample

	// Percent is nil until ComputePercentages runs.
	Percent *float64
}

// Sample is a representative raw log line matched by a pattern.
type Sample struct {
	PredictedLabel int       `json:"predict"`
	Timestamp      time.Time `json:"date"`
	RawLog         string    `json:"rawlog"`
}

// wirePattern mirrors the persisted report format. Samples are stored as a
// JSON string that itself holds a JSON array.
type wirePattern struct {
	Text    *string `json:"patterns"`
	Count   *uint64 `json:"count"`
	Samples *string `json:"samples"`
}

// UnmarshalJSON decodes a pattern including its doubly-encoded samples.
func (p *Pattern) UnmarshalJSON(data []byte) error {
	var raw wirePattern
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Text == nil {
		return fmt.Errorf("missing patterns")
	}
	if raw.Count == nil {
		return fmt.Errorf("missing count")
	}
	if raw.Samples == nil {
		return fmt.Errorf("missing samples")
	}

	var samples []Sample
	if err := json.Unmarshal([]byte(*raw.Samples), &samples); err != nil {
		return fmt.Errorf("decode samples: %w", err)
	}

	*p = Pattern{
		Text:    *raw.Text,
		Count:   *raw.Count,
		Samples: samples,
	}
	return nil
}

// MarshalJSON writes the pattern back in the persisted format.
func (p Pattern) MarshalJSON() ([]byte, error) {
	samples := p.Samples
	if samples == nil {
		samples = []Sample{}
	}
	encoded, err := json.Marshal(samples)
	if err != nil {
		return nil, fmt.Errorf("encode samples: %w", err)
	}
	text := p.Text
	count := p.Count
	nested := string(encoded)
	return json.Marshal(wirePattern{Text: &text, Count: &count, Samples: &nested})
}

type wireSample struct {
	PredictedLabel *int       `json:"predict"`
	Timestamp      *time.Time `json:"date"`
	RawLog         *string    `json:"rawlog"`
}

// UnmarshalJSON decodes a sample, requiring every field.
func (s *Sample) UnmarshalJSON(data []byte) error {
	var raw wireSample
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.PredictedLabel == nil:
		return fmt.Errorf("sample missing predict")
	case raw.Timestamp == nil:
		return fmt.Errorf("sample missing date")
	case raw.RawLog == nil:
		return fmt.Errorf("sample missing rawlog")
	}
	*s = Sample{
		PredictedLabel: *raw.PredictedLabel,
		Timestamp:      *raw.Timestamp,
		RawLog:         *raw.RawLog,
	}
	return nil
}

// PercentValue returns the computed percent, or zero when unset.
func (p Pattern) PercentValue() float64 {
	if p.Percent == nil {
		return 0
	}
	return *p.Percent
}

// TotalCount sums the counts of all patterns.
func TotalCount(patterns []Pattern) uint64 {
	var total uint64
	for _, p := range patterns {
		total += p.Count
	}
	return total
}

// ComputePercentages sets Percent on every pattern relative to the total
// count. Callers must reject empty and zero-count reports first; when they
// don't, percentages are left unset.
func ComputePercentages(patterns []Pattern) {
	total := TotalCount(patterns)
	if total == 0 {
		return
	}
	for i := range patterns {
		percent := float64(patterns[i].Count) / float64(total) * 100.0
		patterns[i].Percent = &percent
	}
}

// Clone returns a deep copy of the patterns.
func Clone(patterns []Pattern) []Pattern {
	if patterns == nil {
		return nil
	}
	dup := make([]Pattern, len(patterns))
	for i, p := range patterns {
		dup[i] = p
		if p.Samples != nil {
			dup[i].Samples = make([]Sample, len(p.Samples))
			copy(dup[i].Samples, p.Samples)
		}
		if p.Percent != nil {
			v := *p.Percent
			dup[i].Percent = &v
		}
	}
	return dup
}
