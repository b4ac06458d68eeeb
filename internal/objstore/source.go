package objstore

import (
	"context"
	"fmt"

	"github.com/five82/patternview/internal/report"
)

var _ report.Source = ReportSource{}

// ReportSource fetches a report object from S3.
type ReportSource struct {
	Client *Client
	Bucket string
	Key    string
}

// Describe implements report.Source.
func (s ReportSource) Describe() string {
	return URI(s.Bucket, s.Key)
}

// Fetch implements report.Source.
func (s ReportSource) Fetch(ctx context.Context) ([]byte, error) {
	if s.Client == nil {
		return nil, fmt.Errorf("fetch %s: client is nil", s.Describe())
	}
	return s.Client.Get(ctx, s.Bucket, s.Key)
}
