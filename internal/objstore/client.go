package objstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ErrNotFound is returned when the requested object does not exist.
var ErrNotFound = errors.New("object not found")

// ObjectGetter is the subset of the S3 API the client needs. It is
// implemented by *s3.Client and can be faked in tests.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Ensure *s3.Client implements ObjectGetter at compile time.
var _ ObjectGetter = (*s3.Client)(nil)

const (
	// DefaultRegion is the region reports are published in.
	DefaultRegion  = "cn-northwest-1"
	requestTimeout = 30 * time.Second
)

// Options configures NewClient.
type Options struct {
	Region  string
	Profile string
	// Endpoint overrides the S3 endpoint, for S3-compatible stores. Path-style
	// addressing is used when it is set.
	Endpoint string
}

// Client reads whole objects from S3.
type Client struct {
	api     ObjectGetter
	timeout time.Duration
}

// NewClient builds a Client from the shared AWS configuration, using the
// named profile when one is given.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	region := strings.TrimSpace(opts.Region)
	if region == "" {
		region = DefaultRegion
	}
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if profile := strings.TrimSpace(opts.Profile); profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(profile))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	endpoint := strings.TrimSpace(opts.Endpoint)
	api := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return NewWithAPI(api), nil
}

// NewWithAPI wraps an existing ObjectGetter.
func NewWithAPI(api ObjectGetter) *Client {
	return &Client{api: api, timeout: requestTimeout}
}

// Get downloads the object at bucket/key.
func (c *Client) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	if c == nil || c.api == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(bucket) == "" || strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("bucket and key are required")
	}
	uri := URI(bucket, key)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	out, err := c.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("get object %s: %w", uri, ErrNotFound)
		}
		return nil, fmt.Errorf("get object %s: %w", uri, err)
	}
	if out == nil || out.Body == nil {
		return nil, fmt.Errorf("get object %s: empty response body", uri)
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w", uri, err)
	}
	return data, nil
}

// URI formats bucket and key as an s3:// location.
func URI(bucket, key string) string {
	return "s3://" + bucket + "/" + strings.TrimPrefix(key, "/")
}
