package fetch

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Source opens the raw bytes of one stored object.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	String() string
}

// GetObjectAPI is the subset of *s3.Client used by S3Source.
type GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source identifies an object by bucket and key.
type S3Source struct {
	Client GetObjectAPI
	Bucket string
	Key    string
}

// Open issues a single GetObject call. No retries are attempted here; the
// SDK client's own retryer applies as configured by the caller.
func (s S3Source) Open(ctx context.Context) (io.ReadCloser, error) {
	if s.Client == nil {
		return nil, fmt.Errorf("s3 client not configured")
	}
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object: %w", err)
	}
	return out.Body, nil
}

func (s S3Source) String() string { return fmt.Sprintf("s3://%s/%s", s.Bucket, s.Key) }

// FileSource reads a CSV from local disk.
type FileSource struct {
	Path string
}

// Open opens the file for reading.
func (f FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	return fh, nil
}

func (f FileSource) String() string { return f.Path }

// ClientOptions configures the S3 client built by NewS3Client.
type ClientOptions struct {
	Region string
	// Endpoint points the client at an S3-compatible service (MinIO, LocalStack).
	Endpoint     string
	UsePathStyle bool
	// MaxAttempts caps SDK retries; 1 disables them.
	MaxAttempts int
}

// NewS3Client builds an S3 client using the default credential chain.
func NewS3Client(ctx context.Context, opt ClientOptions) (*s3.Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(opt.Region)}
	if opt.MaxAttempts > 0 {
		loadOpts = append(loadOpts, awsconfig.WithRetryMaxAttempts(opt.MaxAttempts))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opt.Endpoint != "" {
			o.BaseEndpoint = aws.String(opt.Endpoint)
		}
		o.UsePathStyle = opt.UsePathStyle
	}), nil
}
