package s3

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/tabgo/loader"
)

// Client is the subset of the S3 API the dataset loader needs.
type Client interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// ErrNotFound is returned when the dataset object does not exist.
var ErrNotFound = errors.New("s3: dataset not found")

// NewClient creates an S3 client from the default AWS configuration chain.
func NewClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("s3: load aws config: %w", err)
	}

	return s3.NewFromConfig(cfg), nil
}

// Open fetches the object at bucket/key and parses it as a dataset. Format
// and compression are chosen by the key's extensions, as loader.Open does
// for file paths. The CSV options only apply to CSV datasets.
func Open(ctx context.Context, client Client, bucket, key string, optFns ...func(o *loader.CSVOptions)) (*loader.Slice, error) {
	// Verify existence before streaming the body.
	if _, err := client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return nil, ErrNotFound
		}
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("s3: head dataset: %w", err)
	}

	resp, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3: get dataset: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	return loader.Read(path.Base(key), resp.Body, optFns...)
}
