package s3blob

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/lagosrent/rentoracle/internal/dataset"
	"github.com/lagosrent/rentoracle/internal/domain"
)

// Source implements domain.DatasetSource by fetching the market data JSON
// object from the configured bucket.
type Source struct {
	client *Client
	key    string
}

// NewSource creates a Source that reads the dataset from the given object
// key.
func NewSource(client *Client, key string) *Source {
	return &Source{client: client, key: key}
}

// Fetch downloads and decodes the dataset object. A missing object maps to
// domain.ErrDatasetNotFound.
func (s *Source) Fetch(ctx context.Context) ([]domain.Area, error) {
	output, err := s.client.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.client.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("s3blob: get %s: %w", s.key, domain.ErrDatasetNotFound)
		}
		return nil, fmt.Errorf("s3blob: get %s: %w", s.key, err)
	}
	defer output.Body.Close()

	areas, err := dataset.DecodeAreas(output.Body)
	if err != nil {
		return nil, fmt.Errorf("s3blob: object %s: %w", s.key, err)
	}
	return areas, nil
}

// Close is a no-op; the underlying S3 HTTP client needs no explicit teardown.
func (s *Source) Close() {}

// isNotFound returns true when the error indicates the requested S3 object
// does not exist. It checks the SDK typed errors and falls back to the
// generic 404 some compatible providers return.
func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}

	type httpResponseError interface {
		HTTPStatusCode() int
	}
	var httpErr httpResponseError
	return errors.As(err, &httpErr) && httpErr.HTTPStatusCode() == 404
}

// Compile-time interface check.
var _ domain.DatasetSource = (*Source)(nil)
