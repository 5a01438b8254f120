// Package s3util provides the S3 object operations used by the handlers.
package s3util

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// CopyObjectAPI is the slice of the S3 client needed to copy objects.
type CopyObjectAPI interface {
	CopyObject(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
}

// Copier copies objects within a bucket.
type Copier struct {
	client CopyObjectAPI
}

// NewCopier wraps an S3 client.
func NewCopier(client CopyObjectAPI) *Copier {
	return &Copier{client: client}
}

// CopyObject copies srcKey to dstKey in bucket. The source is left in place.
func (c *Copier) CopyObject(ctx context.Context, bucket, srcKey, dstKey string) error {
	source := CopySource(bucket, srcKey)
	log.Debug().Str("copySource", source).Str("key", dstKey).Msg("Copying S3 object")

	_, err := c.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     &bucket,
		CopySource: &source,
		Key:        &dstKey,
	})
	if err != nil {
		return fmt.Errorf("S3 CopyObject %s -> %s: %w", srcKey, dstKey, err)
	}
	return nil
}

// CopySource returns the URL-encoded "bucket/key" value CopyObject expects.
// Everything but unreserved characters and "/" is percent-encoded, since
// S3 decodes the header and would read a literal "+" as a space.
func CopySource(bucket, key string) string {
	parts := strings.Split(bucket+"/"+key, "/")
	for i, p := range parts {
		parts[i] = strings.ReplaceAll(url.QueryEscape(p), "+", "%20")
	}
	return strings.Join(parts, "/")
}
