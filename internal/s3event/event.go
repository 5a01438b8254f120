// Package s3event extracts the bucket and decoded key from S3 object
// notifications delivered to a Lambda.
package s3event

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

var (
	// ErrMissingBucket is set on records without a bucket name.
	ErrMissingBucket = errors.New("missing bucket name")
	// ErrMissingKey is set on records without an object key.
	ErrMissingKey = errors.New("missing object key")
	// ErrNotObjectCreated is set on records for any other S3 event type.
	ErrNotObjectCreated = errors.New("not an object created event")
)

const objectCreatedPrefix = "ObjectCreated:"

// Notification is one record of an S3 event, reduced to what the handlers use.
// Err is non-nil when the record cannot be acted on; Bucket and Key may then be empty.
type Notification struct {
	Bucket    string
	Key       string
	EventName string
	Err       error
}

// Extract returns one Notification per record of event, in order.
func Extract(event events.S3Event) []Notification {
	out := make([]Notification, 0, len(event.Records))
	for _, rec := range event.Records {
		out = append(out, fromRecord(rec))
	}
	return out
}

func fromRecord(rec events.S3EventRecord) Notification {
	n := Notification{
		Bucket:    rec.S3.Bucket.Name,
		EventName: rec.EventName,
	}

	// Records without an eventName come from hand-built test payloads.
	if n.EventName != "" && !strings.HasPrefix(n.EventName, objectCreatedPrefix) {
		n.Err = fmt.Errorf("%w: %s", ErrNotObjectCreated, n.EventName)
		return n
	}
	if n.Bucket == "" {
		n.Err = ErrMissingBucket
		return n
	}
	if rec.S3.Object.Key == "" {
		n.Err = ErrMissingKey
		return n
	}

	// S3 encodes keys like a form value: spaces arrive as "+".
	key, err := url.QueryUnescape(rec.S3.Object.Key)
	if err != nil {
		n.Err = fmt.Errorf("decode key %q: %w", rec.S3.Object.Key, err)
		return n
	}
	n.Key = key
	return n
}

// Envelope returns the raw event as JSON for logging.
func Envelope(event events.S3Event) []byte {
	data, err := json.Marshal(event)
	if err != nil {
		return []byte(`null`)
	}
	return data
}
