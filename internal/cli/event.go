// Package cli holds helpers for the course-media command line tool.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"
)

// LoadEvent reads an S3 notification document from path, or stdin for "-".
func LoadEvent(path string) (events.S3Event, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return events.S3Event{}, fmt.Errorf("open event file: %w", err)
		}
		defer f.Close()
		r = f
	}
	return DecodeEvent(r)
}

// DecodeEvent decodes an S3 notification document.
func DecodeEvent(r io.Reader) (events.S3Event, error) {
	var event events.S3Event
	if err := json.NewDecoder(r).Decode(&event); err != nil {
		return events.S3Event{}, fmt.Errorf("decode S3 event: %w", err)
	}
	log.Debug().Int("records", len(event.Records)).Msg("S3 event loaded")
	return event, nil
}

// SyntheticEvent builds a single-record ObjectCreated:Put event for key.
// The key is stored encoded the way S3 delivers it.
func SyntheticEvent(bucket, key string) events.S3Event {
	var rec events.S3EventRecord
	rec.EventSource = "aws:s3"
	rec.EventName = "ObjectCreated:Put"
	rec.S3.Bucket.Name = bucket
	rec.S3.Object.Key = EncodeKey(key)
	return events.S3Event{Records: []events.S3EventRecord{rec}}
}
