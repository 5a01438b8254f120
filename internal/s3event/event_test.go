package s3event

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

func record(eventName, bucket, key string) events.S3EventRecord {
	var rec events.S3EventRecord
	rec.EventName = eventName
	rec.S3.Bucket.Name = bucket
	rec.S3.Object.Key = key
	return rec
}

func TestExtract(t *testing.T) {
	event := events.S3Event{Records: []events.S3EventRecord{
		record("ObjectCreated:Put", "course-bucket", "videos/dev-ops-bootcamp_202201/Lesson+01%28intro%29.mp4"),
		record("ObjectRemoved:Delete", "course-bucket", "videos/a_b/c.mp4"),
		record("ObjectCreated:CompleteMultipartUpload", "", "videos/a_b/c.mp4"),
		record("ObjectCreated:Copy", "course-bucket", ""),
		record("ObjectCreated:Put", "course-bucket", "videos/bad%zzkey.mp4"),
		record("", "course-bucket", "videos/a_b/c.mp4"),
	}}

	got := Extract(event)
	if len(got) != len(event.Records) {
		t.Fatalf("expected %d notifications, got %d", len(event.Records), len(got))
	}

	if got[0].Err != nil {
		t.Fatalf("record 0: unexpected error %v", got[0].Err)
	}
	if got[0].Bucket != "course-bucket" || got[0].Key != "videos/dev-ops-bootcamp_202201/Lesson 01(intro).mp4" {
		t.Errorf("record 0 = %+v", got[0])
	}
	if !errors.Is(got[1].Err, ErrNotObjectCreated) {
		t.Errorf("record 1: expected ErrNotObjectCreated, got %v", got[1].Err)
	}
	if !errors.Is(got[2].Err, ErrMissingBucket) {
		t.Errorf("record 2: expected ErrMissingBucket, got %v", got[2].Err)
	}
	if !errors.Is(got[3].Err, ErrMissingKey) {
		t.Errorf("record 3: expected ErrMissingKey, got %v", got[3].Err)
	}
	if got[4].Err == nil {
		t.Errorf("record 4: expected decode error")
	}
	if got[5].Err != nil || got[5].Key != "videos/a_b/c.mp4" {
		t.Errorf("record 5 = %+v", got[5])
	}
}

func TestExtract_Empty(t *testing.T) {
	if got := Extract(events.S3Event{}); len(got) != 0 {
		t.Errorf("expected no notifications, got %d", len(got))
	}
}

func TestExtract_FromNotificationJSON(t *testing.T) {
	payload := `{"Records":[{"eventSource":"aws:s3","eventName":"ObjectCreated:Put",
		"s3":{"bucket":{"name":"course-bucket"},"object":{"key":"videos/course_1/lesson01__1700000000.vtt","size":12}}}]}`

	var event events.S3Event
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := Extract(event)
	if len(got) != 1 || got[0].Err != nil {
		t.Fatalf("unexpected notifications: %+v", got)
	}
	if got[0].Key != "videos/course_1/lesson01__1700000000.vtt" {
		t.Errorf("key = %q", got[0].Key)
	}
}

func TestEnvelope(t *testing.T) {
	event := events.S3Event{Records: []events.S3EventRecord{record("ObjectCreated:Put", "b", "k")}}
	var decoded map[string]interface{}
	if err := json.Unmarshal(Envelope(event), &decoded); err != nil {
		t.Fatalf("Envelope is not valid JSON: %v", err)
	}
	if _, ok := decoded["Records"]; !ok {
		t.Error("Envelope missing Records")
	}
}
