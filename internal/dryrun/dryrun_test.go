package dryrun

import (
	"context"
	"testing"

	"github.com/fpang/video-course-automation/internal/store"
	"github.com/fpang/video-course-automation/internal/transcription"
)

func TestRecorders(t *testing.T) {
	ctx := context.Background()

	s := &Store{}
	if err := s.PutVideo(ctx, &store.Video{ID: "a", VideoID: "a"}); err != nil {
		t.Fatalf("PutVideo: %v", err)
	}
	if len(s.Videos) != 1 || s.Videos[0].VideoID != "a" {
		t.Errorf("videos = %+v", s.Videos)
	}

	c := &Copier{}
	if err := c.CopyObject(ctx, "b", "src", "dst"); err != nil {
		t.Fatalf("CopyObject: %v", err)
	}
	if len(c.Copies) != 1 || c.Copies[0] != (Copy{Bucket: "b", Source: "src", Target: "dst"}) {
		t.Errorf("copies = %+v", c.Copies)
	}

	st := &Starter{}
	if err := st.StartJob(ctx, transcription.Job{Name: "lesson01__1"}); err != nil {
		t.Fatalf("StartJob: %v", err)
	}
	if len(st.Jobs) != 1 || st.Jobs[0].Name != "lesson01__1" {
		t.Errorf("jobs = %+v", st.Jobs)
	}
}
