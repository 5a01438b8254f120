package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fpang/video-course-automation/internal/config"
)

func TestDerive(t *testing.T) {
	requestIDFlag = "c6af9ac6-7b61-11e6-9a41-93e8deadbeef"
	defer func() { requestIDFlag = "" }()

	cfg := config.Config{Env: "dev", LanguageCode: "en-US"}
	d := derive(context.Background(), cfg, "course-bucket", "videos/dev-ops-bootcamp_202201/lesson01_intro.mp4")

	if d.Video == nil || d.Video.VideoID != "dev-ops-bootcamp_lesson01_intro_3333397190" {
		t.Errorf("video = %+v", d.Video)
	}
	if d.Job == nil || d.Job.MediaURI != "s3://course-bucket/videos/dev-ops-bootcamp_202201/lesson01_intro.mp4" {
		t.Errorf("job = %+v", d.Job)
	}
	if d.SubtitleKey != "" || d.SubtitleSkip != "" {
		t.Errorf("unexpected subtitle derivation: %+v", d)
	}
}

func TestDerive_Subtitle(t *testing.T) {
	cfg := config.Config{Env: "dev", LanguageCode: "en-US"}

	d := derive(context.Background(), cfg, "b", "videos/course/lesson01__1700000000.srt")
	if d.Video != nil || d.Job != nil {
		t.Errorf("subtitle key should not derive video or job: %+v", d)
	}
	if d.SubtitleKey != "videos/course/lesson01.srt" {
		t.Errorf("subtitle key = %q", d.SubtitleKey)
	}

	d = derive(context.Background(), cfg, "b", "videos/course/lesson01.srt")
	if d.SubtitleSkip == "" {
		t.Error("expected a skip reason for a subtitle without job marker")
	}
}

func TestDerive_InvalidPath(t *testing.T) {
	d := derive(context.Background(), config.Config{}, "b", "videos/lesson01.mp4")
	if d.Video != nil || d.VideoError == "" {
		t.Errorf("expected video error, got %+v", d)
	}
}

func TestBuildHandler_DryRun(t *testing.T) {
	for _, name := range []string{"catalog", "transcribe", "subtitle"} {
		if _, err := buildHandler(name, config.Config{}, true); err != nil {
			t.Errorf("buildHandler(%q): %v", name, err)
		}
	}
	if _, err := buildHandler("thumbnail", config.Config{}, true); err == nil {
		t.Error("expected error for unknown handler")
	}
}

func TestBuildHandler_DryRunReplay(t *testing.T) {
	requestIDFlag = "c6af9ac6-7b61-11e6-9a41-93e8deadbeef"
	defer func() { requestIDFlag = "" }()

	handle, err := buildHandler("catalog", config.Config{Env: "dev"}, true)
	if err != nil {
		t.Fatal(err)
	}
	event, err := replayEvent("", "course-bucket", "videos/course_1/lesson03 intro+extra.mp4")
	if err != nil {
		t.Fatal(err)
	}
	batch, err := handle(context.Background(), event)
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(batch.Results) != 1 || batch.Results[0].Status != "success" {
		t.Fatalf("results = %+v", batch.Results)
	}
	if got := batch.Results[0].Key; got != "videos/course_1/lesson03 intro+extra.mp4" {
		t.Errorf("key = %q, want the unencoded key", got)
	}
}

func TestReplayEvent_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.json")
	doc := `{"Records":[{"eventName":"ObjectCreated:Put","s3":{"bucket":{"name":"b"},"object":{"key":"videos/c/lesson01__1.srt"}}}]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	event, err := replayEvent(path, "ignored", "")
	if err != nil {
		t.Fatalf("replayEvent: %v", err)
	}
	if len(event.Records) != 1 || event.Records[0].S3.Bucket.Name != "b" {
		t.Errorf("event = %+v", event)
	}
}


func TestReplayArgs(t *testing.T) {
	if err := replayCmd.Args(replayCmd, []string{"subtitle"}); err != nil {
		t.Errorf("subtitle rejected: %v", err)
	}
	for _, args := range [][]string{{"thumbnail"}, {}, {"catalog", "subtitle"}} {
		if err := replayCmd.Args(replayCmd, args); err == nil {
			t.Errorf("args %v accepted", args)
		}
	}
}
