// Package dryrun provides stand-ins for the AWS-backed store, copier and
// job starter. They log and record each call instead of making it, so a
// notification can be replayed locally without touching the bucket,
// the catalog table or Transcribe.
package dryrun

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/fpang/video-course-automation/internal/store"
	"github.com/fpang/video-course-automation/internal/subtitle"
	"github.com/fpang/video-course-automation/internal/transcription"
)

// Compile-time interface checks.
var (
	_ store.VideoStore         = (*Store)(nil)
	_ subtitle.ObjectCopier    = (*Copier)(nil)
	_ transcription.JobStarter = (*Starter)(nil)
)

// Store records catalog writes.
type Store struct {
	mu     sync.Mutex
	Videos []store.Video
}

func (s *Store) PutVideo(_ context.Context, video *store.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Videos = append(s.Videos, *video)
	log.Info().Str("videoId", video.VideoID).Str("title", video.Title).Msg("[dry-run] PutItem")
	return nil
}

// Copy is one recorded copy request.
type Copy struct {
	Bucket string `json:"bucket"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Copier records object copies.
type Copier struct {
	mu     sync.Mutex
	Copies []Copy
}

func (c *Copier) CopyObject(_ context.Context, bucket, srcKey, dstKey string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Copies = append(c.Copies, Copy{Bucket: bucket, Source: srcKey, Target: dstKey})
	log.Info().Str("bucket", bucket).Str("source", srcKey).Str("target", dstKey).Msg("[dry-run] CopyObject")
	return nil
}

// Starter records transcription job submissions.
type Starter struct {
	mu   sync.Mutex
	Jobs []transcription.Job
}

func (s *Starter) StartJob(_ context.Context, job transcription.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Jobs = append(s.Jobs, job)
	log.Info().Str("job", job.Name).Str("mediaUri", job.MediaURI).Msg("[dry-run] StartTranscriptionJob")
	return nil
}
