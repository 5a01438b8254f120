// Package transcription starts Amazon Transcribe jobs for media uploaded
// to the target course folder.
//
// Job names carry a "__{unix seconds}" suffix (see package jobs). The
// subtitles Transcribe writes back next to the media are named after the
// job, and the subtitle finalizer strips the suffix again.
//
// Unlike the other handlers, a failed submission fails the invocation so
// that the Lambda retry and alerting configuration applies.
package transcription

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/fpang/video-course-automation/internal/jobs"
	"github.com/fpang/video-course-automation/internal/mediakey"
	"github.com/fpang/video-course-automation/internal/outcome"
	"github.com/fpang/video-course-automation/internal/s3event"
)

// Handler starts one transcription job per in-scope media record.
type Handler struct {
	Starter      JobStarter
	LanguageCode string
	Now          func() time.Time
	Policy       outcome.Policy
}

// DefaultPolicy propagates submission failures to the Lambda runtime.
// A failure anywhere in the batch fails the invocation, and the runtime's
// retry resubmits every record. Records that already started get a second
// job under a new epoch suffix, so they are transcribed twice.
var DefaultPolicy = outcome.Policy{Handler: "transcribe", PropagateOnFailure: true}

// NewHandler returns a Handler with the default policy and the wall clock.
func NewHandler(starter JobStarter, languageCode string) *Handler {
	if languageCode == "" {
		languageCode = DefaultLanguageCode
	}
	return &Handler{
		Starter:      starter,
		LanguageCode: languageCode,
		Now:          time.Now,
		Policy:       DefaultPolicy,
	}
}

// Handle processes every record of event.
func (h *Handler) Handle(ctx context.Context, event events.S3Event) (outcome.Batch, error) {
	log.Info().RawJSON("event", s3event.Envelope(event)).Msg("Transcription starter invoked")

	var batch outcome.Batch
	notes := s3event.Extract(event)
	if len(notes) == 0 {
		log.Info().Msg("No records in event, ignoring")
		batch.Add(outcome.Result{Status: outcome.StatusIgnored, Reason: "no records"})
		return batch, nil
	}

	for _, n := range notes {
		batch.Add(h.handleRecord(ctx, n))
	}
	return batch, h.Policy.Resolve(batch)
}

func (h *Handler) handleRecord(ctx context.Context, n s3event.Notification) outcome.Result {
	if n.Err != nil {
		log.Info().Err(n.Err).Msg("Not an S3 put event or missing data, ignoring")
		return outcome.Result{Status: outcome.StatusIgnored, Reason: n.Err.Error()}
	}

	if !mediakey.InTranscribeScope(n.Key) {
		log.Info().Str("key", n.Key).Msg("Skipping non-target folder")
		return outcome.Result{Status: outcome.StatusSkipped, Key: n.Key, Reason: "target folder"}
	}
	if !mediakey.IsTranscribable(n.Key) {
		log.Info().Str("key", n.Key).Msg("Skipping non-media")
		return outcome.Result{Status: outcome.StatusSkipped, Key: n.Key, Reason: "media type"}
	}

	job := h.JobFor(n.Bucket, n.Key)
	log.Info().Str("job", job.Name).Str("mediaUri", job.MediaURI).Msg("Starting transcription job")

	if err := h.Starter.StartJob(ctx, job); err != nil {
		log.Error().Err(err).Str("job", job.Name).Str("key", n.Key).Msg("Failed to start transcription job")
		return outcome.Failed(n.Key, err)
	}

	log.Info().Str("job", job.Name).Msg("Transcription job started")
	return outcome.Result{Status: outcome.StatusStarted, Key: n.Key, Job: job.Name}
}

// JobFor builds the job for an in-scope media object.
func (h *Handler) JobFor(bucket, key string) Job {
	return Job{
		Name:               jobs.JobName(mediakey.MediaBase(key), h.Now()),
		MediaURI:           mediakey.MediaURI(bucket, key),
		MediaFormat:        mediakey.MediaFormat(key),
		LanguageCode:       h.LanguageCode,
		OutputBucket:       bucket,
		OutputKey:          mediakey.OutputPrefix(key),
		SubtitleFormats:    SubtitleFormats,
		SubtitleStartIndex: SubtitleStartIndex,
	}
}
