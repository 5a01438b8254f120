// Package subtitle copies subtitles written by Transcribe to their
// canonical name: videos/c/lesson01__1700000000.vtt is copied to
// videos/c/lesson01.vtt. The job-suffixed original is kept.
package subtitle

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/fpang/video-course-automation/internal/mediakey"
	"github.com/fpang/video-course-automation/internal/outcome"
	"github.com/fpang/video-course-automation/internal/s3event"
)

// ObjectCopier copies an object within a bucket.
type ObjectCopier interface {
	CopyObject(ctx context.Context, bucket, srcKey, dstKey string) error
}

// Handler finalizes every subtitle record of an S3 event.
type Handler struct {
	Copier ObjectCopier
	Policy outcome.Policy
}

// DefaultPolicy logs copy failures and reports success to the runtime.
var DefaultPolicy = outcome.Policy{Handler: "subtitle"}

// NewHandler returns a Handler with the default policy.
func NewHandler(copier ObjectCopier) *Handler {
	return &Handler{Copier: copier, Policy: DefaultPolicy}
}

// Handle processes every record independently.
func (h *Handler) Handle(ctx context.Context, event events.S3Event) (outcome.Batch, error) {
	log.Info().RawJSON("event", s3event.Envelope(event)).Msg("Subtitle finalizer invoked")

	var batch outcome.Batch
	for _, n := range s3event.Extract(event) {
		batch.Add(h.handleRecord(ctx, n))
	}
	return batch, h.Policy.Resolve(batch)
}

func (h *Handler) handleRecord(ctx context.Context, n s3event.Notification) outcome.Result {
	if n.Err != nil {
		log.Info().Err(n.Err).Msg("Skipping record: not an S3 event")
		return outcome.Result{Status: outcome.StatusIgnored, Reason: n.Err.Error()}
	}

	if !mediakey.IsSubtitleKey(n.Key) {
		log.Info().Str("key", n.Key).Msg("Not a subtitle file, skipping")
		return outcome.Result{Status: outcome.StatusSkipped, Key: n.Key, Reason: "not a subtitle"}
	}

	target, err := mediakey.CanonicalSubtitleKey(n.Key)
	if err != nil {
		log.Info().Err(err).Str("key", n.Key).Msg("No job suffix in file, skipping")
		return outcome.Result{Status: outcome.StatusSkipped, Key: n.Key, Reason: err.Error()}
	}

	log.Info().Str("key", n.Key).Str("target", target).Msg("Copying subtitle")
	if err := h.Copier.CopyObject(ctx, n.Bucket, n.Key, target); err != nil {
		log.Error().Err(err).Str("key", n.Key).Str("target", target).Msg("Error copying subtitle")
		return outcome.Failed(n.Key, err)
	}

	log.Info().Str("target", target).Msg("Copied subtitle")
	return outcome.Result{Status: outcome.StatusCopied, Key: n.Key, Target: target}
}
