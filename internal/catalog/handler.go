// Package catalog records uploaded course videos in the video catalog table.
//
// Keys look like videos/{course}_{tag}/.../{file}.{ext}. The catalog ID
// combines course, title and a token read from the Lambda request ID, so
// a redelivered notification (new request ID) writes a second item while
// a retried write within one invocation overwrites the first.
package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/fpang/video-course-automation/internal/mediakey"
	"github.com/fpang/video-course-automation/internal/outcome"
	"github.com/fpang/video-course-automation/internal/s3event"
	"github.com/fpang/video-course-automation/internal/store"
)

// Handler catalogs every video record of an S3 event.
type Handler struct {
	Store     store.VideoStore
	RequestID func(ctx context.Context) string
	Now       func() time.Time

	// LegacyTimestamps writes the request ID into createdAt/updatedAt,
	// matching items written before timestamps were real times.
	LegacyTimestamps bool

	Policy outcome.Policy
}

// DefaultPolicy reports success to the runtime even when a write fails.
var DefaultPolicy = outcome.Policy{Handler: "catalog"}

// NewHandler returns a Handler with the default policy and the wall clock.
func NewHandler(s store.VideoStore, requestID func(ctx context.Context) string) *Handler {
	return &Handler{
		Store:     s,
		RequestID: requestID,
		Now:       time.Now,
		Policy:    DefaultPolicy,
	}
}

// Handle processes every record of event. Failures are reported in the batch.
func (h *Handler) Handle(ctx context.Context, event events.S3Event) (outcome.Batch, error) {
	log.Info().RawJSON("event", s3event.Envelope(event)).Msg("Catalog handler invoked")

	var batch outcome.Batch
	notes := s3event.Extract(event)
	if len(notes) == 0 {
		log.Info().Msg("No records in event, ignoring")
		batch.Add(outcome.Result{Status: outcome.StatusIgnored, Reason: "no records"})
		return batch, nil
	}

	requestID := h.RequestID(ctx)
	for _, n := range notes {
		batch.Add(h.handleRecord(ctx, requestID, n))
	}
	return batch, h.Policy.Resolve(batch)
}

func (h *Handler) handleRecord(ctx context.Context, requestID string, n s3event.Notification) outcome.Result {
	if n.Err != nil {
		log.Info().Err(n.Err).Msg("Not an S3 put event, ignoring")
		return outcome.Result{Status: outcome.StatusIgnored, Reason: n.Err.Error()}
	}

	if !mediakey.IsVideoKey(n.Key) {
		log.Info().Str("key", n.Key).Msg("Skipping non-video")
		return outcome.Result{Status: outcome.StatusSkipped, Key: n.Key, Reason: "not a video"}
	}

	video, err := h.VideoFor(n.Key, requestID)
	if errors.Is(err, mediakey.ErrInvalidPath) {
		log.Warn().Str("key", n.Key).Msg("Invalid path structure")
		return outcome.Result{Status: outcome.StatusInvalidPath, Key: n.Key, Reason: err.Error()}
	}
	if err != nil {
		log.Error().Err(err).Str("key", n.Key).Str("requestId", requestID).Msg("Cannot derive catalog ID")
		return outcome.Failed(n.Key, err)
	}

	if err := h.Store.PutVideo(ctx, video); err != nil {
		log.Error().Err(err).Str("key", n.Key).Str("videoId", video.VideoID).Msg("Error adding video to DynamoDB")
		return outcome.Failed(n.Key, err)
	}

	title := mediakey.MediaBase(n.Key)
	log.Info().
		Str("videoId", video.VideoID).
		Str("course", video.CourseName).
		Int("order", video.Order).
		Msg("Added video to DynamoDB")
	return outcome.Result{Status: outcome.StatusSuccess, Key: n.Key, Video: title}
}

// VideoFor builds the catalog item for a video key.
func (h *Handler) VideoFor(key, requestID string) (*store.Video, error) {
	vk, err := mediakey.ParseVideoKey(key)
	if err != nil {
		return nil, err
	}

	id, err := mediakey.CatalogID(vk.Course, vk.Title, requestID)
	if err != nil {
		return nil, err
	}

	stamp := h.Now().UTC().Format(time.RFC3339)
	if h.LegacyTimestamps {
		stamp = requestID
	}

	return &store.Video{
		ID:          id,
		VideoID:     id,
		CourseName:  vk.Course,
		Title:       mediakey.DisplayTitle(vk.Title),
		Description: store.Description(vk.Filename),
		VideoURL:    key,
		Order:       vk.Order,
		Watched:     false,
		WatchedAt:   nil,
		CreatedAt:   stamp,
		UpdatedAt:   stamp,
		RequestID:   requestID,
	}, nil
}
