package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/fpang/video-course-automation/internal/catalog"
	"github.com/fpang/video-course-automation/internal/cli"
	"github.com/fpang/video-course-automation/internal/config"
	"github.com/fpang/video-course-automation/internal/dryrun"
	"github.com/fpang/video-course-automation/internal/mediakey"
	"github.com/fpang/video-course-automation/internal/store"
	"github.com/fpang/video-course-automation/internal/transcription"
)

var deriveCmd = &cobra.Command{
	Use:   "derive <key>",
	Short: "Show what each handler derives from an object key",
	Args:  cobra.ExactArgs(1),
	RunE:  runDerive,
}

// Derivation is what each handler would do with one key.
type Derivation struct {
	Key          string             `json:"key"`
	Video        *store.Video       `json:"video,omitempty"`
	VideoError   string             `json:"videoError,omitempty"`
	Job          *transcription.Job `json:"job,omitempty"`
	SubtitleKey  string             `json:"subtitleKey,omitempty"`
	SubtitleSkip string             `json:"subtitleSkip,omitempty"`
}

func runDerive(cmd *cobra.Command, args []string) error {
	d := derive(cmd.Context(), config.Load(), bucketFlag, args[0])
	return cli.WriteJSON(os.Stdout, d)
}

func derive(ctx context.Context, cfg config.Config, bucket, key string) Derivation {
	d := Derivation{Key: key}

	if mediakey.IsVideoKey(key) {
		h := catalog.NewHandler(&dryrun.Store{}, requestID)
		h.LegacyTimestamps = cfg.LegacyTimestamps
		video, err := h.VideoFor(key, requestID(ctx))
		if err != nil {
			d.VideoError = err.Error()
		} else {
			d.Video = video
		}
	}

	if mediakey.InTranscribeScope(key) && mediakey.IsTranscribable(key) {
		job := transcription.NewHandler(&dryrun.Starter{}, cfg.LanguageCode).JobFor(bucket, key)
		d.Job = &job
	}

	if mediakey.IsSubtitleKey(key) {
		target, err := mediakey.CanonicalSubtitleKey(key)
		if err != nil {
			d.SubtitleSkip = err.Error()
		} else {
			d.SubtitleKey = target
		}
	}
	return d
}
