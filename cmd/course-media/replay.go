package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/spf13/cobra"

	"github.com/fpang/video-course-automation/internal/catalog"
	"github.com/fpang/video-course-automation/internal/cli"
	"github.com/fpang/video-course-automation/internal/config"
	"github.com/fpang/video-course-automation/internal/dryrun"
	"github.com/fpang/video-course-automation/internal/lambdaboot"
	"github.com/fpang/video-course-automation/internal/outcome"
	"github.com/fpang/video-course-automation/internal/store"
	"github.com/fpang/video-course-automation/internal/subtitle"
	"github.com/fpang/video-course-automation/internal/transcription"
)

var newRequestID = lambdaboot.RequestID

var replayCmd = &cobra.Command{
	Use:       "replay <catalog|transcribe|subtitle>",
	Short:     "Run one handler against an S3 event document or a single key",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"catalog", "transcribe", "subtitle"},
	RunE:      runReplay,
}

type handleFunc func(ctx context.Context, event events.S3Event) (outcome.Batch, error)

func runReplay(cmd *cobra.Command, args []string) error {
	event, err := replayEvent(eventFlag, bucketFlag, keyFlag)
	if err != nil {
		return err
	}

	handle, err := buildHandler(args[0], config.Load(), dryRunFlag)
	if err != nil {
		return err
	}

	batch, handleErr := handle(cmd.Context(), event)
	if err := cli.WriteJSON(os.Stdout, batch); err != nil {
		return err
	}
	return handleErr
}

// replayEvent builds a one-record upload event when key is set, and reads
// the event document at path otherwise.
func replayEvent(path, bucket, key string) (events.S3Event, error) {
	if key != "" {
		return cli.SyntheticEvent(bucket, key), nil
	}
	return cli.LoadEvent(path)
}

// buildHandler wires the named handler to AWS clients, or to dry-run stand-ins.
func buildHandler(name string, cfg config.Config, dryRun bool) (handleFunc, error) {
	switch name {
	case "catalog":
		var s store.VideoStore = &dryrun.Store{}
		if !dryRun {
			s = lambdaboot.InitVideoStore(lambdaboot.InitAWS(), cfg.TableName())
		}
		h := catalog.NewHandler(s, requestID)
		h.LegacyTimestamps = cfg.LegacyTimestamps
		h.Policy = cfg.Policy(catalog.DefaultPolicy)
		return h.Handle, nil

	case "transcribe":
		var starter transcription.JobStarter = &dryrun.Starter{}
		if !dryRun {
			starter = lambdaboot.InitTranscribe(lambdaboot.InitAWS())
		}
		h := transcription.NewHandler(starter, cfg.LanguageCode)
		h.Policy = cfg.Policy(transcription.DefaultPolicy)
		return h.Handle, nil

	case "subtitle":
		var copier subtitle.ObjectCopier = &dryrun.Copier{}
		if !dryRun {
			copier = lambdaboot.InitCopier(lambdaboot.InitAWS())
		}
		h := subtitle.NewHandler(copier)
		h.Policy = cfg.Policy(subtitle.DefaultPolicy)
		return h.Handle, nil
	}
	return nil, fmt.Errorf("unknown handler %q", name)
}
