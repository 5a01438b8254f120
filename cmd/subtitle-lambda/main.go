// Package main provides the Lambda entry point for subtitle finalization.
//
// Triggered by S3 ObjectCreated events for .vtt and .srt objects. Each
// job-suffixed subtitle written by Transcribe is copied to its canonical
// name in the same folder.
package main

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/fpang/video-course-automation/internal/config"
	"github.com/fpang/video-course-automation/internal/lambdaboot"
	"github.com/fpang/video-course-automation/internal/logging"
	"github.com/fpang/video-course-automation/internal/outcome"
	"github.com/fpang/video-course-automation/internal/subtitle"
)

var coldStart = true

var subtitleHandler *subtitle.Handler

func init() {
	initStart := time.Now()
	logging.Init()

	cfg := config.Load()
	subtitleHandler = subtitle.NewHandler(lambdaboot.InitCopier(lambdaboot.InitAWS()))
	subtitleHandler.Policy = cfg.Policy(subtitle.DefaultPolicy)

	lambdaboot.StartupLog("subtitle-lambda", initStart).
		Service("s3").
		Feature("propagateOnFailure", subtitleHandler.Policy.PropagateOnFailure).
		Log()
}

func main() {
	lambda.Start(handler)
}

func handler(ctx context.Context, event events.S3Event) (outcome.Batch, error) {
	if coldStart {
		coldStart = false
		log.Info().Str("function", "subtitle-lambda").Msg("Cold start: first invocation")
	}
	return subtitleHandler.Handle(ctx, event)
}
