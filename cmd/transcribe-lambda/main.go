// Package main provides the Lambda entry point that starts Transcribe jobs.
//
// Triggered by S3 ObjectCreated events on the course bucket. Media under
// the target course folder gets a transcription job whose VTT and SRT
// subtitles are written back next to the media.
//
// A failed submission fails the invocation so the function's retry and
// alarm configuration applies.
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
	"github.com/fpang/video-course-automation/internal/mediakey"
	"github.com/fpang/video-course-automation/internal/outcome"
	"github.com/fpang/video-course-automation/internal/transcription"
)

var coldStart = true

var transcribeHandler *transcription.Handler

func init() {
	initStart := time.Now()
	logging.Init()

	cfg := config.Load()
	starter := lambdaboot.InitTranscribe(lambdaboot.InitAWS())

	transcribeHandler = transcription.NewHandler(starter, cfg.LanguageCode)
	transcribeHandler.Policy = cfg.Policy(transcription.DefaultPolicy)

	lambdaboot.StartupLog("transcribe-lambda", initStart).
		Service("transcribe").
		Feature("propagateOnFailure", transcribeHandler.Policy.PropagateOnFailure).
		Config("languageCode", cfg.LanguageCode).
		Config("targetPrefix", mediakey.TranscribePrefix).
		Log()
}

func main() {
	lambda.Start(handler)
}

func handler(ctx context.Context, event events.S3Event) (outcome.Batch, error) {
	if coldStart {
		coldStart = false
		log.Info().Str("function", "transcribe-lambda").Msg("Cold start: first invocation")
	}
	return transcribeHandler.Handle(ctx, event)
}
