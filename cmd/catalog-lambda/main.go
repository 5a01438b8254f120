// Package main provides the Lambda entry point for the video catalog.
//
// Triggered by S3 ObjectCreated events on the course bucket. Each video
// uploaded under videos/{course}_{tag}/ is written to the
// video-course-app-videos-{env} DynamoDB table.
//
// Write failures are reported in the response but never fail the
// invocation (PROPAGATE_ON_FAILURE overrides this).
package main

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/fpang/video-course-automation/internal/catalog"
	"github.com/fpang/video-course-automation/internal/config"
	"github.com/fpang/video-course-automation/internal/lambdaboot"
	"github.com/fpang/video-course-automation/internal/logging"
	"github.com/fpang/video-course-automation/internal/outcome"
)

var coldStart = true

var catalogHandler *catalog.Handler

func init() {
	initStart := time.Now()
	logging.Init()

	cfg := config.Load()
	videoStore := lambdaboot.InitVideoStore(lambdaboot.InitAWS(), cfg.TableName())

	catalogHandler = catalog.NewHandler(videoStore, lambdaboot.RequestID)
	catalogHandler.LegacyTimestamps = cfg.LegacyTimestamps
	catalogHandler.Policy = cfg.Policy(catalog.DefaultPolicy)

	lambdaboot.StartupLog("catalog-lambda", initStart).
		Table(videoStore.TableName()).
		Feature("legacyTimestamps", cfg.LegacyTimestamps).
		Feature("propagateOnFailure", catalogHandler.Policy.PropagateOnFailure).
		Config("env", cfg.Env).
		Log()
}

func main() {
	lambda.Start(handler)
}

func handler(ctx context.Context, event events.S3Event) (outcome.Batch, error) {
	if coldStart {
		coldStart = false
		log.Info().Str("function", "catalog-lambda").Msg("Cold start: first invocation")
	}
	batch, err := catalogHandler.Handle(ctx, event)
	log.Info().
		Int("records", len(batch.Results)).
		Int("success", batch.Count(outcome.StatusSuccess)).
		Int("errors", batch.Count(outcome.StatusError)).
		Msg("Catalog invocation complete")
	return batch, err
}
