// Package lambdaboot provides shared Lambda cold-start bootstrap logic.
//
// Every course media Lambda needs some subset of: AWS config, DynamoDB,
// S3, Transcribe, and startup logging. Clients are built once per process
// in init() and injected into the handler, so handler code never reads
// package-level client state.
package lambdaboot

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/transcribe"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/fpang/video-course-automation/internal/logging"
	"github.com/fpang/video-course-automation/internal/s3util"
	"github.com/fpang/video-course-automation/internal/store"
	"github.com/fpang/video-course-automation/internal/transcription"
)

// InitAWS loads the default AWS config. Fatals on error.
func InitAWS() aws.Config {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load AWS config")
	}
	log.Debug().Str("region", cfg.Region).Msg("AWS config loaded")
	return cfg
}

// InitVideoStore creates the DynamoDB video catalog store for tableName.
func InitVideoStore(cfg aws.Config, tableName string) *store.DynamoVideoStore {
	return store.NewDynamoVideoStore(dynamodb.NewFromConfig(cfg), tableName)
}

// InitCopier creates an S3 copier.
func InitCopier(cfg aws.Config) *s3util.Copier {
	return s3util.NewCopier(s3.NewFromConfig(cfg))
}

// InitTranscribe creates a Transcribe job starter.
func InitTranscribe(cfg aws.Config) *transcription.TranscribeStarter {
	return transcription.NewTranscribeStarter(transcribe.NewFromConfig(cfg))
}

// RequestID returns the AWS request ID of the current invocation.
// Outside Lambda (CLI replays) a random UUID stands in for it.
func RequestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.NewString()
}

// StartupLog is a convenience wrapper for the startup logger.
func StartupLog(name string, initStart time.Time) *logging.StartupLogger {
	return logging.NewStartupLogger(name).InitDuration(time.Since(initStart))
}
