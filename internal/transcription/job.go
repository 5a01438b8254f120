package transcription

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/transcribe"
	"github.com/aws/aws-sdk-go-v2/service/transcribe/types"
	"github.com/rs/zerolog/log"
)

// DefaultLanguageCode is used when LANGUAGE_CODE is not set.
const DefaultLanguageCode = "en-US"

// SubtitleFormats are requested on every job, numbered from SubtitleStartIndex.
var SubtitleFormats = []string{"vtt", "srt"}

// SubtitleStartIndex is the number of the first subtitle cue.
const SubtitleStartIndex = 1

// Job describes one transcription job submission.
type Job struct {
	Name               string   `json:"name"`
	MediaURI           string   `json:"mediaUri"`
	MediaFormat        string   `json:"mediaFormat"`
	LanguageCode       string   `json:"languageCode"`
	OutputBucket       string   `json:"outputBucket"`
	OutputKey          string   `json:"outputKey"`
	SubtitleFormats    []string `json:"subtitleFormats"`
	SubtitleStartIndex int      `json:"subtitleStartIndex"`
}

// JobStarter submits transcription jobs.
type JobStarter interface {
	StartJob(ctx context.Context, job Job) error
}

// StartTranscriptionJobAPI is the slice of the Transcribe client the starter needs.
type StartTranscriptionJobAPI interface {
	StartTranscriptionJob(ctx context.Context, params *transcribe.StartTranscriptionJobInput, optFns ...func(*transcribe.Options)) (*transcribe.StartTranscriptionJobOutput, error)
}

// TranscribeStarter implements JobStarter with Amazon Transcribe.
type TranscribeStarter struct {
	client StartTranscriptionJobAPI
}

// Compile-time interface check.
var _ JobStarter = (*TranscribeStarter)(nil)

// NewTranscribeStarter wraps a Transcribe client.
func NewTranscribeStarter(client StartTranscriptionJobAPI) *TranscribeStarter {
	return &TranscribeStarter{client: client}
}

// StartJob submits job. Job names must be unique per account and region.
func (s *TranscribeStarter) StartJob(ctx context.Context, job Job) error {
	_, err := s.client.StartTranscriptionJob(ctx, StartInput(job))
	if err != nil {
		return fmt.Errorf("StartTranscriptionJob %s: %w", job.Name, err)
	}
	log.Debug().Str("job", job.Name).Str("mediaUri", job.MediaURI).Msg("Transcription job submitted")
	return nil
}

// StartInput maps job onto the Transcribe request.
func StartInput(job Job) *transcribe.StartTranscriptionJobInput {
	formats := make([]types.SubtitleFormat, 0, len(job.SubtitleFormats))
	for _, f := range job.SubtitleFormats {
		formats = append(formats, types.SubtitleFormat(f))
	}

	return &transcribe.StartTranscriptionJobInput{
		TranscriptionJobName: aws.String(job.Name),
		Media:                &types.Media{MediaFileUri: aws.String(job.MediaURI)},
		MediaFormat:          types.MediaFormat(job.MediaFormat),
		LanguageCode:         types.LanguageCode(job.LanguageCode),
		OutputBucketName:     aws.String(job.OutputBucket),
		OutputKey:            aws.String(job.OutputKey),
		Subtitles: &types.Subtitles{
			Formats:          formats,
			OutputStartIndex: aws.Int32(int32(job.SubtitleStartIndex)),
		},
	}
}
