package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fpang/video-course-automation/internal/logging"
)

// CLI flags
var (
	eventFlag     string
	dryRunFlag    bool
	requestIDFlag string
	bucketFlag    string
	keyFlag       string
)

// rootCmd is the main Cobra command for the course-media CLI.
var rootCmd = &cobra.Command{
	Use:   "course-media",
	Short: "Run the course media S3 handlers outside Lambda",
	Long: `course-media runs the catalog, transcription and subtitle handlers
against S3 notification documents, the same way the Lambdas do.

With --dry-run nothing is written: catalog items, transcription jobs and
subtitle copies are logged and printed instead.

Examples:
  course-media replay catalog --event upload.json --dry-run
  course-media replay subtitle --event - < subtitle-event.json
  course-media replay transcribe --bucket course-bucket --key "videos/dev-ops-bootcamp_202201/lesson01_intro.mp4" --dry-run
  course-media derive "videos/dev-ops-bootcamp_202201/lesson01_intro.mp4"`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&requestIDFlag, "request-id", "", "Request ID used for catalog IDs (default: random UUID)")

	replayCmd.Flags().StringVarP(&eventFlag, "event", "e", "-", "S3 event JSON file, or - for stdin")
	replayCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Log downstream calls instead of making them")
	replayCmd.Flags().StringVarP(&keyFlag, "key", "k", "", "Object key to replay as a single ObjectCreated:Put record")
	replayCmd.Flags().StringVarP(&bucketFlag, "bucket", "b", "course-bucket", "Bucket name for --key")
	replayCmd.MarkFlagsMutuallyExclusive("event", "key")

	deriveCmd.Flags().StringVarP(&bucketFlag, "bucket", "b", "course-bucket", "Bucket name used in derived URIs")

	rootCmd.AddCommand(replayCmd, deriveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("course-media failed")
		os.Exit(1)
	}
}

// requestID returns the --request-id flag value or a fresh one.
func requestID(ctx context.Context) string {
	if requestIDFlag != "" {
		return requestIDFlag
	}
	return newRequestID(ctx)
}
