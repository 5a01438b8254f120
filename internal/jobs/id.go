// Package jobs names transcription jobs so that the subtitles they produce
// can be traced back to the media file they were generated from.
//
// A job name is the media base name followed by the marker and the unix
// second the job was submitted at: lesson01__1700000000. Transcribe
// rejects a second job with an existing name, so the suffix is what lets
// the same file be transcribed again.
package jobs

import (
	"strconv"
	"time"
)

// Marker separates the media base name from the submission suffix.
const Marker = "__"

// JobName returns the job name for a media base name submitted at now.
func JobName(base string, now time.Time) string {
	return base + Marker + strconv.FormatInt(now.Unix(), 10)
}
