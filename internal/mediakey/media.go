// Package mediakey turns S3 object keys of the course bucket into the
// metadata the catalog, transcription and subtitle handlers act on.
//
// Course videos live under videos/{course}_{tag}/.../{file}.{ext}. The
// derivations here have to reproduce what is already stored in the
// catalog table and in the bucket, so they are deliberately literal:
// course is the first "_" token of the course folder, title is the
// filename without its extension, and so on.
package mediakey

import "strings"

// VideoPrefix is the top-level folder holding course videos.
const VideoPrefix = "videos/"

// TranscribePrefix scopes the transcription starter to a single course.
const TranscribePrefix = "videos/dev-ops-bootcamp_202201/"

// SupportedVideoExtensions are the containers the catalog accepts.
var SupportedVideoExtensions = map[string]string{
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
	".webm": "video/webm",
	".flv":  "video/x-flv",
	".wmv":  "video/x-ms-wmv",
}

// TranscribableExtensions are the media types sent to Transcribe.
var TranscribableExtensions = map[string]string{
	".mp4": "video/mp4",
	".mov": "video/quicktime",
	".mkv": "video/x-matroska",
	".avi": "video/x-msvideo",
	".wav": "audio/wav",
	".mp3": "audio/mpeg",
}

// SubtitleExtensions are the formats Transcribe is asked to produce.
var SubtitleExtensions = []string{".vtt", ".srt"}

// IsVideoKey reports whether key is a course video the catalog should record.
func IsVideoKey(key string) bool {
	return strings.HasPrefix(key, VideoPrefix) && hasExtension(key, SupportedVideoExtensions)
}

// InTranscribeScope reports whether key lies under the transcription target folder.
func InTranscribeScope(key string) bool {
	return strings.HasPrefix(key, TranscribePrefix)
}

// IsTranscribable reports whether key has a media extension Transcribe accepts.
func IsTranscribable(key string) bool {
	return hasExtension(key, TranscribableExtensions)
}

// IsSubtitleKey reports whether key ends in one of the subtitle extensions.
// The match is case-sensitive; Transcribe always writes lowercase.
func IsSubtitleKey(key string) bool {
	for _, ext := range SubtitleExtensions {
		if strings.HasSuffix(key, ext) {
			return true
		}
	}
	return false
}

func hasExtension(key string, exts map[string]string) bool {
	lower := strings.ToLower(key)
	for ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// SplitExt splits name into base and extension at the last dot.
// Leading dots are part of the base, so ".mp4" has no extension.
func SplitExt(name string) (base, ext string) {
	i := strings.LastIndex(name, ".")
	if i <= 0 || strings.Trim(name[:i], ".") == "" {
		return name, ""
	}
	return name[:i], name[i:]
}

// Dir returns everything before the last "/" of key, or "" for a top-level key.
func Dir(key string) string {
	i := strings.LastIndex(key, "/")
	if i < 0 {
		return ""
	}
	return key[:i]
}

// Base returns everything after the last "/" of key.
func Base(key string) string {
	return key[strings.LastIndex(key, "/")+1:]
}
