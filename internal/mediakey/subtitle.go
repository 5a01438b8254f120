package mediakey

import (
	"errors"
	"fmt"

	"github.com/fpang/video-course-automation/internal/jobs"
)

var (
	// ErrNoJobMarker is returned for subtitle filenames without the job marker.
	ErrNoJobMarker = errors.New("no job marker in filename")
	// ErrEmptyBase is returned when nothing precedes the job marker.
	ErrEmptyBase = errors.New("empty canonical base name")
)

// CanonicalSubtitleKey strips the job suffix from a subtitle key written
// by Transcribe: videos/c/lesson01__1700000000.vtt -> videos/c/lesson01.vtt.
func CanonicalSubtitleKey(key string) (string, error) {
	filename := Base(key)
	stem, ext := SplitExt(filename)

	base, _, ok := jobs.ParseJobName(stem)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoJobMarker, filename)
	}
	if base == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyBase, filename)
	}

	folder := Dir(key)
	if folder == "" {
		return base + ext, nil
	}
	return folder + "/" + base + ext, nil
}
