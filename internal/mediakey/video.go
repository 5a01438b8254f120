package mediakey

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidPath is returned for video keys with fewer than three segments.
var ErrInvalidPath = errors.New("invalid path structure")

// ErrInvalidRequestID is returned when no token can be read from a request ID.
var ErrInvalidRequestID = errors.New("invalid request id")

const minVideoSegments = 3

var lessonPattern = regexp.MustCompile(`lesson(\p{Nd}+)`)

// VideoKey is the metadata encoded in a course video key.
type VideoKey struct {
	Key      string
	Course   string
	Filename string
	Title    string
	Order    int
}

// ParseVideoKey derives course, title and ordering from key.
// The key is not checked against VideoPrefix; callers use IsVideoKey first.
func ParseVideoKey(key string) (VideoKey, error) {
	parts := strings.Split(key, "/")
	if len(parts) < minVideoSegments {
		return VideoKey{}, fmt.Errorf("%w: %s", ErrInvalidPath, key)
	}

	course, _, _ := strings.Cut(parts[1], "_")
	filename := parts[len(parts)-1]
	title, _ := SplitExt(filename)

	return VideoKey{
		Key:      key,
		Course:   course,
		Filename: filename,
		Title:    title,
		Order:    LessonOrder(title),
	}, nil
}

// LessonOrder returns N for the first "lessonN" in title, ignoring case, or 0.
// N may use any decimal digits ("lesson٣" is 3). Values that overflow an
// int give 0.
func LessonOrder(title string) int {
	m := lessonPattern.FindStringSubmatch(strings.ToLower(title))
	if m == nil {
		return 0
	}
	n := 0
	for _, r := range m[1] {
		d := digitValue(r)
		if n > (math.MaxInt-d)/10 {
			return 0
		}
		n = n*10 + d
	}
	return n
}

// DisplayTitle replaces underscores with spaces and capitalises each word.
// A letter is title-cased when it follows a non-letter and lower-cased
// otherwise, so "lesson01_intro" becomes "Lesson01 Intro". Full case
// mappings apply: "ﬁnal" becomes "Final".
func DisplayTitle(title string) string {
	runes := []rune(strings.ReplaceAll(title, "_", " "))

	var b strings.Builder
	b.Grow(len(title))

	prevLetter := false
	for i, r := range runes {
		if !isCased(r) {
			prevLetter = false
			b.WriteRune(r)
			continue
		}

		switch {
		case !prevLetter:
			if full, ok := titleFull[r]; ok {
				b.WriteString(full)
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
		case r == capitalSigma && endsWord(runes, i):
			b.WriteRune(finalSigma)
		default:
			if full, ok := lowerFull[r]; ok {
				b.WriteString(full)
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
		}
		prevLetter = true
	}
	return b.String()
}

// RequestToken reads the first eight hex digits of a request ID, dashes removed.
func RequestToken(requestID string) (uint64, error) {
	hex := strings.ReplaceAll(requestID, "-", "")
	if len(hex) > 8 {
		hex = hex[:8]
	}
	if hex == "" {
		return 0, ErrInvalidRequestID
	}
	n, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidRequestID, requestID, err)
	}
	return n, nil
}

// CatalogID returns the stable catalog identifier {course}_{title}_{token}.
func CatalogID(course, title, requestID string) (string, error) {
	token, err := RequestToken(requestID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s_%d", course, title, token), nil
}
