package jobs

import "strings"

// ParseJobName splits a job-suffixed name on the first marker.
// ok is false when the name carries no marker.
func ParseJobName(name string) (base, suffix string, ok bool) {
	return strings.Cut(name, Marker)
}
