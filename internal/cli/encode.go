package cli

import (
	"net/url"
	"strings"
)

// EncodeKey encodes key like an S3 notification: form-encoded, slashes kept.
func EncodeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.QueryEscape(p)
	}
	return strings.Join(parts, "/")
}
