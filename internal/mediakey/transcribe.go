package mediakey

import "strings"

// MediaFormat returns the lowercased text after the last dot of key.
func MediaFormat(key string) string {
	return strings.ToLower(key[strings.LastIndex(key, ".")+1:])
}

// MediaURI returns the s3:// URI Transcribe reads the media from.
func MediaURI(bucket, key string) string {
	return "s3://" + bucket + "/" + key
}

// OutputPrefix returns the folder of key with a trailing slash, so that
// Transcribe writes its output next to the media it transcribed.
func OutputPrefix(key string) string {
	return Dir(key) + "/"
}

// MediaBase returns the filename of key without its extension.
func MediaBase(key string) string {
	base, _ := SplitExt(Base(key))
	return base
}
