package store

import (
	"fmt"
	"strings"
)

// PublicBaseURL is the fixed Google Cloud Storage hostname every
// public object URL is rooted at. Stored links depend on this exact
// format, so it must never change shape.
const PublicBaseURL = "https://storage.googleapis.com"

// EncodeURL maps an object key to its public URL.
func EncodeURL(bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", PublicBaseURL, bucket, key)
}

// DecodeURL maps a public URL back to the object key. Anything that
// does not carry the expected prefix is returned unchanged so callers
// may pass raw keys where a URL is expected.
func DecodeURL(bucket, url string) string {
	prefix := fmt.Sprintf("%s/%s/", PublicBaseURL, bucket)
	if strings.HasPrefix(url, prefix) {
		return strings.TrimPrefix(url, prefix)
	}
	return url
}
