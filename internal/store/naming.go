package store

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"
)

const randomSuffixSpace = 10000

var (
	prefixSanitizer = regexp.MustCompile(`[^A-Za-z0-9/_-]`)
	nameSanitizer   = regexp.MustCompile(`[^A-Za-z0-9.]`)
)

// ComposePrefix joins the user and directory scopes into a key prefix.
// Blank segments are skipped; an empty result means bucket-root scope
// and is not an error.
func ComposePrefix(userID, directory string) string {
	segments := make([]string, 0, 2)
	for _, segment := range []string{userID, directory} {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		segments = append(segments, prefixSanitizer.ReplaceAllString(segment, "_"))
	}
	return strings.Join(segments, "/")
}

// ComposeObjectKey derives a collision-resistant object key for the
// given original file name, scoped under prefix when one is set. The
// millisecond timestamp plus random suffix keeps keys unique even for
// repeated uploads of the same name.
func ComposeObjectKey(prefix, originalName string) string {
	base := fmt.Sprintf("%d_%d_%s",
		time.Now().UnixMilli(),
		rand.IntN(randomSuffixSpace),
		nameSanitizer.ReplaceAllString(originalName, "_"),
	)
	if prefix == "" {
		return base
	}
	return prefix + "/" + base
}
