package presigned

import (
	"fmt"
	"time"

	"github.com/askhat/gostore/internal/store"
)

// urlSigner is satisfied by store.GCSStore.
type urlSigner interface {
	SignedURL(key string, expires time.Time) (string, error)
}

// Service issues time-limited download URLs for stored objects.
type Service struct {
	signer  urlSigner
	bucket  string
	ttl     time.Duration
	nowFunc func() time.Time
}

// NewService constructs the signing service with a default TTL.
func NewService(signer urlSigner, bucket string, ttl time.Duration) *Service {
	return &Service{
		signer:  signer,
		bucket:  bucket,
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

// DefaultTTL returns the TTL applied when a request does not name one.
func (s *Service) DefaultTTL() time.Duration {
	return s.ttl
}

// DownloadURL signs a GET URL for the object behind the given public
// URL or raw key. A non-positive ttl falls back to the default.
func (s *Service) DownloadURL(url string, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = s.ttl
	}

	key := store.DecodeURL(s.bucket, url)
	expires := s.nowFunc().Add(ttl)

	signed, err := s.signer.SignedURL(key, expires)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign url for %q: %w", key, err)
	}
	return signed, expires, nil
}
