package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"cloud.google.com/go/iam"
	"cloud.google.com/go/iam/apiv1/iampb"
	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// GCSStore adapts the Google Cloud Storage client to the objectStore
// interface, scoped to a single bucket.
type GCSStore struct {
	client *storage.Client
	bucket string
}

// NewGCSStore constructs an adapter over the given client and bucket.
func NewGCSStore(client *storage.Client, bucket string) *GCSStore {
	return &GCSStore{client: client, bucket: bucket}
}

func (s *GCSStore) BucketExists(ctx context.Context) (bool, error) {
	_, err := s.client.Bucket(s.bucket).Attrs(ctx)
	if errors.Is(err, storage.ErrBucketNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Write stores the full buffer in a single request. ChunkSize zero
// disables the resumable upload session, so a failure never leaves a
// partial transfer behind.
func (s *GCSStore) Write(ctx context.Context, key string, content []byte, contentType string, metadata map[string]string) error {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.Metadata = metadata
	w.ChunkSize = 0

	if _, err := w.Write(content); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func (s *GCSStore) Stat(ctx context.Context, key string) (ObjectAttrs, error) {
	attrs, err := s.client.Bucket(s.bucket).Object(key).Attrs(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return ObjectAttrs{}, fmt.Errorf("object %q: %w", key, ErrFileNotFound)
	}
	if err != nil {
		return ObjectAttrs{}, err
	}
	return convertAttrs(attrs), nil
}

func (s *GCSStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, fmt.Errorf("object %q: %w", key, ErrFileNotFound)
	}
	return r, err
}

func (s *GCSStore) Remove(ctx context.Context, key string) error {
	err := s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("object %q: %w", key, ErrFileNotFound)
	}
	return err
}

func (s *GCSStore) List(ctx context.Context, prefix string) ([]ObjectAttrs, error) {
	var out []ObjectAttrs

	it := s.client.Bucket(s.bucket).Objects(ctx, &storage.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list objects under %q: %w", prefix, err)
		}
		out = append(out, convertAttrs(attrs))
	}
	return out, nil
}

// Policy fetches the bucket IAM policy at version 3, the version that
// understands conditional bindings. The returned policy carries the
// etag SetPolicy hands back to the backend.
func (s *GCSStore) Policy(ctx context.Context) (*iampb.Policy, error) {
	policy, err := s.client.Bucket(s.bucket).IAM().V3().Policy(ctx)
	if err != nil {
		return nil, err
	}
	return &iampb.Policy{Version: 3, Bindings: policy.Bindings}, nil
}

func (s *GCSStore) SetPolicy(ctx context.Context, policy *iampb.Policy) error {
	return s.client.Bucket(s.bucket).IAM().V3().SetPolicy(ctx, &iam.Policy3{Bindings: policy.Bindings})
}

func (s *GCSStore) AllowPublicRead(ctx context.Context, key string) error {
	return s.client.Bucket(s.bucket).Object(key).ACL().Set(ctx, storage.AllUsers, storage.RoleReader)
}

// SignedURL issues a time-limited V4 GET URL for the given key.
func (s *GCSStore) SignedURL(key string, expires time.Time) (string, error) {
	return s.client.Bucket(s.bucket).SignedURL(key, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: expires,
	})
}

func convertAttrs(attrs *storage.ObjectAttrs) ObjectAttrs {
	return ObjectAttrs{
		Key:         attrs.Name,
		ContentType: attrs.ContentType,
		Size:        attrs.Size,
		Metadata:    attrs.Metadata,
		Updated:     attrs.Updated,
	}
}
