package store

import (
	"context"
	"fmt"
	"io"
	"path"
	"sync"

	"cloud.google.com/go/iam/apiv1/iampb"
	"go.uber.org/zap"
)

// objectStore abstracts the backend primitives the service depends on.
// The production implementation is GCSStore; tests use in-memory fakes.
type objectStore interface {
	BucketExists(ctx context.Context) (bool, error)
	Write(ctx context.Context, key string, content []byte, contentType string, metadata map[string]string) error
	Stat(ctx context.Context, key string) (ObjectAttrs, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Remove(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]ObjectAttrs, error)
	Policy(ctx context.Context) (*iampb.Policy, error)
	SetPolicy(ctx context.Context, policy *iampb.Policy) error
	AllowPublicRead(ctx context.Context, key string) error
}

// Options carry the service-level defaults loaded from configuration.
type Options struct {
	DefaultUserID           string
	AllowPublicAccess       bool
	ValidateBucketOnStartup bool
}

// Service composes key naming, retried writes, public-access
// reconciliation and listing into the public storage operations.
type Service struct {
	store         objectStore
	bucket        string
	defaultUserID string
	allowPublic   bool
	log           *zap.Logger

	readyOnce sync.Once
	readyErr  error
}

// NewService constructs the storage service. With
// ValidateBucketOnStartup set, the bucket check runs eagerly and a
// failure is returned here; otherwise validation is deferred to the
// first operation. Either way the outcome is settled exactly once.
func NewService(ctx context.Context, store objectStore, bucket string, opts Options, log *zap.Logger) (*Service, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Service{
		store:         store,
		bucket:        bucket,
		defaultUserID: opts.DefaultUserID,
		allowPublic:   opts.AllowPublicAccess,
		log:           log,
	}

	if opts.ValidateBucketOnStartup {
		if err := s.Ready(ctx); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Ready reports whether the target bucket is reachable. The first call
// performs the check; every later call observes the same memoized
// outcome, success or failure.
func (s *Service) Ready(ctx context.Context) error {
	s.readyOnce.Do(func() {
		exists, err := s.store.BucketExists(ctx)
		if err != nil {
			s.readyErr = fmt.Errorf("check bucket %q: %w", s.bucket, err)
			return
		}
		if !exists {
			s.readyErr = fmt.Errorf("bucket %q: %w", s.bucket, ErrBucketNotFound)
		}
	})
	return s.readyErr
}

// Bucket returns the name of the backing bucket.
func (s *Service) Bucket() string {
	return s.bucket
}

// Upload stores the file content under a freshly derived key and
// returns the public URL. The returned URL always denotes a stored
// object, but public reachability is best effort only.
func (s *Service) Upload(ctx context.Context, file *FileDescriptor, opts UploadOptions) (string, error) {
	if err := s.Ready(ctx); err != nil {
		return "", err
	}
	if file == nil {
		return "", fmt.Errorf("missing file payload")
	}

	userID := opts.UserID
	if userID == "" {
		userID = s.defaultUserID
	}

	prefix := ComposePrefix(userID, opts.Directory)
	key := ComposeObjectKey(prefix, file.OriginalName)

	contentType := opts.ContentType
	if contentType == "" {
		contentType = file.MimeType
	}
	if contentType == "" {
		contentType = TypeByName(file.OriginalName)
	}

	metadata := map[string]string{"type": contentType}

	if err := s.writeWithRetry(ctx, key, file.Content, contentType, metadata); err != nil {
		return "", err
	}

	if s.shouldMakePublic(opts) {
		s.ensurePublicRead(ctx, key)
	}

	return EncodeURL(s.bucket, key), nil
}

// FetchByURL buffers the object behind the given public URL (or raw
// key) into a FileDescriptor.
func (s *Service) FetchByURL(ctx context.Context, url string) (*FileDescriptor, error) {
	if err := s.Ready(ctx); err != nil {
		return nil, err
	}

	key := DecodeURL(s.bucket, url)
	attrs, err := s.store.Stat(ctx, key)
	if err != nil {
		return nil, err
	}

	rc, err := s.store.Open(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read object %q: %w", key, err)
	}

	name := path.Base(key)
	directory := path.Dir(key)
	if directory == "." {
		directory = ""
	}

	return &FileDescriptor{
		FieldName:    "file",
		OriginalName: name,
		FileName:     name,
		Encoding:     "7bit",
		MimeType:     attrs.ContentType,
		SizeBytes:    int64(len(content)),
		Directory:    directory,
		Destination:  s.bucket,
		Path:         key,
		Content:      content,
	}, nil
}

// Delete removes the object behind the given public URL (or raw key).
func (s *Service) Delete(ctx context.Context, url string) error {
	if err := s.Ready(ctx); err != nil {
		return err
	}
	return s.store.Remove(ctx, DecodeURL(s.bucket, url))
}

// List enumerates objects scoped to the given user and directory. Both
// arguments blank means the whole bucket.
func (s *Service) List(ctx context.Context, directory, userID string) ([]FileInfo, error) {
	if err := s.Ready(ctx); err != nil {
		return nil, err
	}
	return s.listPrefix(ctx, ComposePrefix(userID, directory))
}

func (s *Service) shouldMakePublic(opts UploadOptions) bool {
	if opts.MakePublic != nil {
		return *opts.MakePublic
	}
	return s.allowPublic
}
