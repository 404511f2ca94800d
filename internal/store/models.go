package store

import (
	"bytes"
	"io"
	"time"
)

// FileDescriptor carries a file's metadata together with its buffered
// content. It is built per call and owned by the caller once returned.
type FileDescriptor struct {
	FieldName    string `json:"field_name"`
	OriginalName string `json:"original_name"`
	FileName     string `json:"file_name"`
	Encoding     string `json:"encoding"`
	MimeType     string `json:"mime_type"`
	SizeBytes    int64  `json:"size_bytes"`
	Directory    string `json:"directory"`
	Destination  string `json:"destination"`
	Path         string `json:"path"`
	Content      []byte `json:"-"`
}

// Stream returns a fresh reader over the buffered content. Each call
// starts from the beginning.
func (f *FileDescriptor) Stream() io.Reader {
	return bytes.NewReader(f.Content)
}

// FileInfo is a single listing entry. Path is the raw object key, URL
// its public address.
type FileInfo struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Type string `json:"type"`
	Path string `json:"path"`
}

// UploadOptions scope and tune a single upload. Zero values fall back
// to the service defaults; MakePublic is tri-state so "explicitly
// private" can be told apart from "unset".
type UploadOptions struct {
	UserID      string
	Directory   string
	ContentType string
	MakePublic  *bool
}

// ObjectAttrs is the backend-neutral view of stored object metadata.
type ObjectAttrs struct {
	Key         string
	ContentType string
	Size        int64
	Metadata    map[string]string
	Updated     time.Time
}
