package store

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/fsouza/fake-gcs-server/fakestorage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeGCS(t *testing.T) *GCSStore {
	t.Helper()

	server, err := fakestorage.NewServerWithOptions(fakestorage.Options{
		InitialObjects: []fakestorage.Object{
			{
				ObjectAttrs: fakestorage.ObjectAttrs{
					BucketName:  "it-bucket",
					Name:        "seed/hello.txt",
					ContentType: "text/plain",
					Metadata:    map[string]string{"type": "text/markdown"},
				},
				Content: []byte("hello"),
			},
		},
	})
	require.NoError(t, err)
	t.Cleanup(server.Stop)

	return NewGCSStore(server.Client(), "it-bucket")
}

func TestGCSStoreBucketExists(t *testing.T) {
	gcs := newFakeGCS(t)

	exists, err := gcs.BucketExists(context.Background())
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGCSStoreWriteStatOpen(t *testing.T) {
	gcs := newFakeGCS(t)
	ctx := context.Background()

	err := gcs.Write(ctx, "u1/docs/1_2_note.txt", []byte("note body"), "text/plain", map[string]string{"type": "text/plain"})
	require.NoError(t, err)

	attrs, err := gcs.Stat(ctx, "u1/docs/1_2_note.txt")
	require.NoError(t, err)
	assert.Equal(t, "u1/docs/1_2_note.txt", attrs.Key)
	assert.Equal(t, "text/plain", attrs.ContentType)
	assert.Equal(t, int64(len("note body")), attrs.Size)
	assert.Equal(t, "text/plain", attrs.Metadata["type"])

	rc, err := gcs.Open(ctx, "u1/docs/1_2_note.txt")
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "note body", string(content))
}

func TestGCSStoreListByPrefix(t *testing.T) {
	gcs := newFakeGCS(t)
	ctx := context.Background()

	require.NoError(t, gcs.Write(ctx, "u1/a.txt", []byte("a"), "text/plain", nil))
	require.NoError(t, gcs.Write(ctx, "u1/b.txt", []byte("b"), "text/plain", nil))
	require.NoError(t, gcs.Write(ctx, "u2/c.txt", []byte("c"), "text/plain", nil))

	attrs, err := gcs.List(ctx, "u1/")
	require.NoError(t, err)
	require.Len(t, attrs, 2)

	keys := []string{attrs[0].Key, attrs[1].Key}
	assert.Contains(t, keys, "u1/a.txt")
	assert.Contains(t, keys, "u1/b.txt")
}

func TestGCSStoreRemove(t *testing.T) {
	gcs := newFakeGCS(t)
	ctx := context.Background()

	require.NoError(t, gcs.Remove(ctx, "seed/hello.txt"))

	_, err := gcs.Stat(ctx, "seed/hello.txt")
	assert.True(t, errors.Is(err, ErrFileNotFound), "expected ErrFileNotFound, got %v", err)

	err = gcs.Remove(ctx, "seed/hello.txt")
	assert.True(t, errors.Is(err, ErrFileNotFound), "expected ErrFileNotFound, got %v", err)
}

func TestGCSStoreStatMissingObject(t *testing.T) {
	gcs := newFakeGCS(t)

	_, err := gcs.Stat(context.Background(), "nope/missing.bin")
	assert.True(t, errors.Is(err, ErrFileNotFound), "expected ErrFileNotFound, got %v", err)
}
