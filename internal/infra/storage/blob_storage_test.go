package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"storefront/internal/domain/service"
)

func newTestStorage(t *testing.T) service.FileStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewWithBucket(bucket, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBlobStorage_SaveOpenDelete(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	key, err := storage.Save(ctx, "avatars", "Me.PNG", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "avatars/"))
	assert.True(t, strings.HasSuffix(key, ".png"))

	file, err := storage.Open(ctx, key)
	require.NoError(t, err)
	body, err := io.ReadAll(file.Body)
	require.NoError(t, err)
	require.NoError(t, file.Body.Close())

	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", file.ContentType)
	assert.Equal(t, int64(len("png-bytes")), file.Size)

	require.NoError(t, storage.Delete(ctx, key))
	_, err = storage.Open(ctx, key)
	assert.ErrorIs(t, err, service.ErrFileNotFound)

	assert.NoError(t, storage.Delete(ctx, key), "deleting twice is fine")
}

func TestBlobStorage_KeysAreUnique(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	first, err := storage.Save(ctx, "products", "photo.jpg", "image/jpeg", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := storage.Save(ctx, "products", "photo.jpg", "image/jpeg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBlobStorage_OpenRejectsTraversal(t *testing.T) {
	storage := newTestStorage(t)

	for _, key := range []string{"", "/etc/passwd", "../secret", "avatars/../../x", "avatars//x"} {
		_, err := storage.Open(context.Background(), key)
		assert.ErrorIs(t, err, service.ErrFileNotFound, key)
	}
}

func TestSafeExt(t *testing.T) {
	assert.Equal(t, ".jpg", safeExt("photo.JPG"))
	assert.Equal(t, "", safeExt("noext"))
	assert.Equal(t, "", safeExt("evil.ph p"))
	assert.Equal(t, "", safeExt("x."+strings.Repeat("a", 20)))
}
