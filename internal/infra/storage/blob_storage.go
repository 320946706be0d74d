// Package storage keeps uploaded media in a gocloud.dev bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

const maxExtLength = 10

// blobStorage implements service.FileStorage on top of a blob.Bucket.
type blobStorage struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// StorageParams holds dependencies for FileStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFileStorage opens the bucket named by storage.bucketUrl.
func NewFileStorage(params StorageParams) (service.FileStorage, error) {
	bucketURL := params.Config.Storage.BucketURL

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Media bucket opened", slog.String("url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewWithBucket(bucket, params.Logger), nil
}

// NewWithBucket wraps an already opened bucket.
func NewWithBucket(bucket *blob.Bucket, logger *slog.Logger) service.FileStorage {
	return &blobStorage{bucket: bucket, logger: logger}
}

func (s *blobStorage) Save(ctx context.Context, prefix, filename, contentType string, r io.Reader) (string, error) {
	key := path.Join(prefix, uuid.NewString()+safeExt(filename))

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write blob")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to commit blob")
	}

	return key, nil
}

func (s *blobStorage) Open(ctx context.Context, key string) (*service.StoredFile, error) {
	if !validKey(key) {
		return nil, service.ErrFileNotFound
	}

	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrFileNotFound
		}

		return nil, errors.Wrap(err, "failed to open blob")
	}

	return &service.StoredFile{
		Body:        r,
		ContentType: r.ContentType(),
		Size:        r.Size(),
		ModTime:     r.ModTime(),
	}, nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if !validKey(key) {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete blob")
	}

	return nil
}

// safeExt keeps a short lowercase extension of the client's filename.
func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) < 2 || len(ext) > maxExtLength {
		return ""
	}

	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}

	return ext
}

// validKey rejects keys that could escape the bucket root.
func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") {
		return false
	}

	for _, part := range strings.Split(key, "/") {
		if part == "" || part == "." || part == ".." {
			return false
		}
	}

	return true
}
