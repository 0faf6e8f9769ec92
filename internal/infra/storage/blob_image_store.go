// Package storage persists uploaded product images through a gocloud.dev
// blob bucket, so the same code serves a local directory in development and
// an object store in production.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"localfarm/config"
	"localfarm/internal/domain/lifecycle"
	"localfarm/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket URL schemes supported out of the box.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

const defaultURLPrefix = "/uploads"

type blobImageStore struct {
	bucket    *blob.Bucket
	urlPrefix string
	logger    *slog.Logger
	now       func() time.Time
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns it as a service.ImageStore.
func New(params Params) (service.ImageStore, error) {
	bucketURL := "mem://"
	urlPrefix := defaultURLPrefix
	if params.Config.Uploads != nil {
		if params.Config.Uploads.BucketURL != "" {
			bucketURL = params.Config.Uploads.BucketURL
		}
		if params.Config.Uploads.URLPrefix != "" {
			urlPrefix = params.Config.Uploads.URLPrefix
		}
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open upload bucket %s", bucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return &blobImageStore{
		bucket:    bucket,
		urlPrefix: urlPrefix,
		logger:    params.Logger,
		now:       time.Now,
	}, nil
}

// NewWithBucket wires an already-open bucket; used by tests with memblob.
func NewWithBucket(bucket *blob.Bucket, urlPrefix string, logger *slog.Logger) service.ImageStore {
	if urlPrefix == "" {
		urlPrefix = defaultURLPrefix
	}

	return &blobImageStore{
		bucket:    bucket,
		urlPrefix: urlPrefix,
		logger:    logger,
		now:       time.Now,
	}
}

// Save writes the image under a generated key and returns its URL path.
// The original filename only contributes its extension.
func (s *blobImageStore) Save(ctx context.Context, filename string, contentType string, r io.Reader) (string, error) {
	key := s.generateKey(filename)

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write image")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize image write")
	}

	urlPath := path.Join(s.urlPrefix, key)
	if !strings.HasPrefix(urlPath, "/") {
		urlPath = "/" + urlPath
	}

	s.logger.Debug("Stored uploaded image",
		slog.String("key", key),
		slog.String("urlPath", urlPath),
	)

	return urlPath, nil
}

func (s *blobImageStore) generateKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))

	// A uuid keeps concurrent uploads from colliding on the same timestamp.
	return "image-" + s.now().UTC().Format("20060102T150405") + "-" + uuid.NewString() + ext
}
