// Package storage persists uploaded files in a blob bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"

	apperrors "github.com/munchly/munchly/internal/errors"
)

// Bucket stores uploaded files under generated keys and streams them back.
type Bucket struct {
	bucket *blob.Bucket
}

// NewFileBucket opens a local directory-backed bucket, creating the
// directory when missing.
func NewFileBucket(dir string) (*Bucket, error) {
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open file bucket")
	}
	return &Bucket{bucket: bucket}, nil
}

// NewBucket wraps an already opened blob bucket.
func NewBucket(bucket *blob.Bucket) *Bucket {
	return &Bucket{bucket: bucket}
}

// Save writes the content under a timestamped key derived from the original
// filename and returns the key. Path separators in the filename are dropped
// so a crafted name cannot escape the bucket.
func (b *Bucket) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	key := fmt.Sprintf("%d_%s", time.Now().UnixNano(), sanitizeFilename(filename))

	writer, err := b.bucket.NewWriter(ctx, key, nil)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		_ = writer.Close()
		return "", apperrors.Wrap(err, "failed to write file")
	}

	if err := writer.Close(); err != nil {
		return "", apperrors.Wrap(err, "failed to close bucket writer")
	}

	return key, nil
}

// Open streams the stored file for a key. The caller must close the reader.
func (b *Bucket) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	reader, err := b.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "file not found")
		}
		return nil, apperrors.Wrap(err, "failed to open file")
	}
	return reader, nil
}

// Delete removes the stored file for a key. Deleting a missing key is not an error.
func (b *Bucket) Delete(ctx context.Context, key string) error {
	if err := b.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}
		return apperrors.Wrap(err, "failed to delete file")
	}
	return nil
}

// Close releases the underlying bucket.
func (b *Bucket) Close() error {
	return b.bucket.Close()
}

// sanitizeFilename strips directory components and whitespace from an
// uploaded filename.
func sanitizeFilename(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = strings.TrimSpace(base)
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "file"
	}
	return base
}
