package store

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"wayfarer/internal/metrics"
)

const (
	fileKeyPrefix = "file_"

	// Blob operations share one metrics label; per-hash storage keys
	// would grow the label set without bound.
	filesMetricKey = "files"
)

// SaveDataURL reads the blob, encodes it as a data URL suitable for
// inlining into an entity's image field, and caches it under a
// content-addressed file key. A read failure surfaces as an error.
func (s *Store) SaveDataURL(ctx context.Context, r io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))

	sum := sha256.Sum256(data)
	key := fileKeyPrefix + hex.EncodeToString(sum[:])

	metrics.IncWrite(filesMetricKey)
	if err := s.storage.Set(ctx, key, dataURL); err != nil {
		metrics.IncError(filesMetricKey)
		return "", fmt.Errorf("write file blob: %w", err)
	}

	return dataURL, nil
}

// GetDataURL returns the cached data URL for a content hash.
// storage.ErrKeyNotFound passes through when the blob is absent.
func (s *Store) GetDataURL(ctx context.Context, hash string) (string, error) {
	metrics.IncRead(filesMetricKey)
	return s.storage.Get(ctx, fileKeyPrefix+hash)
}
