package storage

import (
	"context"
	"errors"
)

// Buckets mirror the hosted object store the web client used.
const (
	BucketAvatars      = "avatars"
	BucketCertificates = "certificates"
)

var ErrNotFound = errors.New("object not found")

// Store persists binary evidence and avatars and hands out public URLs.
// Keys are slash-separated paths scoped under a bucket; saving to an
// existing key overwrites it.
type Store interface {
	Save(ctx context.Context, bucket, key string, data []byte) error
	Delete(ctx context.Context, bucket, key string) error
	// PublicURL returns the retrievable URL for a stored object. It does
	// not check existence.
	PublicURL(bucket, key string) string
}
