package assets

import (
	"context"
	"errors"
	"io"
)

var ErrObjectNotFound = errors.New("object not found")

// ObjectMeta is stored alongside an uploaded object and replayed when it is served
type ObjectMeta struct {
	ContentType  string
	CacheControl string
}

type Object struct {
	Body         io.ReadCloser
	ContentType  string
	CacheControl string
	ETag         string
	Size         int64
}

// BlobStore persists opaque objects by key. Get returns ErrObjectNotFound for missing keys.
type BlobStore interface {
	Put(ctx context.Context, key string, body []byte, meta ObjectMeta) error
	Get(ctx context.Context, key string) (*Object, error)
}
