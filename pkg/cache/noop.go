package cache

import (
	"context"

	"github.com/memories-timeline/memories-backend/pkg/api"
)

// A noop cache doesn't actually cache anything, but provides an implementation
// of the caching interfaces
type noOpCache struct {
}

func NewNoOpCache() *noOpCache {
	return &noOpCache{}
}

// GetMedia a NoOp version to fetch the cached media listing
func (c *noOpCache) GetMedia(ctx context.Context) (*api.MediaCollectionResponse, error) {
	return nil, ErrNotFound
}

// SetMedia a NoOp version to store the media listing
func (c *noOpCache) SetMedia(ctx context.Context, response api.MediaCollectionResponse) error {
	return nil
}

func (c *noOpCache) InvalidateMedia(ctx context.Context) error {
	return nil
}
