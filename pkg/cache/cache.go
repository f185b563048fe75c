// Package cache provides application and HTTP response cache.
package cache

import (
	"context"
	"errors"

	"github.com/memories-timeline/memories-backend/pkg/api"
	"github.com/memories-timeline/memories-backend/pkg/config"
	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("not found in cache")

//go:generate mockery --name Cache --filename cache_mock.go --inpackage
type Cache interface {
	GetMedia(ctx context.Context) (*api.MediaCollectionResponse, error)
	SetMedia(ctx context.Context, response api.MediaCollectionResponse) error
	InvalidateMedia(ctx context.Context) error
}

func Initialize() Cache {
	if config.Get().Clients.Redis.Host != "" {
		return NewRedisCache(config.Get().Clients.Redis)
	} else {
		log.Logger.Warn().Msg("No application cache in use")
		return NewNoOpCache()
	}
}
