package dao

import (
	"context"

	"github.com/memories-timeline/memories-backend/pkg/api"
)

//go:generate mockery --name MemoryDao --filename memories_mock.go --inpackage
type MemoryDao interface {
	List(ctx context.Context, filters api.MemoryFilters, limit int) (api.MemoryCollectionResponse, error)
	Fetch(ctx context.Context, uuid string) (api.MemoryResponse, error)
	Create(ctx context.Context, userID string, req api.MemoryCreateRequest) (api.MemoryResponse, error)
	Update(ctx context.Context, uuid string, editor string, req api.MemoryUpdateRequest) (api.MemoryResponse, error)
	ListMedia(ctx context.Context) (api.MediaCollectionResponse, error)
}

//go:generate mockery --name MetricsDao --filename metrics_mock.go --inpackage
type MetricsDao interface {
	MemoriesCountByType(ctx context.Context) map[string]int64
	AssetsCountByType(ctx context.Context) map[string]int64
}
