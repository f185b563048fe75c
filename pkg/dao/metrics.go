package dao

import (
	"context"

	"github.com/memories-timeline/memories-backend/pkg/models"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type metricsDaoImpl struct {
	db *gorm.DB
}

type typeCount struct {
	Type  string
	Total int64
}

func GetMetricsDao(db *gorm.DB) MetricsDao {
	if db == nil {
		return nil
	}
	return metricsDaoImpl{
		db: db,
	}
}

// MemoriesCountByType returns the number of memories per memory type
func (d metricsDaoImpl) MemoriesCountByType(ctx context.Context) map[string]int64 {
	// select type, COUNT(*) from memories group by type;
	rows := []typeCount{}
	err := d.db.WithContext(ctx).
		Model(&models.Memory{}).
		Select("type AS type, COUNT(*) AS total").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Could not count memories")
		return map[string]int64{}
	}
	return countsToMap(rows)
}

// AssetsCountByType returns the number of memory assets per asset type
func (d metricsDaoImpl) AssetsCountByType(ctx context.Context) map[string]int64 {
	// select asset_type, COUNT(*) from memory_assets group by asset_type;
	rows := []typeCount{}
	err := d.db.WithContext(ctx).
		Model(&models.MemoryAsset{}).
		Select("asset_type AS type, COUNT(*) AS total").
		Group("asset_type").
		Scan(&rows).Error
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Could not count memory assets")
		return map[string]int64{}
	}
	return countsToMap(rows)
}

func countsToMap(rows []typeCount) map[string]int64 {
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Type] = row.Total
	}
	return counts
}
