package seeds

import (
	"errors"
	"fmt"
	"time"

	"github.com/labstack/gommon/random"
	"github.com/memories-timeline/memories-backend/pkg/config"
	"github.com/memories-timeline/memories-backend/pkg/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SeedOptions struct {
	UserID string
	Start  *time.Time     // memory_date of the first memory, defaults to 2024-01-01 UTC
	Step   *time.Duration // gap between consecutive memory dates, zero gives every memory the same date
	Types  []string       // memory types to rotate through, defaults to quote only
	Tags   *string
}

const DefaultSeedUser = "developer@example.com"

// SeedMemories inserts size memories going back in time from Start, together with the
// assets their type requires. The created memories are returned newest first.
func SeedMemories(db *gorm.DB, size int, options SeedOptions) ([]models.Memory, error) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	if options.Start != nil {
		start = options.Start.UTC()
	}
	step := 24 * time.Hour
	if options.Step != nil {
		step = *options.Step
	}
	types := options.Types
	if len(types) == 0 {
		types = []string{config.MemoryTypeQuote}
	}
	userID := options.UserID
	if userID == "" {
		userID = DefaultSeedUser
	}

	memories := make([]models.Memory, 0, size)
	for i := 0; i < size; i++ {
		memoryType := types[i%len(types)]
		memory := models.Memory{
			UserID:     userID,
			Type:       memoryType,
			MemoryDate: start.Add(-time.Duration(i) * step),
			Tags:       options.Tags,
		}
		caption := fmt.Sprintf("Seed %d %s", i, random.String(6, random.Lowercase, random.Numeric))
		memory.Caption = &caption
		if !config.AssetBearingType(memoryType) {
			content := fmt.Sprintf("Seeded %s number %d", memoryType, i)
			memory.Content = &content
		}

		if err := db.Omit(clause.Associations).Create(&memory).Error; err != nil {
			return nil, errors.New("could not save seed")
		}
		assets := seedAssets(memory)
		if len(assets) > 0 {
			if err := db.Create(&assets).Error; err != nil {
				return nil, errors.New("could not save seed assets")
			}
		}
		memory.Assets = assets
		memories = append(memories, memory)
	}
	return memories, nil
}

func seedAssets(memory models.Memory) []models.MemoryAsset {
	count := 0
	assetType := config.AssetTypeImage
	switch memory.Type {
	case config.MemoryTypeImage:
		count = 1
	case config.MemoryTypeVideo:
		count = 1
		assetType = config.AssetTypeVideo
	case config.MemoryTypeGallery:
		count = 3
	}

	assets := make([]models.MemoryAsset, count)
	for i := range assets {
		key := fmt.Sprintf("%s-seed-%d.jpg", random.String(8, random.Lowercase, random.Numeric), i)
		assets[i] = models.MemoryAsset{
			MemoryID:  memory.UUID,
			AssetKey:  key,
			AssetType: assetType,
			SortOrder: i,
		}
		if assetType == config.AssetTypeImage {
			thumb := config.ThumbnailKeyPrefix + key
			assets[i].ThumbnailKey = &thumb
		}
	}
	return assets
}
