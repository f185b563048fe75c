package seeds

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/memories-timeline/memories-backend/pkg/models"
	"github.com/memories-timeline/memories-backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.Memory{}, &models.MemoryAsset{}))
	return db
}

func TestSeed(t *testing.T) {
	db := openTestDB(t)

	memories, err := SeedMemories(db, 5, SeedOptions{Types: []string{"quote", "image", "video", "hybrid", "gallery"}})
	require.NoError(t, err)
	require.Len(t, memories, 5)

	var count int64
	db.Model(&models.Memory{}).Count(&count)
	assert.Equal(t, int64(5), count)

	db.Model(&models.MemoryAsset{}).Count(&count)
	assert.Equal(t, int64(5), count) // image 1, video 1, gallery 3

	assert.Equal(t, DefaultSeedUser, memories[0].UserID)
	assert.True(t, memories[0].MemoryDate.After(memories[1].MemoryDate))
	assert.Nil(t, memories[1].Content)
	assert.Nil(t, memories[2].Assets[0].ThumbnailKey)
	assert.NotNil(t, memories[1].Assets[0].ThumbnailKey)
}

func TestSeedSameDate(t *testing.T) {
	db := openTestDB(t)

	memories, err := SeedMemories(db, 3, SeedOptions{Step: utils.Ptr(time.Duration(0)), UserID: "someone"})
	require.NoError(t, err)
	assert.True(t, memories[0].MemoryDate.Equal(memories[2].MemoryDate))
	assert.Equal(t, "someone", memories[2].UserID)
}
