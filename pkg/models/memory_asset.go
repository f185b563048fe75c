package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/memories-timeline/memories-backend/pkg/config"
	"gorm.io/gorm"
)

const TableNameMemoryAsset = "memory_assets"

// MemoryAsset is one element of a memory's ordered media collection
type MemoryAsset struct {
	UUID         string `gorm:"column:id;primary_key"`
	MemoryID     string `gorm:"not null;index:idx_memory_assets_memory_sort,priority:1"`
	AssetKey     string `gorm:"not null"`
	ThumbnailKey *string
	AssetType    string `gorm:"type:varchar(8);not null"`
	SortOrder    int    `gorm:"not null;index:idx_memory_assets_memory_sort,priority:2"`
}

func (a *MemoryAsset) TableName() string {
	return TableNameMemoryAsset
}

// BeforeCreate perform validations and sets UUID of MemoryAsset
func (a *MemoryAsset) BeforeCreate(tx *gorm.DB) error {
	if a.UUID == "" {
		a.UUID = uuid.NewString()
	}
	return a.validate()
}

func (a *MemoryAsset) validate() error {
	if a.MemoryID == "" {
		return Error{Message: "Memory ID cannot be blank.", Validation: true}
	}
	return ValidateAsset(a.AssetKey, a.AssetType)
}

// ValidateAsset checks the fields a client supplies for one asset
func ValidateAsset(assetKey string, assetType string) error {
	if assetKey == "" {
		return Error{Message: "Asset key is required", Validation: true}
	}
	if !config.ValidAssetType(assetType) {
		return Error{Message: fmt.Sprintf("Invalid asset type %s", assetType), Validation: true}
	}
	return nil
}
