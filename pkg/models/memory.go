package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/memories-timeline/memories-backend/pkg/config"
	"gorm.io/gorm"
)

const TableNameMemory = "memories"

// Memory is one timeline entry. Media for image, video and gallery memories lives in MemoryAsset rows.
type Memory struct {
	Base
	UserID     string `gorm:"not null"`
	Type       string `gorm:"type:varchar(16);not null"`
	Content    *string
	Caption    *string
	Location   *string
	MemoryDate time.Time `gorm:"not null;index:idx_memories_memory_date"`
	Tags       *string
	EditedBy   *string
	Assets     []MemoryAsset `gorm:"foreignKey:MemoryID;constraint:OnDelete:CASCADE"`
}

func (m *Memory) TableName() string {
	return TableNameMemory
}

// BeforeCreate perform validations and sets UUID of Memory
func (m *Memory) BeforeCreate(tx *gorm.DB) error {
	if err := m.Base.BeforeCreate(tx); err != nil {
		return err
	}
	return m.validate()
}

func (m *Memory) validate() error {
	if m.UserID == "" {
		return Error{Message: "User ID cannot be blank.", Validation: true}
	}
	if m.MemoryDate.IsZero() {
		return Error{Message: "Memory date cannot be blank.", Validation: true}
	}
	return ValidateContent(m.Type, m.Content)
}

// ValidateContent checks the content rule of a memory type: quote and hybrid need
// non-blank content, every other type must not carry any.
func ValidateContent(memoryType string, content *string) error {
	if !config.ValidMemoryType(memoryType) {
		return Error{Message: fmt.Sprintf("Invalid memory type %s", memoryType), Validation: true}
	}
	hasContent := content != nil && strings.TrimSpace(*content) != ""
	if config.AssetBearingType(memoryType) {
		if hasContent {
			return Error{Message: fmt.Sprintf("Content not allowed for %s", memoryType), Validation: true}
		}
		return nil
	}
	if !hasContent {
		return Error{Message: fmt.Sprintf("Content required for %s", memoryType), Validation: true}
	}
	return nil
}

// ValidateAssetCount checks the number of assets a memory of the given type may hold
func ValidateAssetCount(memoryType string, count int) error {
	switch memoryType {
	case config.MemoryTypeQuote, config.MemoryTypeHybrid:
		if count > 0 {
			return Error{Message: fmt.Sprintf("Assets not allowed for %s", memoryType), Validation: true}
		}
	case config.MemoryTypeImage, config.MemoryTypeVideo:
		if count != 1 {
			return Error{Message: fmt.Sprintf("Exactly one asset required for type %s", memoryType), Validation: true}
		}
	case config.MemoryTypeGallery:
		if count == 0 {
			return Error{Message: "At least one asset required for gallery", Validation: true}
		}
	default:
		return Error{Message: fmt.Sprintf("Invalid memory type %s", memoryType), Validation: true}
	}
	return nil
}

// ValidateMemoryShape checks both the content and the asset count rules of a memory
func ValidateMemoryShape(memoryType string, content *string, assetCount int) error {
	if err := ValidateContent(memoryType, content); err != nil {
		return err
	}
	return ValidateAssetCount(memoryType, assetCount)
}
