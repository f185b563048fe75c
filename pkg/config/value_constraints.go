package config

import "golang.org/x/exp/slices"

const (
	MemoryTypeQuote   = "quote"   // Free text only
	MemoryTypeImage   = "image"   // Exactly one image or video asset
	MemoryTypeVideo   = "video"   // Exactly one image or video asset
	MemoryTypeHybrid  = "hybrid"  // Rich text only
	MemoryTypeGallery = "gallery" // One or more assets
)

const (
	AssetTypeImage = "image"
	AssetTypeVideo = "video"
)

const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

// Image formats the thumbnailer can decode. SVG and GIF are deliberately left out.
const (
	MimeTypePNG  = "image/png"
	MimeTypeJPEG = "image/jpeg"
	MimeTypeBMP  = "image/bmp"
	MimeTypeTIFF = "image/tiff"
)

const ThumbnailKeyPrefix = "thumb-"
const ThumbnailExtension = ".jpg"
const DefaultContentType = "application/octet-stream"

var MemoryTypes = [...]string{MemoryTypeQuote, MemoryTypeImage, MemoryTypeVideo, MemoryTypeHybrid, MemoryTypeGallery}

var ThumbnailMimeTypes = [...]string{MimeTypePNG, MimeTypeJPEG, MimeTypeBMP, MimeTypeTIFF}

// ValidMemoryType returns true if memoryType is one of the supported memory types
func ValidMemoryType(memoryType string) bool {
	return slices.Contains(MemoryTypes[:], memoryType)
}

// ValidAssetType returns true if assetType is image or video
func ValidAssetType(assetType string) bool {
	return assetType == AssetTypeImage || assetType == AssetTypeVideo
}

// AssetBearingType returns true for memory types whose content lives in the asset table
func AssetBearingType(memoryType string) bool {
	return memoryType == MemoryTypeImage || memoryType == MemoryTypeVideo || memoryType == MemoryTypeGallery
}

// ThumbnailableMimeType returns true if an upload of this content type gets a thumbnail
func ThumbnailableMimeType(mimeType string) bool {
	return slices.Contains(ThumbnailMimeTypes[:], mimeType)
}
