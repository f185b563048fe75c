package api

import "time"

type UploadResponse struct {
	Key          string  `json:"key"`                    // Key of the stored original
	ThumbnailKey *string `json:"thumbnailKey,omitempty"` // Key of the thumbnail, absent when none was generated
}

type MediaItem struct {
	AssetKey      string    `json:"asset_key"`
	ThumbnailKey  *string   `json:"thumbnail_key"`
	AssetType     string    `json:"asset_type"`
	MemoryDate    time.Time `json:"memory_date"`
	MemoryCaption *string   `json:"memory_caption"`
}

type MediaCollectionResponse struct {
	Media []MediaItem `json:"media"`
}
