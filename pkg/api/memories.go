package api

import "time"

type AssetRequest struct {
	AssetKey     string  `json:"asset_key"`     // Key of the uploaded original
	ThumbnailKey *string `json:"thumbnail_key"` // Key of the generated thumbnail, if any
	AssetType    string  `json:"asset_type"`    // image or video
	SortOrder    *int    `json:"sort_order"`    // Display position, defaults to the index in the submitted list
}

type AssetResponse struct {
	UUID         string  `json:"id"`
	MemoryID     string  `json:"memory_id"`
	AssetKey     string  `json:"asset_key"`
	ThumbnailKey *string `json:"thumbnail_key"`
	AssetType    string  `json:"asset_type"`
	SortOrder    int     `json:"sort_order"`
}

type MemoryCreateRequest struct {
	Type       string         `json:"type"`        // quote, image, video, hybrid or gallery
	Content    *string        `json:"content"`     // Text body, only for quote and hybrid
	Assets     []AssetRequest `json:"assets"`      // Media, only for image, video and gallery
	Caption    *string        `json:"caption"`     // Optional caption
	Location   *string        `json:"location"`    // Optional place name
	MemoryDate string         `json:"memory_date"` // ISO-8601 timestamp of when the memory happened
	Tags       *string        `json:"tags"`        // Comma separated tags
}

// MemoryUpdateRequest is a partial update: only keys present in the body are applied.
// A present assets key replaces the whole asset set, even when it is empty.
type MemoryUpdateRequest struct {
	Type       Optional[string]         `json:"type"`
	Content    Optional[string]         `json:"content"`
	Caption    Optional[string]         `json:"caption"`
	Location   Optional[string]         `json:"location"`
	MemoryDate Optional[string]         `json:"memory_date"`
	Tags       Optional[string]         `json:"tags"`
	Assets     Optional[[]AssetRequest] `json:"assets"`
}

// Empty is true when none of the recognized keys were sent
func (r MemoryUpdateRequest) Empty() bool {
	return !r.Type.Set && !r.Content.Set && !r.Caption.Set && !r.Location.Set &&
		!r.MemoryDate.Set && !r.Tags.Set && !r.Assets.Set
}

type MemoryResponse struct {
	UUID       string          `json:"id"`
	UserID     string          `json:"user_id"`
	Type       string          `json:"type"`
	Content    *string         `json:"content"`
	Assets     []AssetResponse `json:"assets"`
	Caption    *string         `json:"caption"`
	Location   *string         `json:"location"`
	MemoryDate time.Time       `json:"memory_date"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	EditedBy   *string         `json:"edited_by"` // Last user to update the memory
	Tags       *string         `json:"tags"`      // Normalized comma separated tags
}

type MemoryEnvelope struct {
	Memory MemoryResponse `json:"memory"`
}

// Cursor identifies the last memory of a page, in (memory_date, id) order
type Cursor struct {
	Date time.Time `json:"date"`
	ID   string    `json:"id"`
}

type MemoryCollectionResponse struct {
	Memories   []MemoryResponse `json:"memories"`
	NextCursor *Cursor          `json:"nextCursor"` // Null when there are no more results
}

type MemoryFilters struct {
	Q          string // Substring searched in content, caption, location and tags
	Location   string // Substring of the location
	StartDate  string // Inclusive lower bound of memory_date
	EndDate    string // Inclusive upper bound of memory_date, a bare date covers the whole day
	Tags       string // Comma separated, every tag must be contained in the stored tags
	CursorDate string
	CursorID   string
}
