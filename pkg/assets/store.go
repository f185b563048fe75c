package assets

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/memories-timeline/memories-backend/pkg/config"
	ce "github.com/memories-timeline/memories-backend/pkg/errors"
	"github.com/memories-timeline/memories-backend/pkg/instrumentation"
	"github.com/rs/zerolog"
)

type UploadRequest struct {
	Data        []byte
	FileName    string
	ContentType string
}

type UploadResult struct {
	Key          string
	ThumbnailKey *string
}

//go:generate mockery --name AssetStore --filename store_mock.go --inpackage
type AssetStore interface {
	Upload(ctx context.Context, req UploadRequest) (UploadResult, error)
	Fetch(ctx context.Context, key string) (*Object, error)
}

type Store struct {
	blobs        BlobStore
	thumbnailer  Thumbnailer
	maxBytes     int64
	cacheControl string
	metrics      *instrumentation.Metrics
}

func NewStore(blobs BlobStore, thumbnailer Thumbnailer, cfg config.Assets, metrics *instrumentation.Metrics) *Store {
	maxBytes := cfg.MaxUploadBytes()
	if maxBytes <= 0 {
		maxBytes = int64(config.DefaultMaxUploadMB) * 1024 * 1024
	}
	cacheControl := cfg.CacheControl
	if cacheControl == "" {
		cacheControl = config.DefaultCacheControl
	}
	return &Store{
		blobs:        blobs,
		thumbnailer:  thumbnailer,
		maxBytes:     maxBytes,
		cacheControl: cacheControl,
		metrics:      metrics,
	}
}

// Upload stores the original file and, for raster images, a JPEG thumbnail.
// A thumbnail that cannot be produced or stored leaves ThumbnailKey nil.
func (s *Store) Upload(ctx context.Context, req UploadRequest) (UploadResult, error) {
	if int64(len(req.Data)) > s.maxBytes {
		return UploadResult{}, &ce.DaoError{
			Message:  fmt.Sprintf("File exceeds %d MB limit", s.maxBytes/(1024*1024)),
			TooLarge: true,
		}
	}
	if len(req.Data) == 0 {
		return UploadResult{}, ce.NewValidationError("File is empty")
	}

	base, ext := SanitizeFileName(req.FileName)
	key := fmt.Sprintf("%s-%s%s", uuid.NewString(), base, ext)
	contentType := normalizeContentType(req.ContentType)

	err := s.blobs.Put(ctx, key, req.Data, ObjectMeta{ContentType: contentType, CacheControl: s.cacheControl})
	if err != nil {
		return UploadResult{}, storageError("Failed to store asset", err)
	}
	zerolog.Ctx(ctx).Debug().Str("key", key).Int("size", len(req.Data)).Msg("Uploaded original")

	result := UploadResult{Key: key}
	if config.ThumbnailableMimeType(contentType) && s.thumbnailer != nil {
		thumbKey, err := s.storeThumbnail(ctx, base, req.Data)
		if err != nil {
			s.metrics.RecordThumbnailFailure()
			zerolog.Ctx(ctx).Error().Err(err).Str("key", key).Msg("Could not generate thumbnail")
		} else {
			result.ThumbnailKey = &thumbKey
		}
	}
	s.metrics.RecordAssetUploaded(result.ThumbnailKey != nil)
	return result, nil
}

func (s *Store) storeThumbnail(ctx context.Context, base string, original []byte) (string, error) {
	thumbnail, err := s.thumbnailer.Thumbnail(original)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s%s-%s%s", config.ThumbnailKeyPrefix, uuid.NewString(), base, config.ThumbnailExtension)
	err = s.blobs.Put(ctx, key, thumbnail, ObjectMeta{ContentType: config.MimeTypeJPEG, CacheControl: s.cacheControl})
	if err != nil {
		return "", err
	}
	return key, nil
}

// Fetch returns the stored object. The caller closes Body.
func (s *Store) Fetch(ctx context.Context, key string) (*Object, error) {
	if key == "" {
		return nil, ce.NewNotFoundError("Asset not found")
	}
	obj, err := s.blobs.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return nil, &ce.DaoError{Message: "Asset not found", NotFound: true, Err: err}
		}
		return nil, storageError("Failed to fetch asset", err)
	}
	return obj, nil
}

func storageError(message string, err error) error {
	return &ce.DaoError{Message: message, Err: err, Upstream: true}
}

var (
	unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9.]+`)
	fileExtension   = regexp.MustCompile(`\.[^.]+$`)
)

// SanitizeFileName splits a client supplied name into a key safe base and extension.
// Runs of characters other than ASCII letters, digits and dots collapse to "-".
func SanitizeFileName(name string) (string, string) {
	base := fileExtension.ReplaceAllString(unsafeFileChars.ReplaceAllString(name, "-"), "")
	ext := ""
	if i := strings.LastIndex(name, "."); i >= 0 {
		ext = unsafeFileChars.ReplaceAllString(name[i:], "-")
	}
	return base, ext
}

func normalizeContentType(contentType string) string {
	if contentType == "" {
		return config.DefaultContentType
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return config.DefaultContentType
	}
	return mediaType
}
