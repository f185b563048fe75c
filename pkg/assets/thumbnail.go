package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"github.com/memories-timeline/memories-backend/pkg/config"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

type Thumbnailer interface {
	Thumbnail(original []byte) ([]byte, error)
}

// ImageThumbnailer produces JPEG previews at most Width pixels wide. Images that are
// already narrower keep their size and are only re-encoded.
type ImageThumbnailer struct {
	Width   int
	Quality int
}

func NewImageThumbnailer(cfg config.Assets) ImageThumbnailer {
	return ImageThumbnailer{Width: cfg.ThumbnailWidth, Quality: cfg.ThumbnailQuality}
}

func (t ImageThumbnailer) Thumbnail(original []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(original))
	if err != nil {
		return nil, fmt.Errorf("could not decode image: %w", err)
	}
	bounds := src.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, errors.New("image has no pixels")
	}

	width, height := t.targetSize(bounds.Dx(), bounds.Dy())
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	// JPEG has no alpha channel, transparent areas become white
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	if width == bounds.Dx() {
		draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Over)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	}

	quality := t.Quality
	if quality <= 0 || quality > 100 {
		quality = config.DefaultThumbnailQuality
	}
	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("could not encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

func (t ImageThumbnailer) targetSize(width, height int) (int, int) {
	maxWidth := t.Width
	if maxWidth <= 0 {
		maxWidth = config.DefaultThumbnailWidth
	}
	if width <= maxWidth {
		return width, height
	}
	scaled := int(float64(height) * float64(maxWidth) / float64(width))
	if scaled < 1 {
		scaled = 1
	}
	return maxWidth, scaled
}
