package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type storedObject struct {
	body []byte
	meta ObjectMeta
}

// memoryBlobStore keeps objects in a map. putErr and getErr force failures.
type memoryBlobStore struct {
	mu      sync.Mutex
	objects map[string]storedObject
	putErr  error
	getErr  error
	puts    int
}

func newMemoryBlobStore() *memoryBlobStore {
	return &memoryBlobStore{objects: map[string]storedObject{}}
}

func (m *memoryBlobStore) Put(_ context.Context, key string, body []byte, meta ObjectMeta) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	if m.putErr != nil {
		return m.putErr
	}
	m.objects[key] = storedObject{body: append([]byte(nil), body...), meta: meta}
	return nil
}

func (m *memoryBlobStore) Get(_ context.Context, key string) (*Object, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	obj, ok := m.objects[key]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return &Object{
		Body:         io.NopCloser(bytes.NewReader(obj.body)),
		ContentType:  obj.meta.ContentType,
		CacheControl: obj.meta.CacheControl,
		ETag:         `"etag-` + key + `"`,
		Size:         int64(len(obj.body)),
	}, nil
}

func (m *memoryBlobStore) keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	return keys
}

type failingThumbnailer struct{}

func (failingThumbnailer) Thumbnail([]byte) ([]byte, error) {
	return nil, errors.New("decoder exploded")
}

func testImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return img
}

func jpegFixture(t *testing.T, width, height int) []byte {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, testImage(width, height), &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func pngFixture(t *testing.T, width, height int) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(width, height)))
	return buf.Bytes()
}
