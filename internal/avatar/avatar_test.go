package avatar

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xwebp "golang.org/x/image/webp"

	"github.com/BruksfildServices01/beleza-studio/internal/infra/storage"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcess_SquareWebP(t *testing.T) {
	out, err := Process(pngBytes(t, 320, 180))
	require.NoError(t, err)

	img, err := xwebp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, Size, img.Bounds().Dx())
	assert.Equal(t, Size, img.Bounds().Dy())
}

func TestProcess_RejectsGarbage(t *testing.T) {
	_, err := Process([]byte("not an image"))
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, err = Process(make([]byte, MaxUpload+1))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	s := NewStore(storage.NewMemory())

	url, err := s.Save(ctx, "ana", pngBytes(t, 64, 64))
	require.NoError(t, err)
	assert.Equal(t, "/api/public/avatars/ana", url)

	b, err := s.Load(ctx, "ana")
	require.NoError(t, err)
	assert.NotEmpty(t, b)

	_, err = s.Load(ctx, "marina")
	assert.ErrorIs(t, err, ErrNotFound)
}
