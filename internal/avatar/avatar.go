package avatar

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	stddraw "image/draw"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	xwebp "golang.org/x/image/webp"

	"github.com/BruksfildServices01/beleza-studio/internal/httperr"
	"github.com/BruksfildServices01/beleza-studio/internal/infra/storage"
)

const (
	Size      = 200
	Quality   = 85
	MaxUpload = 5 << 20
	keyPrefix = "beleza_studio_avatars/"
)

var (
	ErrInvalidImage = httperr.ErrBusiness("invalid_image")
	ErrTooLarge     = httperr.ErrPayloadTooLarge("image_too_large")
	ErrNotFound     = httperr.ErrNotFound("avatar_not_found")
)

func decode(raw []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err == nil {
		return img, nil
	}
	if decoded, webpErr := xwebp.Decode(bytes.NewReader(raw)); webpErr == nil {
		return decoded, nil
	}
	return nil, err
}

// Process recorta o centro em quadrado, reduz para Size x Size e
// devolve WebP.
func Process(raw []byte) ([]byte, error) {
	if len(raw) > MaxUpload {
		return nil, ErrTooLarge
	}

	src, err := decode(raw)
	if err != nil {
		return nil, ErrInvalidImage
	}

	b := src.Bounds()
	side := b.Dx()
	if b.Dy() < side {
		side = b.Dy()
	}
	if side == 0 {
		return nil, ErrInvalidImage
	}
	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2

	square := image.NewNRGBA(image.Rect(0, 0, side, side))
	stddraw.Draw(square, square.Bounds(), src, image.Pt(x0, y0), stddraw.Src)

	dst := image.NewNRGBA(image.Rect(0, 0, Size, Size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), square, square.Bounds(), xdraw.Over, nil)

	var out bytes.Buffer
	if err := webp.Encode(&out, dst, &webp.Options{Quality: Quality}); err != nil {
		return nil, fmt.Errorf("avatar: encode webp: %w", err)
	}
	return out.Bytes(), nil
}

// Store guarda os avatares já processados no mesmo backing dos blobs.
type Store struct {
	backing storage.Backing
}

func NewStore(b storage.Backing) *Store {
	return &Store{backing: b}
}

func Key(specialistID string) string {
	return keyPrefix + strings.ReplaceAll(specialistID, "/", "_") + ".webp"
}

// URL é o caminho público servido pela API.
func URL(specialistID string) string {
	return "/api/public/avatars/" + specialistID
}

func (s *Store) Save(ctx context.Context, specialistID string, raw []byte) (string, error) {
	img, err := Process(raw)
	if err != nil {
		return "", err
	}
	if err := s.backing.Put(ctx, Key(specialistID), img); err != nil {
		return "", err
	}
	return URL(specialistID), nil
}

func (s *Store) Load(ctx context.Context, specialistID string) ([]byte, error) {
	b, err := s.backing.Get(ctx, Key(specialistID))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	return b, err
}
