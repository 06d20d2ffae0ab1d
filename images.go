package minsite

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

const (
	thumbWidth   = 480
	thumbQuality = 80
	thumbSuffix  = "-thumb.jpg"
)

// GenerateThumbnails walks the product image directory under staticDir and
// writes a card-size JPEG derivative next to each source image. Existing
// derivatives are regenerated. Run at build time (`minsite thumbnails`), not
// per request.
func GenerateThumbnails(staticDir string, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	dir := filepath.Join(staticDir, "images", "products")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read image dir: %w", err)
	}

	var generated int
	for _, entry := range entries {
		if entry.IsDir() || strings.HasSuffix(entry.Name(), thumbSuffix) {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".jpg", ".jpeg", ".png", ".gif":
		default:
			continue
		}
		src := filepath.Join(dir, entry.Name())
		dst := thumbPath(src)
		if err := writeThumbnail(src, dst); err != nil {
			log.Warn("thumbnail failed", zap.String("image", entry.Name()), zap.Error(err))
			continue
		}
		generated++
	}
	log.Info("thumbnails generated", zap.Int("count", generated), zap.String("dir", dir))
	return nil
}

func thumbPath(src string) string {
	base := strings.TrimSuffix(src, filepath.Ext(src))
	return base + thumbSuffix
}

// writeThumbnail decodes src, scales it down to thumbWidth if wider, and
// encodes it as JPEG at dst. Images already narrower are re-encoded as-is.
func writeThumbnail(src, dst string) error {
	raw, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > thumbWidth {
		newH := h * thumbWidth / w
		scaled := image.NewRGBA(image.Rect(0, 0, thumbWidth, newH))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)
		img = scaled
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}
	return os.WriteFile(dst, buf.Bytes(), 0o644)
}
