package blit

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// WritePNG writes a scene's current pixel buffer to path as a PNG. The
// buffer holds straight-alpha RGBA, which is exactly image.NRGBA's layout,
// so no conversion pass is needed. Call Render first; WritePNG does not
// render.
func (w *World) WritePNG(scene SceneID, path string) error {
	si := int(scene)
	if !w.scenes.alive(si) {
		return fmt.Errorf("blit: screenshot: scene %d does not exist", scene)
	}

	img := image.NewNRGBA(image.Rect(0, 0, w.scenes.width[si], w.scenes.height[si]))
	copy(img.Pix, w.scenes.buf[si])

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("blit: screenshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("blit: screenshot: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("blit: screenshot: close %s: %w", path, err)
	}
	return nil
}

// Screenshot writes the default scene to dir with a timestamped filename
// derived from label, creating dir if needed. Returns the written path.
func (w *World) Screenshot(dir, label string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("blit: screenshot: mkdir %s: %w", dir, err)
	}
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, label)
	name := fmt.Sprintf("%s_%s.png", safe, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := w.WritePNG(DefaultScene, path); err != nil {
		return "", err
	}
	return path, nil
}
