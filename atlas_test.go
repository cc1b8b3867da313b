package blit

import (
	"image"
	"image/color"
	"testing"
)

// testSheetImage builds a 4x2 image: the left 2x2 solid red, the right 2x2
// solid green.
func testSheetImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			c := color.NRGBA{R: 255, A: 255}
			if x >= 2 {
				c = color.NRGBA{G: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

const testSheetJSON = `{
	"frames": {
		"hero": {"frame": {"x": 0, "y": 0, "w": 2, "h": 2}},
		"slime": {"frame": {"x": 2, "y": 0, "w": 2, "h": 2}}
	}
}`

func TestLoadSheet(t *testing.T) {
	w := NewWorld(20, 20)
	ids, err := w.LoadSheet([]byte(testSheetJSON), testSheetImage())
	if err != nil {
		t.Fatalf("LoadSheet: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("LoadSheet created %d sprites, want 2", len(ids))
	}

	for name, want := range map[string]Color{
		"hero":  {255, 0, 0, 255},
		"slime": {0, 255, 0, 255},
	} {
		id, ok := ids[name]
		if !ok {
			t.Fatalf("frame %q missing from result", name)
		}
		dw, dh, _ := w.SpriteSize(id)
		if dw != 2 || dh != 2 {
			t.Errorf("%s size = %dx%d, want 2x2", name, dw, dh)
		}
		assertColor(t, name+" pixel", spritePixel(w, id, 0, 0), want)
	}
}

func TestLoadSheetBadJSON(t *testing.T) {
	w := NewWorld(20, 20)
	if _, err := w.LoadSheet([]byte("{not json"), testSheetImage()); err == nil {
		t.Error("malformed JSON should be an error")
	}
	if _, err := w.LoadSheet([]byte(`{"frames": {}}`), testSheetImage()); err == nil {
		t.Error("empty frames should be an error")
	}
}

func TestLoadSheetFrameOutOfBounds(t *testing.T) {
	w := NewWorld(20, 20)
	bad := `{"frames": {"x": {"frame": {"x": 3, "y": 0, "w": 2, "h": 2}}}}`
	if _, err := w.LoadSheet([]byte(bad), testSheetImage()); err == nil {
		t.Error("out-of-bounds frame should be an error")
	}
}

func TestCreateSpriteFromImage(t *testing.T) {
	w := NewWorld(20, 20)
	id := w.CreateSpriteFromImage(testSheetImage())
	dw, dh, _ := w.SpriteSize(id)
	if dw != 4 || dh != 2 {
		t.Fatalf("sprite size = %dx%d, want 4x2", dw, dh)
	}
	assertColor(t, "left pixel", spritePixel(w, id, 0, 0), Color{255, 0, 0, 255})
	assertColor(t, "right pixel", spritePixel(w, id, 3, 1), Color{0, 255, 0, 255})
}
