package blit

import (
	"bytes"
	"math"
	"testing"
)

func assertColorClose(t *testing.T, name string, got, want Color, tol int) {
	t.Helper()
	diff := func(a, b uint8) int {
		d := int(a) - int(b)
		if d < 0 {
			d = -d
		}
		return d
	}
	if diff(got.R, want.R) > tol || diff(got.G, want.G) > tol ||
		diff(got.B, want.B) > tol || diff(got.A, want.A) > tol {
		t.Errorf("%s = %v, want %v (±%d)", name, got, want, tol)
	}
}

// spritePixel reads one pixel of a sprite's display bitmap.
func spritePixel(w *World, id SpriteID, x, y int) Color {
	i := int(id)
	di := (y*w.sprites.dispW[i] + x) * 4
	d := w.sprites.display[i]
	return Color{d[di], d[di+1], d[di+2], d[di+3]}
}

func TestCreateSpriteSequentialIDs(t *testing.T) {
	w := NewWorld(100, 100)
	for want := 0; want < 3; want++ {
		id := w.CreateRectSprite(4, 4, Color{255, 0, 0, 255})
		if id != SpriteID(want) {
			t.Fatalf("sprite id = %d, want %d", id, want)
		}
	}
}

func TestCreateSpriteBadLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("CreateSprite with short data should panic")
		}
	}()
	w := NewWorld(100, 100)
	w.CreateSprite(make([]byte, 10), 4, 4)
}

func TestRemoveSpriteSoftDelete(t *testing.T) {
	w := NewWorld(100, 100)
	a := w.CreateRectSprite(4, 4, Color{255, 0, 0, 255})
	w.RemoveSprite(a)

	if w.SpriteActive(a) {
		t.Error("removed sprite still active")
	}
	if _, _, ok := w.SpritePosition(a); ok {
		t.Error("position of removed sprite should be absent")
	}
	if _, ok := w.SpriteZIndex(a); ok {
		t.Error("z-index of removed sprite should be absent")
	}

	// Mutators on a removed sprite are silent no-ops.
	w.SetSpritePosition(a, 5, 5)
	w.RotateSprite(a, 1)

	// The slot is never reused.
	b := w.CreateRectSprite(4, 4, Color{0, 255, 0, 255})
	if b != a+1 {
		t.Errorf("id after removal = %d, want %d", b, a+1)
	}
}

func TestScaleBake(t *testing.T) {
	w := NewWorld(100, 100)
	id := w.CreateRectSprite(10, 10, Color{255, 0, 0, 255})

	w.SetSpriteScale(id, 2, 2)
	dw, dh, _ := w.SpriteSize(id)
	if dw != 20 || dh != 20 {
		t.Fatalf("scaled size = %dx%d, want 20x20", dw, dh)
	}
	assertColorClose(t, "scaled center", spritePixel(w, id, 10, 10), Color{255, 0, 0, 255}, 1)

	w.SetSpriteScale(id, 0.5, 0.5)
	dw, dh, _ = w.SpriteSize(id)
	if dw != 5 || dh != 5 {
		t.Errorf("downscaled size = %dx%d, want 5x5", dw, dh)
	}
}

func TestScaleBakeNearZeroIsNoop(t *testing.T) {
	w := NewWorld(100, 100)
	id := w.CreateRectSprite(10, 10, Color{255, 0, 0, 255})

	w.SetSpriteScale(id, 0.0001, 1)
	dw, dh, _ := w.SpriteSize(id)
	if dw != 10 || dh != 10 {
		t.Errorf("size after degenerate scale = %dx%d, want unchanged 10x10", dw, dh)
	}
	// The factor itself is still recorded.
	sx, _, _ := w.SpriteScale(id)
	assertNear(t, "recorded scale", sx, 0.0001)
}

func TestRotationBakeBoundingBox(t *testing.T) {
	w := NewWorld(100, 100)
	id := w.CreateRectSprite(10, 10, Color{255, 0, 0, 255})

	// 45 degrees: bbox = ceil(10*cos + 10*sin) = ceil(14.14...) = 15.
	w.SetSpriteRotation(id, math.Pi/4)
	dw, dh, _ := w.SpriteSize(id)
	if dw != 15 || dh != 15 {
		t.Fatalf("rotated size = %dx%d, want 15x15", dw, dh)
	}

	// The rotated square's corners fall outside its footprint.
	assertColor(t, "rotated corner", spritePixel(w, id, 0, 0), Color{0, 0, 0, 0})
	assertColorClose(t, "rotated center", spritePixel(w, id, 7, 7), Color{255, 0, 0, 255}, 1)
}

func TestRotationAccumulates(t *testing.T) {
	w := NewWorld(100, 100)
	id := w.CreateRectSprite(10, 10, Color{255, 0, 0, 255})

	w.RotateSprite(id, 1.0)
	w.RotateSprite(id, 1.5)
	rot, ok := w.SpriteRotation(id)
	if !ok {
		t.Fatal("rotation absent")
	}
	assertNear(t, "accumulated rotation", rot, 2.5)

	// Negative angles wrap into [0, 2π).
	w2 := NewWorld(100, 100)
	id2 := w2.CreateRectSprite(10, 10, Color{255, 0, 0, 255})
	w2.RotateSprite(id2, -1.0)
	rot, _ = w2.SpriteRotation(id2)
	assertNear(t, "wrapped rotation", rot, 2*math.Pi-1)
}

func TestCombinedBake(t *testing.T) {
	w := NewWorld(100, 100)
	id := w.CreateRectSprite(10, 10, Color{255, 0, 0, 255})

	// Scale to 20x20 first, then rotate 45 degrees: ceil(20*2*cos45) = 29.
	w.SetSpriteTransform(id, math.Pi/4, 2, 2)
	dw, dh, _ := w.SpriteSize(id)
	if dw != 29 || dh != 29 {
		t.Fatalf("combined size = %dx%d, want 29x29", dw, dh)
	}
	assertColor(t, "combined corner", spritePixel(w, id, 0, 0), Color{0, 0, 0, 0})
	assertColorClose(t, "combined center", spritePixel(w, id, 14, 14), Color{255, 0, 0, 255}, 1)
}

func TestResetSprite(t *testing.T) {
	w := NewWorld(100, 100)
	id := w.CreateRectSprite(10, 10, Color{255, 0, 0, 255})
	original := append([]byte(nil), w.sprites.display[id]...)

	w.SetSpriteTransform(id, 1.0, 3, 0.5)
	w.ResetSprite(id)

	dw, dh, _ := w.SpriteSize(id)
	if dw != 10 || dh != 10 {
		t.Fatalf("size after reset = %dx%d, want 10x10", dw, dh)
	}
	if !bytes.Equal(w.sprites.display[id], original) {
		t.Error("display bitmap after reset differs from the original")
	}
	rot, _ := w.SpriteRotation(id)
	assertNear(t, "rotation after reset", rot, 0)
	sx, sy, _ := w.SpriteScale(id)
	assertNear(t, "scaleX after reset", sx, 1)
	assertNear(t, "scaleY after reset", sy, 1)
}

func TestRepeatedBakesResampleOriginal(t *testing.T) {
	w := NewWorld(100, 100)
	id := w.CreateRectSprite(16, 16, Color{0, 200, 100, 255})

	// Many small rotations followed by a return to zero must reproduce the
	// original exactly: bakes always resample the immutable original.
	for i := 0; i < 8; i++ {
		w.RotateSprite(id, 0.3)
	}
	w.SetSpriteRotation(id, 0)

	dw, dh, _ := w.SpriteSize(id)
	if dw != 16 || dh != 16 {
		t.Fatalf("size after returning to zero rotation = %dx%d, want 16x16", dw, dh)
	}
	assertColor(t, "pixel after zero rotation", spritePixel(w, id, 8, 8), Color{0, 200, 100, 255})
}
