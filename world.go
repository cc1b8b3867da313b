package blit

import "fmt"

// World owns one sprite store and one scene store and is the single entry
// point for the package. All calls are expected to come from one goroutine;
// there is no internal locking. Mutations take effect immediately and are
// visible to the next Render call.
//
// Mutators addressed at an unknown or removed ID are silent no-ops;
// accessors return ok=false. The only hard failure is a malformed bitmap at
// sprite creation, which is a programmer error and panics.
type World struct {
	sprites spriteStore
	scenes  sceneStore
}

// NewWorld creates a World with a default scene of the given dimensions.
// The default scene's ID is DefaultScene.
func NewWorld(width, height int) *World {
	w := &World{}
	w.scenes.add(width, height)
	return w
}

// --- Sprite lifecycle ---

// CreateSprite creates a sprite from raw RGBA bytes and returns its ID.
// IDs are sequential from 0 and never reused. The data is copied.
// Panics if len(data) != width*height*4.
func (w *World) CreateSprite(data []byte, width, height int) SpriteID {
	expected := width * height * 4
	if len(data) != expected {
		panic(fmt.Sprintf("blit: sprite data length %d, want %d (%dx%dx4)",
			len(data), expected, width, height))
	}
	id := SpriteID(w.sprites.add(data, width, height))
	if globalDebug {
		debugCheckSprite(w, id)
	}
	return id
}

// CreateRectSprite creates a width x height sprite filled with a solid color.
func (w *World) CreateRectSprite(width, height int, c Color) SpriteID {
	data := make([]byte, width*height*4)
	for i := 0; i < len(data); i += 4 {
		data[i] = c.R
		data[i+1] = c.G
		data[i+2] = c.B
		data[i+3] = c.A
	}
	return w.CreateSprite(data, width, height)
}

// RemoveSprite soft-deletes a sprite: its active flag is cleared, it is
// purged from every scene's member list, and its ID is never reused. The
// backing arrays are not compacted.
func (w *World) RemoveSprite(id SpriteID) {
	i := int(id)
	if !w.sprites.alive(i) {
		return
	}
	w.sprites.active[i] = false
	for si := range w.scenes.active {
		if w.scenes.active[si] {
			w.scenes.detach(si, id)
		}
	}
}

// SpriteActive reports whether id names an existing sprite.
func (w *World) SpriteActive(id SpriteID) bool {
	return w.sprites.alive(int(id))
}

// --- Sprite position and stacking ---

// SetSpritePosition places the sprite's geometric center at (x, y) in scene
// coordinates. The scene origin is the center of the pixel buffer.
func (w *World) SetSpritePosition(id SpriteID, x, y float32) {
	i := int(id)
	if !w.sprites.alive(i) {
		return
	}
	w.sprites.posX[i] = x
	w.sprites.posY[i] = y
}

// TranslateSprite moves the sprite by (dx, dy).
func (w *World) TranslateSprite(id SpriteID, dx, dy float32) {
	i := int(id)
	if !w.sprites.alive(i) {
		return
	}
	w.sprites.posX[i] += dx
	w.sprites.posY[i] += dy
}

// SpritePosition returns the sprite's center position.
func (w *World) SpritePosition(id SpriteID) (x, y float32, ok bool) {
	i := int(id)
	if !w.sprites.alive(i) {
		return 0, 0, false
	}
	return w.sprites.posX[i], w.sprites.posY[i], true
}

// SetSpriteZIndex sets the sprite's stacking order. Lower values render
// first (underneath). Marks the sort cache dirty on every scene the sprite
// belongs to.
func (w *World) SetSpriteZIndex(id SpriteID, z int) {
	i := int(id)
	if !w.sprites.alive(i) || w.sprites.zIdx[i] == z {
		return
	}
	w.sprites.zIdx[i] = z
	for si := range w.scenes.active {
		if w.scenes.active[si] && w.scenes.contains(si, id) {
			w.scenes.sortDirty[si] = true
		}
	}
}

// SpriteZIndex returns the sprite's stacking order.
func (w *World) SpriteZIndex(id SpriteID) (int, bool) {
	i := int(id)
	if !w.sprites.alive(i) {
		return 0, false
	}
	return w.sprites.zIdx[i], true
}

// SpriteSize returns the sprite's current display dimensions, reflecting any
// baked rotation or scale.
func (w *World) SpriteSize(id SpriteID) (width, height int, ok bool) {
	i := int(id)
	if !w.sprites.alive(i) {
		return 0, 0, false
	}
	return w.sprites.dispW[i], w.sprites.dispH[i], true
}

// --- Sprite transforms ---

// RotateSprite adds angle radians (counter-clockwise positive) to the
// sprite's rotation and rebakes its display bitmap from the original.
func (w *World) RotateSprite(id SpriteID, angle float32) {
	i := int(id)
	if !w.sprites.alive(i) {
		return
	}
	w.sprites.rotation[i] = normalizeAngle(w.sprites.rotation[i] + angle)
	w.sprites.rebake(i)
}

// SetSpriteRotation sets the sprite's absolute rotation and rebakes.
func (w *World) SetSpriteRotation(id SpriteID, angle float32) {
	i := int(id)
	if !w.sprites.alive(i) {
		return
	}
	w.sprites.rotation[i] = normalizeAngle(angle)
	w.sprites.rebake(i)
}

// SpriteRotation returns the sprite's accumulated rotation in [0, 2π).
func (w *World) SpriteRotation(id SpriteID) (float32, bool) {
	i := int(id)
	if !w.sprites.alive(i) {
		return 0, false
	}
	return w.sprites.rotation[i], true
}

// ScaleSprite multiplies the sprite's scale factors by (sx, sy) and rebakes.
// A rebake whose resulting factors are near zero leaves the display bitmap
// unchanged, though the factors themselves are recorded.
func (w *World) ScaleSprite(id SpriteID, sx, sy float32) {
	i := int(id)
	if !w.sprites.alive(i) {
		return
	}
	w.sprites.scaleX[i] *= sx
	w.sprites.scaleY[i] *= sy
	w.sprites.rebake(i)
}

// SetSpriteScale sets the sprite's absolute scale factors and rebakes.
func (w *World) SetSpriteScale(id SpriteID, sx, sy float32) {
	i := int(id)
	if !w.sprites.alive(i) {
		return
	}
	w.sprites.scaleX[i] = sx
	w.sprites.scaleY[i] = sy
	w.sprites.rebake(i)
}

// SpriteScale returns the sprite's accumulated scale factors.
func (w *World) SpriteScale(id SpriteID) (sx, sy float32, ok bool) {
	i := int(id)
	if !w.sprites.alive(i) {
		return 0, 0, false
	}
	return w.sprites.scaleX[i], w.sprites.scaleY[i], true
}

// SetSpriteTransform sets rotation and scale together and rebakes once.
func (w *World) SetSpriteTransform(id SpriteID, angle, sx, sy float32) {
	i := int(id)
	if !w.sprites.alive(i) {
		return
	}
	w.sprites.rotation[i] = normalizeAngle(angle)
	w.sprites.scaleX[i] = sx
	w.sprites.scaleY[i] = sy
	w.sprites.rebake(i)
}

// ResetSprite restores the sprite's display bitmap to its original and
// clears the accumulated rotation and scale.
func (w *World) ResetSprite(id SpriteID) {
	i := int(id)
	if !w.sprites.alive(i) {
		return
	}
	w.sprites.rotation[i] = 0
	w.sprites.scaleX[i] = 1
	w.sprites.scaleY[i] = 1
	w.sprites.reset(i)
}

// --- Scene lifecycle ---

// CreateScene creates an additional render target with its own dimensions
// and returns its ID. Scene IDs are sequential and never reused.
func (w *World) CreateScene(width, height int) SceneID {
	return SceneID(w.scenes.add(width, height))
}

// RemoveScene soft-deletes a scene. The default scene cannot be removed.
func (w *World) RemoveScene(id SceneID) {
	if id == DefaultScene {
		return
	}
	i := int(id)
	if !w.scenes.alive(i) {
		return
	}
	w.scenes.active[i] = false
}

// SceneActive reports whether id names an existing scene.
func (w *World) SceneActive(id SceneID) bool {
	return w.scenes.alive(int(id))
}

// --- Scene mutation ---

// AttachSprite adds a sprite to a scene's member list. Duplicates are
// ignored; insertion order is preserved and breaks z-index ties.
func (w *World) AttachSprite(scene SceneID, id SpriteID) {
	si := int(scene)
	if !w.scenes.alive(si) || !w.sprites.alive(int(id)) {
		return
	}
	w.scenes.attach(si, id)
	if globalDebug {
		debugCheckScene(w, scene)
	}
}

// DetachSprite removes a sprite from a scene's member list.
func (w *World) DetachSprite(scene SceneID, id SpriteID) {
	si := int(scene)
	if !w.scenes.alive(si) {
		return
	}
	w.scenes.detach(si, id)
}

// SetBackground sets a scene's background color. Takes effect on the next
// render via the cached background row.
func (w *World) SetBackground(scene SceneID, c Color) {
	si := int(scene)
	if !w.scenes.alive(si) {
		return
	}
	w.scenes.background[si] = c
	w.scenes.bgDirty[si] = true
}

// SetSampling selects the sampling method a scene uses when compositing.
func (w *World) SetSampling(scene SceneID, m SamplingMethod) {
	si := int(scene)
	if !w.scenes.alive(si) {
		return
	}
	w.scenes.sampling[si] = m
}

// ResizeScene reallocates a scene's pixel buffer to the new dimensions. The
// buffer starts zero-filled; sprites are not rebaked.
func (w *World) ResizeScene(scene SceneID, width, height int) {
	si := int(scene)
	if !w.scenes.alive(si) {
		return
	}
	w.scenes.resize(si, width, height)
}

// SceneSize returns a scene's dimensions.
func (w *World) SceneSize(scene SceneID) (width, height int, ok bool) {
	si := int(scene)
	if !w.scenes.alive(si) {
		return 0, 0, false
	}
	return w.scenes.width[si], w.scenes.height[si], true
}

// --- Frame access ---

// Frame returns the default scene's pixel buffer: raw RGBA bytes, row-major,
// top-left origin. The slice aliases the live buffer; the next Render
// mutates it in place.
func (w *World) Frame() []byte {
	return w.scenes.buf[DefaultScene]
}

// ScenePixels returns a scene's pixel buffer, with the same aliasing
// caveat as Frame.
func (w *World) ScenePixels(scene SceneID) ([]byte, bool) {
	si := int(scene)
	if !w.scenes.alive(si) {
		return nil, false
	}
	return w.scenes.buf[si], true
}
