package blit

// Color is an RGBA color with 8-bit components. Alpha is straight
// (non-premultiplied); premultiplication happens only at display upload time.
type Color struct {
	R, G, B, A uint8
}

// ColorBlack is the default scene background.
var ColorBlack = Color{0, 0, 0, 255}

// ColorTransparent is fully transparent black, the value written where a bake
// samples outside the source bitmap.
var ColorTransparent = Color{0, 0, 0, 0}

// SpriteID identifies a sprite within a World. IDs are assigned sequentially
// starting at 0 and are never reused, even after the sprite is removed.
type SpriteID uint32

// SceneID identifies a scene within a World. The default scene created by
// NewWorld is always DefaultScene.
type SceneID uint32

// DefaultScene is the ID of the scene created by NewWorld.
const DefaultScene SceneID = 0

// SamplingMethod selects the pixel-reconstruction algorithm a scene uses when
// compositing sprites each frame. Bakes always use bilinear regardless of
// this setting.
type SamplingMethod uint8

const (
	SamplingNearest       SamplingMethod = iota // round to the nearest source pixel (fast, aliased)
	SamplingBilinear                            // 4-tap weighted average (smooth, slight blur)
	SamplingSupersampling                       // 2x2 nearest sub-samples averaged (best quality)
)

// SamplingFromCode maps a numeric method code to a SamplingMethod.
// Unknown codes fall back to SamplingNearest.
func SamplingFromCode(code uint8) SamplingMethod {
	switch code {
	case 1:
		return SamplingBilinear
	case 2:
		return SamplingSupersampling
	default:
		return SamplingNearest
	}
}

// Code returns the numeric code for the sampling method.
func (m SamplingMethod) Code() uint8 {
	return uint8(m)
}
