package blit

import "math"

// minScaleFactor guards the scale bakes: factors below this magnitude would
// produce a degenerate bitmap and are treated as a no-op.
const minScaleFactor = 0.001

// spriteStore holds every sprite's attributes as parallel arrays indexed by
// SpriteID. A single flat structure-of-arrays is used instead of one object
// per sprite: the "pointer" handed to callers is the array index, removal
// only clears the active flag, and indices are never reused, so IDs stay
// valid for the World's lifetime.
type spriteStore struct {
	// original bitmap, immutable after creation
	original [][]byte
	origW    []int
	origH    []int

	// displayed bitmap, replaced wholesale by bakes
	display [][]byte
	dispW   []int
	dispH   []int

	posX []float32
	posY []float32
	zIdx []int

	// accumulated transform state, rebaked from the original on change
	rotation []float32
	scaleX   []float32
	scaleY   []float32

	active []bool
}

// add appends a sprite and returns its index. data is copied; the caller's
// slice is not retained.
func (s *spriteStore) add(data []byte, width, height int) int {
	original := make([]byte, len(data))
	copy(original, data)
	display := make([]byte, len(data))
	copy(display, data)

	s.original = append(s.original, original)
	s.origW = append(s.origW, width)
	s.origH = append(s.origH, height)
	s.display = append(s.display, display)
	s.dispW = append(s.dispW, width)
	s.dispH = append(s.dispH, height)
	s.posX = append(s.posX, 0)
	s.posY = append(s.posY, 0)
	s.zIdx = append(s.zIdx, 0)
	s.rotation = append(s.rotation, 0)
	s.scaleX = append(s.scaleX, 1)
	s.scaleY = append(s.scaleY, 1)
	s.active = append(s.active, true)
	return len(s.active) - 1
}

// alive reports whether index i names a currently existing sprite.
func (s *spriteStore) alive(i int) bool {
	return i >= 0 && i < len(s.active) && s.active[i]
}

// reset restores the display bitmap to a copy of the original, discarding
// any baked state.
func (s *spriteStore) reset(i int) {
	display := make([]byte, len(s.original[i]))
	copy(display, s.original[i])
	s.display[i] = display
	s.dispW[i] = s.origW[i]
	s.dispH[i] = s.origH[i]
}

// bakeRotation rasterizes the original bitmap rotated by angle radians
// (counter-clockwise positive) into a fresh display bitmap. The new bounding
// box is the smallest axis-aligned rectangle containing the rotated original.
func (s *spriteStore) bakeRotation(i int, angle float32) {
	ow := s.origW[i]
	oh := s.origH[i]

	sin, cos := math.Sincos(float64(angle))
	absSin := float32(math.Abs(sin))
	absCos := float32(math.Abs(cos))

	newW := int(math.Ceil(float64(float32(ow)*absCos + float32(oh)*absSin)))
	newH := int(math.Ceil(float64(float32(ow)*absSin + float32(oh)*absCos)))

	// Inverse mapping: destination offsets from the new center rotate by
	// -angle back to source offsets from the original center.
	s.resample(i, newW, newH, Rotation(-angle))
}

// bakeScale rasterizes the original bitmap scaled by (sx, sy) into a fresh
// display bitmap. Near-zero factors and zero-sized results are no-ops.
func (s *spriteStore) bakeScale(i int, sx, sy float32) {
	absSX := float32(math.Abs(float64(sx)))
	absSY := float32(math.Abs(float64(sy)))
	if absSX < minScaleFactor || absSY < minScaleFactor {
		return
	}

	ow := s.origW[i]
	oh := s.origH[i]
	newW := int(math.Round(float64(float32(ow) * absSX)))
	newH := int(math.Round(float64(float32(oh) * absSY)))
	if newW == 0 || newH == 0 {
		return
	}

	data := s.original[i]
	display := make([]byte, newW*newH*4)
	for ty := 0; ty < newH; ty++ {
		py := (float32(ty) + 0.5) / absSY
		for tx := 0; tx < newW; tx++ {
			px := (float32(tx) + 0.5) / absSX
			c, ok := sampleBilinear(data, ow, oh, px, py)
			if !ok {
				continue
			}
			di := (ty*newW + tx) * 4
			display[di] = c.R
			display[di+1] = c.G
			display[di+2] = c.B
			display[di+3] = c.A
		}
	}
	s.display[i] = display
	s.dispW[i] = newW
	s.dispH[i] = newH
}

// bakeRotationScale rasterizes the original bitmap scaled by (sx, sy) and
// rotated by angle in a single resample. Guards match bakeScale.
func (s *spriteStore) bakeRotationScale(i int, angle, sx, sy float32) {
	absSX := float32(math.Abs(float64(sx)))
	absSY := float32(math.Abs(float64(sy)))
	if absSX < minScaleFactor || absSY < minScaleFactor {
		return
	}

	ow := s.origW[i]
	oh := s.origH[i]
	scaledW := float32(ow) * absSX
	scaledH := float32(oh) * absSY

	sin, cos := math.Sincos(float64(angle))
	absSin := float32(math.Abs(sin))
	absCos := float32(math.Abs(cos))

	newW := int(math.Ceil(float64(scaledW*absCos + scaledH*absSin)))
	newH := int(math.Ceil(float64(scaledW*absSin + scaledH*absCos)))
	if newW == 0 || newH == 0 {
		return
	}

	inv, ok := Rotation(-angle).Multiply(Scale(sx, sy)).Inverse()
	if !ok {
		return
	}
	s.resample(i, newW, newH, inv)
}

// resample fills a fresh newW x newH display bitmap by mapping each
// destination pixel center through inv back into the original bitmap and
// bilinear-sampling it. Misses stay transparent black.
func (s *spriteStore) resample(i, newW, newH int, inv Matrix3x3) {
	ow := s.origW[i]
	oh := s.origH[i]
	data := s.original[i]

	halfW := float32(ow) / 2
	halfH := float32(oh) / 2
	halfNewW := float32(newW) / 2
	halfNewH := float32(newH) / 2

	display := make([]byte, newW*newH*4)
	for ty := 0; ty < newH; ty++ {
		dy := float32(ty) + 0.5 - halfNewH
		for tx := 0; tx < newW; tx++ {
			dx := float32(tx) + 0.5 - halfNewW
			srcX, srcY := inv.TransformPoint(dx, dy)
			c, ok := sampleBilinear(data, ow, oh, srcX+halfW, srcY+halfH)
			if !ok {
				continue
			}
			di := (ty*newW + tx) * 4
			display[di] = c.R
			display[di+1] = c.G
			display[di+2] = c.B
			display[di+3] = c.A
		}
	}
	s.display[i] = display
	s.dispW[i] = newW
	s.dispH[i] = newH
}

// rebake regenerates the display bitmap from the accumulated rotation and
// scale state. Every rebake resamples the immutable original exactly once,
// so repeated transforms never accumulate resampling error.
func (s *spriteStore) rebake(i int) {
	rot := s.rotation[i]
	sx := s.scaleX[i]
	sy := s.scaleY[i]

	switch {
	case rot == 0 && sx == 1 && sy == 1:
		s.reset(i)
	case rot == 0:
		s.bakeScale(i, sx, sy)
	case sx == 1 && sy == 1:
		s.bakeRotation(i, rot)
	default:
		s.bakeRotationScale(i, rot, sx, sy)
	}
}

// normalizeAngle wraps an angle into [0, 2π).
func normalizeAngle(a float32) float32 {
	for a < 0 {
		a += 2 * math.Pi
	}
	for a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
