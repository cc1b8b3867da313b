package blit

import "math"

// Render composites the default scene. Callers read the result via Frame.
func (w *World) Render() {
	w.renderScene(int(DefaultScene))
}

// RenderScene composites any scene. No-op if the scene has been removed.
func (w *World) RenderScene(scene SceneID) {
	si := int(scene)
	if !w.scenes.alive(si) {
		return
	}
	w.renderScene(si)
}

// renderScene runs the per-frame pipeline: refresh the background row cache,
// fill the buffer row by row, refresh the sorted render order, then blit each
// sprite in ascending z-index with alpha blending.
func (w *World) renderScene(si int) {
	sc := &w.scenes
	width := sc.width[si]
	height := sc.height[si]
	buf := sc.buf[si]

	// Background row cache. The length check catches a resize that happened
	// after the last rebuild.
	row := sc.bgRow[si]
	if sc.bgDirty[si] || len(row) != width*4 {
		row = rebuildBackgroundRow(row, width, sc.background[si])
		sc.bgRow[si] = row
		sc.bgDirty[si] = false
	}
	for y := 0; y < height; y++ {
		copy(buf[y*width*4:(y+1)*width*4], row)
	}

	if sc.sortDirty[si] {
		w.rebuildRenderOrder(si)
	}

	for _, id := range sc.sorted[si] {
		// Membership was filtered at sort time; the sprite may have been
		// removed since.
		if !w.sprites.alive(int(id)) {
			continue
		}
		w.blitSprite(si, int(id), buf, width, height)
	}

	if globalDebug {
		debugCheckScene(w, SceneID(si))
	}
}

// rebuildBackgroundRow fills one scanline's worth of background bytes,
// reusing the previous allocation when the width still matches.
func rebuildBackgroundRow(row []byte, width int, c Color) []byte {
	if len(row) != width*4 {
		row = make([]byte, width*4)
	}
	for x := 0; x < width*4; x += 4 {
		row[x] = c.R
		row[x+1] = c.G
		row[x+2] = c.B
		row[x+3] = c.A
	}
	return row
}

// rebuildRenderOrder filters the member list down to active sprites and
// stable-sorts it ascending by z-index into the scene's cached order.
// Stable insertion sort: ties keep their insertion order, and the reused
// buffer avoids per-frame allocations.
func (w *World) rebuildRenderOrder(si int) {
	sc := &w.scenes
	order := sc.sorted[si][:0]
	for _, id := range sc.members[si] {
		if w.sprites.alive(int(id)) {
			order = append(order, id)
		}
	}

	z := w.sprites.zIdx
	for i := 1; i < len(order); i++ {
		key := order[i]
		j := i - 1
		for j >= 0 && z[order[j]] > z[key] {
			order[j+1] = order[j]
			j--
		}
		order[j+1] = key
	}

	sc.sorted[si] = order
	sc.sortDirty[si] = false
}

// blitSprite composites one sprite's display bitmap into the scene buffer.
// The sprite's bounding box is clipped against the buffer, then every
// destination pixel inside it is mapped back to sprite-local coordinates and
// sampled with the scene's selected method.
func (w *World) blitSprite(si, i int, buf []byte, width, height int) {
	sp := &w.sprites
	dispW := sp.dispW[i]
	dispH := sp.dispH[i]
	data := sp.display[i]

	// Scene coordinates are centered on the buffer.
	left := sp.posX[i] + float32(width)/2 - float32(dispW)/2
	top := sp.posY[i] + float32(height)/2 - float32(dispH)/2

	startX := int(math.Floor(float64(left)))
	startY := int(math.Floor(float64(top)))
	endX := int(math.Ceil(float64(left) + float64(dispW)))
	endY := int(math.Ceil(float64(top) + float64(dispH)))
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}
	if endX > width {
		endX = width
	}
	if endY > height {
		endY = height
	}

	method := w.scenes.sampling[si]

	for ty := startY; ty < endY; ty++ {
		py := float32(ty) - top
		rowBase := ty * width * 4
		for tx := startX; tx < endX; tx++ {
			px := float32(tx) - left

			var c Color
			var ok bool
			switch method {
			case SamplingBilinear:
				c, ok = sampleBilinear(data, dispW, dispH, px, py)
			case SamplingSupersampling:
				c, ok = sampleSupersample(data, dispW, dispH, px, py)
			default:
				// Nearest is inlined: direct rounding and bounds check,
				// no kernel call in the innermost loop.
				sx := int(math.Round(float64(px)))
				sy := int(math.Round(float64(py)))
				if sx >= 0 && sx < dispW && sy >= 0 && sy < dispH {
					di := (sy*dispW + sx) * 4
					c = Color{data[di], data[di+1], data[di+2], data[di+3]}
					ok = true
				}
			}
			if !ok {
				continue
			}

			blendPixel(buf, rowBase+tx*4, c)
		}
	}
}

// blendPixel composites src over the destination pixel at buf[di:di+4] using
// integer fixed-point "over" blending. Fully transparent sources are skipped
// and fully opaque sources overwrite directly; the general case uses the
// truncating /255 integer form to keep float division out of the hot loop.
func blendPixel(buf []byte, di int, src Color) {
	srcA := uint32(src.A)
	switch srcA {
	case 0:
		return
	case 255:
		buf[di] = src.R
		buf[di+1] = src.G
		buf[di+2] = src.B
		buf[di+3] = 255
		return
	}

	invA := 255 - srcA
	buf[di] = uint8((uint32(src.R)*srcA + uint32(buf[di])*invA) / 255)
	buf[di+1] = uint8((uint32(src.G)*srcA + uint32(buf[di+1])*invA) / 255)
	buf[di+2] = uint8((uint32(src.B)*srcA + uint32(buf[di+2])*invA) / 255)
	buf[di+3] = uint8((srcA*255 + uint32(buf[di+3])*invA) / 255)
}
