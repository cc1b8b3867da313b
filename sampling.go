package blit

import "math"

// The three sampling kernels map a continuous coordinate (px, py) in source
// pixel space (origin top-left, one unit per pixel) to a color from an RGBA
// byte buffer. The boolean result is false when the coordinate has no
// coverage at all, i.e. lies fully outside the source.

// sampleNearest rounds (px, py) to the nearest integer pixel and returns its
// color. No half-pixel offset correction is applied.
func sampleNearest(data []byte, width, height int, px, py float32) (Color, bool) {
	sx := int(math.Round(float64(px)))
	sy := int(math.Round(float64(py)))
	if sx < 0 || sx >= width || sy < 0 || sy >= height {
		return Color{}, false
	}
	i := (sy*width + sx) * 4
	return Color{data[i], data[i+1], data[i+2], data[i+3]}, true
}

// sampleBilinear computes a 4-tap weighted average around (px, py). The query
// is shifted by -0.5 on both axes so integer coordinates land on pixel
// centers; taps outside the image count as transparent black. When all four
// taps are fully transparent the kernel falls back to nearest-neighbor at the
// rounded coordinate, so edge pixels are not darkened away; only when that
// nearest pixel is also out of bounds does the sample miss.
func sampleBilinear(data []byte, width, height int, px, py float32) (Color, bool) {
	px -= 0.5
	py -= 0.5

	x0 := int(math.Floor(float64(px)))
	y0 := int(math.Floor(float64(py)))
	x1 := x0 + 1
	y1 := y0 + 1

	fx := px - float32(math.Floor(float64(px)))
	fy := py - float32(math.Floor(float64(py)))

	tap := func(x, y int) [4]float32 {
		if x < 0 || x >= width || y < 0 || y >= height {
			return [4]float32{}
		}
		i := (y*width + x) * 4
		return [4]float32{
			float32(data[i]),
			float32(data[i+1]),
			float32(data[i+2]),
			float32(data[i+3]),
		}
	}

	c00 := tap(x0, y0)
	c10 := tap(x1, y0)
	c01 := tap(x0, y1)
	c11 := tap(x1, y1)

	if c00[3] == 0 && c10[3] == 0 && c01[3] == 0 && c11[3] == 0 {
		nx := int(math.Round(float64(px)))
		ny := int(math.Round(float64(py)))
		if nx >= 0 && nx < width && ny >= 0 && ny < height {
			i := (ny*width + nx) * 4
			return Color{data[i], data[i+1], data[i+2], data[i+3]}, true
		}
		return Color{}, false
	}

	w00 := (1 - fx) * (1 - fy)
	w10 := fx * (1 - fy)
	w01 := (1 - fx) * fy
	w11 := fx * fy

	var out [4]uint8
	for i := 0; i < 4; i++ {
		v := w00*c00[i] + w10*c10[i] + w01*c01[i] + w11*c11[i]
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		out[i] = uint8(v)
	}
	return Color{out[0], out[1], out[2], out[3]}, true
}

// supersampleOffsets are the 2x2 sub-pixel sample points.
var supersampleOffsets = [4][2]float32{
	{-0.25, -0.25},
	{0.25, -0.25},
	{-0.25, 0.25},
	{0.25, 0.25},
}

// sampleSupersample takes four nearest-neighbor sub-samples at (±0.25, ±0.25)
// around (px, py) and averages the channels over however many sub-samples
// hit. Partial coverage averages over the hits only; the sample misses only
// when all four sub-samples miss.
func sampleSupersample(data []byte, width, height int, px, py float32) (Color, bool) {
	var rSum, gSum, bSum, aSum float32
	hits := 0

	for _, off := range supersampleOffsets {
		c, ok := sampleNearest(data, width, height, px+off[0], py+off[1])
		if !ok {
			continue
		}
		rSum += float32(c.R)
		gSum += float32(c.G)
		bSum += float32(c.B)
		aSum += float32(c.A)
		hits++
	}

	if hits == 0 {
		return Color{}, false
	}
	n := float32(hits)
	return Color{
		uint8(rSum / n),
		uint8(gSum / n),
		uint8(bSum / n),
		uint8(aSum / n),
	}, true
}
