package blit

import "testing"

// testImage2x2 is the 2x2 source used throughout: [red, green / blue, white].
func testImage2x2() []byte {
	return []byte{
		255, 0, 0, 255, // red (0,0)
		0, 255, 0, 255, // green (1,0)
		0, 0, 255, 255, // blue (0,1)
		255, 255, 255, 255, // white (1,1)
	}
}

func assertColor(t *testing.T, name string, got, want Color) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestSampleNearest(t *testing.T) {
	data := testImage2x2()

	c, ok := sampleNearest(data, 2, 2, 0, 0)
	if !ok {
		t.Fatal("nearest at (0,0) missed")
	}
	assertColor(t, "nearest(0,0)", c, Color{255, 0, 0, 255})

	c, ok = sampleNearest(data, 2, 2, 1, 0)
	if !ok {
		t.Fatal("nearest at (1,0) missed")
	}
	assertColor(t, "nearest(1,0)", c, Color{0, 255, 0, 255})

	// Rounds to the closest pixel.
	c, ok = sampleNearest(data, 2, 2, 0.6, 0.9)
	if !ok {
		t.Fatal("nearest at (0.6,0.9) missed")
	}
	assertColor(t, "nearest(0.6,0.9)", c, Color{255, 255, 255, 255})

	if _, ok := sampleNearest(data, 2, 2, -1, 0); ok {
		t.Error("nearest at (-1,0) should miss")
	}
	if _, ok := sampleNearest(data, 2, 2, 0, 2); ok {
		t.Error("nearest at (0,2) should miss")
	}
}

func TestSampleBilinearCenter(t *testing.T) {
	// The exact center of the 2x2 image weighs all four corners at 0.25.
	c, ok := sampleBilinear(testImage2x2(), 2, 2, 1, 1)
	if !ok {
		t.Fatal("bilinear at center missed")
	}
	assertColor(t, "bilinear(1,1)", c, Color{127, 127, 127, 255})
	// Strictly between the corner values on every color channel.
	if c.R == 0 || c.R == 255 || c.G == 0 || c.G == 255 || c.B == 0 || c.B == 255 {
		t.Errorf("bilinear center %v not strictly between corners", c)
	}
}

func TestSampleBilinearPixelCenterExact(t *testing.T) {
	// (0.5, 0.5) is the center of pixel (0,0): all weight on one tap.
	c, ok := sampleBilinear(testImage2x2(), 2, 2, 0.5, 0.5)
	if !ok {
		t.Fatal("bilinear at (0.5,0.5) missed")
	}
	assertColor(t, "bilinear(0.5,0.5)", c, Color{255, 0, 0, 255})
}

func TestSampleBilinearTransparentFallback(t *testing.T) {
	// Fully transparent source: the 4-tap average would report transparent
	// black everywhere, so the kernel falls back to nearest.
	clear := make([]byte, 2*2*4)

	c, ok := sampleBilinear(clear, 2, 2, 1, 1)
	if !ok {
		t.Fatal("bilinear on transparent source should fall back to nearest, not miss")
	}
	assertColor(t, "bilinear transparent", c, Color{0, 0, 0, 0})

	// The fallback rounds the shifted coordinate; far outside it still misses.
	if _, ok := sampleBilinear(clear, 2, 2, -3, -3); ok {
		t.Error("bilinear far outside should miss")
	}
}

func TestSampleSupersampleCorner(t *testing.T) {
	// All four sub-samples of a corner land in the same pixel.
	c, ok := sampleSupersample(testImage2x2(), 2, 2, 0, 0)
	if !ok {
		t.Fatal("supersample at (0,0) missed")
	}
	assertColor(t, "supersample(0,0)", c, Color{255, 0, 0, 255})

	c, ok = sampleSupersample(testImage2x2(), 2, 2, 1, 0)
	if !ok {
		t.Fatal("supersample at (1,0) missed")
	}
	assertColor(t, "supersample(1,0)", c, Color{0, 255, 0, 255})
}

func TestSampleSupersamplePartialCoverage(t *testing.T) {
	// At (-0.25, 0) the left pair of sub-samples misses; the average covers
	// only the hits, so the color is undimmed red.
	c, ok := sampleSupersample(testImage2x2(), 2, 2, -0.25, 0)
	if !ok {
		t.Fatal("supersample at (-0.25,0) should partially hit")
	}
	assertColor(t, "supersample partial", c, Color{255, 0, 0, 255})

	if _, ok := sampleSupersample(testImage2x2(), 2, 2, -1, -1); ok {
		t.Error("supersample fully outside should miss")
	}
}

func TestSamplingFromCode(t *testing.T) {
	cases := []struct {
		code uint8
		want SamplingMethod
	}{
		{0, SamplingNearest},
		{1, SamplingBilinear},
		{2, SamplingSupersampling},
		{99, SamplingNearest},
	}
	for _, c := range cases {
		if got := SamplingFromCode(c.code); got != c.want {
			t.Errorf("SamplingFromCode(%d) = %v, want %v", c.code, got, c.want)
		}
	}
	if SamplingBilinear.Code() != 1 {
		t.Errorf("SamplingBilinear.Code() = %d, want 1", SamplingBilinear.Code())
	}
}
