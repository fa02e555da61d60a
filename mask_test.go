package sigmask

import (
	"image"
	"image/color"
	"testing"
)

func TestBuildAlphaMaskRamp(t *testing.T) {
	cases := []struct {
		intensity uint8
		want      uint8
	}{
		{intensity: 0, want: 0},
		{intensity: 6, want: 0},   // at the floor
		{intensity: 7, want: 18},  // one above the floor
		{intensity: 14, want: 144},
		{intensity: 20, want: 252}, // last partial value before saturation
		{intensity: 21, want: 255}, // threshold + ceil(255/gain)
		{intensity: 128, want: 255},
		{intensity: 255, want: 255},
	}

	for _, tc := range cases {
		img := newScan(1, 1)
		img.SetNRGBA(0, 0, color.NRGBA{R: tc.intensity, G: tc.intensity, B: tc.intensity, A: 255})

		mask := BuildAlphaMask(img, 6, 18)
		if got := mask.Pix[0]; got != tc.want {
			t.Errorf("intensity %d: alpha = %d, want %d", tc.intensity, got, tc.want)
		}
	}
}

func TestBuildAlphaMaskUsesMaxChannel(t *testing.T) {
	img := newScan(3, 1)
	img.SetNRGBA(0, 0, color.NRGBA{R: 9, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 9, A: 255})
	img.SetNRGBA(2, 0, color.NRGBA{B: 9, A: 255})

	mask := BuildAlphaMask(img, 6, 18)
	for x := 0; x < 3; x++ {
		if got := mask.Pix[x]; got != 54 {
			t.Errorf("pixel %d: alpha = %d, want 54", x, got)
		}
	}
}

func TestBuildAlphaMaskMonotonic(t *testing.T) {
	img := newScan(256, 1)
	for x := 0; x < 256; x++ {
		v := uint8(x)
		img.SetNRGBA(x, 0, color.NRGBA{R: v, G: v, B: v, A: 255})
	}

	mask := BuildAlphaMask(img, 6, 18)
	for x := 1; x < 256; x++ {
		if mask.Pix[x] < mask.Pix[x-1] {
			t.Fatalf("alpha not monotonic: intensity %d -> %d but %d -> %d",
				x-1, mask.Pix[x-1], x, mask.Pix[x])
		}
	}
}

func TestBuildAlphaMaskIgnoresSourceAlpha(t *testing.T) {
	img := newScan(1, 1)
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 200, B: 200, A: 0})

	mask := BuildAlphaMask(img, 6, 18)
	if got := mask.Pix[0]; got != 255 {
		t.Fatalf("alpha = %d, want 255 (source alpha must be discarded)", got)
	}
}

func TestBuildAlphaMaskKeepsPaletteColorUnderTransparency(t *testing.T) {
	// A transparent palette entry still carries its RGB values; discarding
	// the source alpha must expose them, not black them out.
	img := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{
		color.NRGBA{R: 255, G: 255, B: 255, A: 0},
	})

	mask := BuildAlphaMask(img, 6, 18)
	if got := mask.Pix[0]; got != 255 {
		t.Fatalf("alpha = %d, want 255 (palette color must survive zero alpha)", got)
	}
}

func TestContentBounds(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 10, 8))
	mask.Pix[mask.PixOffset(2, 3)] = 1
	mask.Pix[mask.PixOffset(7, 5)] = 200

	rect, ok := contentBounds(mask)
	if !ok {
		t.Fatal("expected content in mask")
	}
	if want := image.Rect(2, 3, 8, 6); rect != want {
		t.Fatalf("bounds = %v, want %v", rect, want)
	}
}

func TestContentBoundsEmpty(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 10, 8))

	if rect, ok := contentBounds(mask); ok {
		t.Fatalf("expected empty mask, got bounds %v", rect)
	}
}

// newScan returns an opaque black image, the typical background of a raw
// signature scan.
func newScan(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return img
}
