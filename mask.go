package sigmask

import (
	"image"
	"image/color"
	"image/draw"
)

// Options control the opacity ramp and the crop around the strokes.
type Options struct {
	// Threshold is the intensity floor: pixels whose max channel is at or
	// below it come out fully transparent.
	Threshold int
	// Gain converts intensity above Threshold into alpha linearly.
	Gain int
	// Pad is the margin in pixels kept around the strokes when cropping.
	Pad int
	// MaxWidth, when positive, downscales the result to fit that width.
	// Zero disables downscaling.
	MaxWidth int
}

// DefaultOptions returns the parameters used for the site signature assets.
func DefaultOptions() Options {
	return Options{Threshold: 6, Gain: 18, Pad: 24}
}

// BuildAlphaMask derives per-pixel opacity from the maximum RGB channel. A
// faint stroke scanned against black may be weak in one channel but present
// in another, so the max is more sensitive than luma. The ramp is
// (m - threshold) * gain clamped to [0, 255]; the arithmetic is integral, so
// intermediate values truncate. The source alpha channel is ignored.
func BuildAlphaMask(img image.Image, threshold, gain int) *image.Alpha {
	src := cloneToNRGBA(img)
	width, height := src.Rect.Dx(), src.Rect.Dy()
	mask := image.NewAlpha(image.Rect(0, 0, width, height))

	idx := 0
	for y := 0; y < height; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+width*4]
		for x := 0; x < len(row); x += 4 {
			m := row[x]
			if row[x+1] > m {
				m = row[x+1]
			}
			if row[x+2] > m {
				m = row[x+2]
			}

			v := (int(m) - threshold) * gain
			switch {
			case v <= 0:
				mask.Pix[idx] = 0
			case v >= 255:
				mask.Pix[idx] = 255
			default:
				mask.Pix[idx] = uint8(v)
			}
			idx++
		}
	}

	return mask
}

// contentBounds returns the bounding box of all non-zero alpha pixels, with
// exclusive max edges. The second return is false when the mask is empty.
func contentBounds(mask *image.Alpha) (image.Rectangle, bool) {
	bounds := mask.Bounds()
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X, bounds.Min.Y

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if mask.Pix[mask.PixOffset(x, y)] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if minX > maxX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// cloneToNRGBA copies the image into a straight-alpha buffer anchored at the
// origin. Pixels are converted through color.NRGBAModel rather than
// draw.Draw: the generic draw path round-trips through premultiplied RGBA,
// which blacks out the color channels of transparent pixels in paletted
// sources (gif, paletted png), and those channels must survive since the
// source alpha is discarded.
func cloneToNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	if nrgba, ok := src.(*image.NRGBA); ok {
		draw.Draw(dst, dst.Bounds(), nrgba, bounds.Min, draw.Src)
		return dst
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			dst.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, c)
		}
	}

	return dst
}
