package sigmask

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// Info reports the geometry of a masked signature.
type Info struct {
	Width   int
	Height  int
	Cropped bool
	// Rect is the crop rectangle in source pixel coordinates. It is the zero
	// rectangle when Cropped is false.
	Rect image.Rectangle
}

// Mask converts a signature scan into a white silhouette whose opacity
// follows stroke intensity. The result is cropped to the strokes plus
// opts.Pad, clamped to the image bounds; when no pixel clears the threshold
// the output keeps the source dimensions and is fully transparent.
func Mask(img image.Image, opts Options) (*image.NRGBA, Info, error) {
	if img == nil {
		return nil, Info{}, fmt.Errorf("nil image provided")
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, Info{}, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	if opts.Threshold < 0 || opts.Gain < 0 || opts.Pad < 0 || opts.MaxWidth < 0 {
		return nil, Info{}, fmt.Errorf("negative mask parameters: threshold=%d gain=%d pad=%d max-width=%d",
			opts.Threshold, opts.Gain, opts.Pad, opts.MaxWidth)
	}

	mask := BuildAlphaMask(img, opts.Threshold, opts.Gain)
	info := Info{Width: width, Height: height}

	if rect, ok := contentBounds(mask); ok {
		rect = rect.Inset(-opts.Pad).Intersect(mask.Bounds())
		mask = mask.SubImage(rect).(*image.Alpha)
		info = Info{Width: rect.Dx(), Height: rect.Dy(), Cropped: true, Rect: rect}
	}

	out := whiteSilhouette(mask)

	if opts.MaxWidth > 0 && info.Width > opts.MaxWidth {
		out = imaging.Resize(out, opts.MaxWidth, 0, imaging.Lanczos)
		info.Width = out.Rect.Dx()
		info.Height = out.Rect.Dy()
	}

	return out, info, nil
}

// ProcessFile reads the signature at srcPath, masks it, and writes the result
// to dstPath as PNG. The destination is only created once the transform has
// succeeded, so a failed run never leaves a truncated mask behind.
func ProcessFile(srcPath, dstPath string, opts Options) (Info, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return Info{}, fmt.Errorf("open %s: %w", srcPath, err)
	}
	defer src.Close()

	img, _, err := Decode(src)
	if err != nil {
		return Info{}, fmt.Errorf("decode %s: %w", srcPath, err)
	}

	out, info, err := Mask(img, opts)
	if err != nil {
		return Info{}, err
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return Info{}, fmt.Errorf("create %s: %w", dstPath, err)
	}

	if err := EncodePNG(dst, out); err != nil {
		dst.Close()
		return Info{}, fmt.Errorf("encode %s: %w", dstPath, err)
	}

	if err := dst.Close(); err != nil {
		return Info{}, fmt.Errorf("close %s: %w", dstPath, err)
	}

	return info, nil
}

// whiteSilhouette lays the alpha mask over a uniformly white canvas. Color is
// white everywhere, including fully transparent pixels: the output is a
// silhouette, not a recolor of the original strokes.
func whiteSilhouette(mask *image.Alpha) *image.NRGBA {
	bounds := mask.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.Pix[idx] = 0xff
			out.Pix[idx+1] = 0xff
			out.Pix[idx+2] = 0xff
			out.Pix[idx+3] = mask.Pix[mask.PixOffset(x, y)]
			idx += 4
		}
	}

	return out
}
