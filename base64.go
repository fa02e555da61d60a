package sigmask

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// DecodeBase64Image decodes a base64-encoded image (optionally a data URL)
// into an image.Image. It returns the decoded image and the detected format
// string ("png", "jpeg", "webp", etc.).
func DecodeBase64Image(input string) (image.Image, string, error) {
	raw := stripDataPrefix(input)

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, "", fmt.Errorf("decode base64: %w", err)
	}

	img, format, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}

	return img, format, nil
}

// EncodePNGToBase64 encodes an image as PNG and returns a base64 string.
func EncodePNGToBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// MaskBase64 masks a base64-encoded signature scan and returns the result as
// base64 PNG, ready for inlining as a data URL, along with the output
// geometry.
func MaskBase64(input string, opts Options) (string, Info, error) {
	img, _, err := DecodeBase64Image(input)
	if err != nil {
		return "", Info{}, err
	}

	out, info, err := Mask(img, opts)
	if err != nil {
		return "", Info{}, err
	}

	encoded, err := EncodePNGToBase64(out)
	if err != nil {
		return "", Info{}, err
	}

	return encoded, info, nil
}

func stripDataPrefix(input string) string {
	lower := strings.ToLower(input)
	if strings.HasPrefix(lower, "data:") {
		if idx := strings.Index(input, ","); idx != -1 {
			return input[idx+1:]
		}
	}
	return input
}
