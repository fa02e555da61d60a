package sigmask

import (
	"bytes"
	"fmt"
)

// MaskBytes masks raw image bytes and returns the result encoded as PNG,
// along with the output geometry.
func MaskBytes(data []byte, opts Options) ([]byte, Info, error) {
	if len(data) == 0 {
		return nil, Info{}, fmt.Errorf("empty image data")
	}

	img, _, err := DecodeImageBytes(data)
	if err != nil {
		return nil, Info{}, err
	}

	out, info, err := Mask(img, opts)
	if err != nil {
		return nil, Info{}, err
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, out); err != nil {
		return nil, Info{}, err
	}

	return buf.Bytes(), info, nil
}
