package blackbg

import "bytes"

// DetectBackgroundBytes checks raw image bytes for a near-black background
// without performing any cleanup. It decodes the bytes into an image and
// delegates to DetectBackground for the coverage details.
func DetectBackgroundBytes(data []byte) (present bool, coverage float64, info Info, err error) {
	img, _, err := DecodeImageBytes(data)
	if err != nil {
		return false, 0, Info{}, err
	}

	return DetectBackground(img)
}

// RemoveBackgroundBytes decodes raw image bytes, zeroes the alpha channel of
// near-black pixels, and returns the result encoded as PNG.
func RemoveBackgroundBytes(data []byte) ([]byte, Info, error) {
	img, _, err := DecodeImageBytes(data)
	if err != nil {
		return nil, Info{}, err
	}

	cleaned, info, err := RemoveBackground(img)
	if err != nil {
		return nil, Info{}, err
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, cleaned); err != nil {
		return nil, Info{}, err
	}

	return buf.Bytes(), info, nil
}
