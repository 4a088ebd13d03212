package blackbg

import (
	"fmt"
	"image"
)

const (
	// Masked-pixel fraction above which an image is considered to carry a
	// removable black background.
	detectionCoverageThreshold = 0.01
)

// DetectBackground reports whether the image carries a near-black background
// worth removing. The coverage value is the fraction of pixels whose R, G,
// and B channels are all below DefaultThreshold. The image is not modified.
func DetectBackground(img image.Image) (present bool, coverage float64, info Info, err error) {
	if img == nil {
		return false, 0, Info{}, fmt.Errorf("nil image provided")
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return false, 0, Info{}, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}

	info = scanMask(img, DefaultThreshold)
	coverage = info.Coverage()
	present = coverage > detectionCoverageThreshold

	return present, coverage, info, nil
}

// scanMask counts pixels whose R, G, and B are all strictly below threshold.
// It runs the mask pass over a straight-alpha clone so the count always
// matches what removal would mask; premultiplied reads would make a bright
// translucent pixel look dark.
func scanMask(img image.Image, threshold uint8) Info {
	bounds := img.Bounds()
	masked := applyMask(cloneToNRGBA(img), threshold)

	return Info{Bounds: bounds, Masked: masked, Total: bounds.Dx() * bounds.Dy()}
}
