package blackbg

import (
	"fmt"
	"image"
	"image/draw"
	"sync"
)

// DefaultThreshold is the channel cutoff below which a pixel counts as dark.
// A pixel is masked only when red, green, and blue are all strictly below it.
const DefaultThreshold = 30

// Info reports what a removal or detection pass found.
type Info struct {
	Bounds image.Rectangle
	Masked int
	Total  int
}

// Coverage returns the masked-pixel fraction in [0, 1].
func (i Info) Coverage() float64 {
	if i.Total == 0 {
		return 0
	}
	return float64(i.Masked) / float64(i.Total)
}

// Engine applies the near-black transparency mask.
type Engine struct {
	threshold uint8
}

// NewEngine constructs an Engine using DefaultThreshold.
func NewEngine() *Engine {
	return &Engine{threshold: DefaultThreshold}
}

// NewEngineWithThreshold constructs an Engine with a custom channel cutoff.
// A threshold of 0 masks nothing.
func NewEngineWithThreshold(threshold uint8) *Engine {
	return &Engine{threshold: threshold}
}

var defaultEngine struct {
	once sync.Once
	eng  *Engine
}

// RemoveBackground applies the default engine to the provided image.
func RemoveBackground(img image.Image) (*image.NRGBA, Info, error) {
	defaultEngine.once.Do(func() {
		defaultEngine.eng = NewEngine()
	})

	return defaultEngine.eng.RemoveBackground(img)
}

// RemoveBackground clones the image into a straight-alpha buffer and zeroes
// the alpha channel wherever all three color channels fall below the
// threshold. The source image is not modified. Color bytes are never touched,
// so feeding the result back through the engine reproduces it exactly.
func (e *Engine) RemoveBackground(img image.Image) (*image.NRGBA, Info, error) {
	if img == nil {
		return nil, Info{}, fmt.Errorf("nil image provided")
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, Info{}, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}

	nrgba := cloneToNRGBA(img)
	masked := applyMask(nrgba, e.threshold)

	return nrgba, Info{Bounds: bounds, Masked: masked, Total: width * height}, nil
}

// cloneToNRGBA copies the image into a mutable straight-alpha buffer. Sources
// without an alpha channel come out fully opaque. NRGBA is required here: a
// premultiplied buffer cannot hold zero alpha over non-zero color bytes.
func cloneToNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}

// applyMask zeroes alpha for pixels whose R, G, and B are all strictly below
// threshold. It mutates the buffer in place and returns the masked count.
func applyMask(img *image.NRGBA, threshold uint8) int {
	bounds := img.Bounds()
	masked := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		offset := img.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.Pix[offset] < threshold && img.Pix[offset+1] < threshold && img.Pix[offset+2] < threshold {
				img.Pix[offset+3] = 0
				masked++
			}
			offset += 4
		}
	}

	return masked
}
