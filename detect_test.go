package blackbg

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectBackgroundCoverage(t *testing.T) {
	src := newTestImage(2, 2, []color.NRGBA{
		{0, 0, 0, 255},
		{10, 5, 2, 255},
		{40, 40, 40, 255},
		{255, 255, 255, 255},
	})

	present, coverage, info, err := DetectBackground(src)
	require.NoError(t, err)

	assert.True(t, present)
	assert.InDelta(t, 0.5, coverage, 1e-12)
	assert.Equal(t, 2, info.Masked)
	assert.Equal(t, 4, info.Total)
}

func TestDetectBackgroundAbsent(t *testing.T) {
	src := uniformImage(4, 4, color.NRGBA{255, 255, 255, 255})

	present, coverage, info, err := DetectBackground(src)
	require.NoError(t, err)

	assert.False(t, present)
	assert.Equal(t, 0.0, coverage)
	assert.Equal(t, 0, info.Masked)
}

func TestDetectBackgroundThresholdIsStrict(t *testing.T) {
	src := newTestImage(2, 1, []color.NRGBA{
		{30, 30, 30, 255},
		{29, 29, 29, 255},
	})

	_, _, info, err := DetectBackground(src)
	require.NoError(t, err)

	assert.Equal(t, 1, info.Masked)
}

func TestDetectBackgroundIgnoresTranslucentBrightPixels(t *testing.T) {
	src := newTestImage(2, 1, []color.NRGBA{
		{200, 200, 200, 10},
		{255, 255, 255, 255},
	})

	present, coverage, info, err := DetectBackground(src)
	require.NoError(t, err)

	assert.False(t, present)
	assert.Equal(t, 0.0, coverage)
	assert.Equal(t, 0, info.Masked, "low alpha must not make a bright pixel read as dark")

	_, removeInfo, err := RemoveBackground(src)
	require.NoError(t, err)
	assert.Equal(t, removeInfo, info)
}

func TestDetectBackgroundMatchesRemoval(t *testing.T) {
	src := newTestImage(3, 2, []color.NRGBA{
		{0, 0, 0, 255},
		{29, 29, 29, 255},
		{30, 30, 30, 255},
		{12, 250, 3, 255},
		{200, 200, 200, 10},
		{255, 255, 255, 255},
	})

	_, _, detectInfo, err := DetectBackground(src)
	require.NoError(t, err)

	_, removeInfo, err := RemoveBackground(src)
	require.NoError(t, err)

	assert.Equal(t, removeInfo, detectInfo)
}

func TestDetectBackgroundRejectsBadInput(t *testing.T) {
	_, _, _, err := DetectBackground(nil)
	assert.Error(t, err)

	_, _, _, err = DetectBackground(image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	assert.Error(t, err)
}
