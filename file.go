package blackbg

import (
	"fmt"
	"os"
)

// RemoveBackgroundFile reads the image at inputPath, zeroes the alpha channel
// of its near-black pixels, and writes the result to outputPath, overwriting
// any existing file. The output is always PNG, whatever extension outputPath
// carries, since the result needs an alpha channel. The write is not atomic;
// a failed encode can leave a partial file behind.
func RemoveBackgroundFile(inputPath, outputPath string) (Info, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return Info{}, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	img, _, err := Decode(in)
	if err != nil {
		return Info{}, fmt.Errorf("decode %s: %w", inputPath, err)
	}

	cleaned, info, err := RemoveBackground(img)
	if err != nil {
		return Info{}, err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return Info{}, fmt.Errorf("create output: %w", err)
	}

	if err := EncodePNG(out, cleaned); err != nil {
		out.Close()
		return Info{}, fmt.Errorf("encode %s: %w", outputPath, err)
	}

	if err := out.Close(); err != nil {
		return Info{}, fmt.Errorf("close output: %w", err)
	}

	return info, nil
}
