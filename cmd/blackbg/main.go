package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	blackbg "github.com/lumakit/black-background-remover-go"
)

// go run main.go -in logo.png -out logo_transparent.png
// go run main.go -in render.jpg
// go run main.go -inbase64 "$(base64 -w0 logo.png)" -outbase64

func main() {
	input := flag.String("in", "", "Path to the source image (png/jpg/webp/bmp/tiff)")
	inputBase64 := flag.String("inbase64", "", "Base64 image input (optionally data URL)")
	output := flag.String("out", "", "Output path (defaults to <name>_transparent.png)")
	outputBase64 := flag.Bool("outbase64", false, "Write result PNG as base64 to stdout instead of file")
	flag.Parse()

	if *input == "" && *inputBase64 == "" {
		flag.Usage()
		os.Exit(1)
	}

	outPath := *output
	if outPath == "" {
		base := "output"
		if *input != "" {
			base = strings.TrimSuffix(filepath.Base(*input), filepath.Ext(*input))
		}
		outPath = filepath.Join(filepath.Dir(*input), base+"_transparent.png")
	}

	// Plain file-to-file invocation takes the direct path.
	if *inputBase64 == "" && !*outputBase64 {
		info, err := blackbg.RemoveBackgroundFile(*input, outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "remove background: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Processed image saved to %s (%d/%d pixels transparent)\n", outPath, info.Masked, info.Total)
		return
	}

	var (
		img image.Image
		err error
	)

	if *inputBase64 != "" {
		img, _, err = blackbg.DecodeBase64Image(*inputBase64)
	} else {
		inFile, openErr := os.Open(*input)
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "open input: %v\n", openErr)
			os.Exit(1)
		}
		defer inFile.Close()

		img, _, err = blackbg.Decode(inFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "decode input: %v\n", err)
		os.Exit(1)
	}

	cleaned, info, err := blackbg.RemoveBackground(img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "remove background: %v\n", err)
		os.Exit(1)
	}

	if *outputBase64 {
		encoded, encErr := blackbg.EncodePNGToBase64(cleaned)
		if encErr != nil {
			fmt.Fprintf(os.Stderr, "encode base64 output: %v\n", encErr)
			os.Exit(1)
		}
		fmt.Println(encoded)
		return
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer outFile.Close()

	if err := blackbg.EncodePNG(outFile, cleaned); err != nil {
		fmt.Fprintf(os.Stderr, "encode output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Processed image saved to %s (%d/%d pixels transparent)\n", outPath, info.Masked, info.Total)
}
