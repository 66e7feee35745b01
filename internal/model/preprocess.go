package model

import (
	"image"

	"github.com/nfnt/resize"
)

// preprocess resizes the image to size x size and flattens it into CHW
// float32 planes normalized to [0, 1], the layout the exported model expects.
func preprocess(img image.Image, size int) []float32 {
	target := uint(size)
	resized := resize.Resize(target, target, img, resize.Lanczos3)

	bounds := resized.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	inputData := make([]float32, 3*width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := resized.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()

			pixelIndex := y*width + x
			inputData[pixelIndex] = float32(r) / 65535.0
			inputData[width*height+pixelIndex] = float32(g) / 65535.0
			inputData[2*width*height+pixelIndex] = float32(b) / 65535.0
		}
	}

	return inputData
}
