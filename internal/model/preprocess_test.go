package model

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func solidImage(width, height int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestPreprocessLength(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		size   int
	}{
		{"square source", 10, 10, 4},
		{"wide source", 20, 10, 8},
		{"upscale", 2, 2, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preprocess(solidImage(tt.width, tt.height, color.RGBA{R: 128, G: 128, B: 128, A: 255}), tt.size)
			want := 3 * tt.size * tt.size
			if len(got) != want {
				t.Errorf("len = %d, want %d", len(got), want)
			}
		})
	}
}

func TestPreprocessChannelPlanes(t *testing.T) {
	// Pure red: the R plane should sit at 1.0 and the G/B planes at 0.
	const size = 4
	data := preprocess(solidImage(10, 10, color.RGBA{R: 255, A: 255}), size)

	plane := size * size
	checkPlane := func(name string, values []float32, want float64) {
		for i, v := range values {
			if math.Abs(float64(v)-want) > 0.02 {
				t.Errorf("%s[%d] = %f, want ~%f", name, i, v, want)
				return
			}
		}
	}

	checkPlane("R", data[:plane], 1.0)
	checkPlane("G", data[plane:2*plane], 0.0)
	checkPlane("B", data[2*plane:], 0.0)
}

func TestPreprocessValueRange(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: uint8((x + y) * 8), A: 255})
		}
	}

	for i, v := range preprocess(img, 8) {
		if v < 0 || v > 1 {
			t.Fatalf("value[%d] = %f outside [0, 1]", i, v)
		}
	}
}
