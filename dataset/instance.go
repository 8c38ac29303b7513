package dataset

import (
	"image"
	"math"
)

// DefaultEdge is the square edge images are rescaled to before flattening.
const DefaultEdge = 128

// Instance is one labeled image flattened to a normalized grayscale vector.
// Pixels is row-major, length Edge*Edge, each value in [0, 1] with dark
// pixels near 1 (inverted so ink carries signal and background does not).
type Instance struct {
	Name   string
	Label  string
	Edge   int
	Pixels []float64
}

// Luminance computes the rec601 luma Y' = 0.299·R + 0.587·G + 0.114·B,
// rounded to the nearest integer. Inputs are 8-bit channel values.
func Luminance(r, g, b uint8) int {
	return int(math.Round(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)))
}

// FromImage flattens an image into an Instance: rescale to edge×edge by
// nearest-neighbor sampling, grayscale via rec601, then normalize each
// pixel as (255 − Y)/255. edge <= 0 resolves to DefaultEdge.
func FromImage(name, label string, img image.Image, edge int) *Instance {
	if edge <= 0 {
		edge = DefaultEdge
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]float64, edge*edge)
	for row := 0; row < edge; row++ {
		srcY := bounds.Min.Y + row*h/edge
		for col := 0; col < edge; col++ {
			srcX := bounds.Min.X + col*w/edge
			// RGBA returns 16-bit channels; shift back to 8-bit.
			r, g, b, _ := img.At(srcX, srcY).RGBA()
			y := Luminance(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			pixels[row*edge+col] = (255 - float64(y)) / 255
		}
	}

	return &Instance{Name: name, Label: label, Edge: edge, Pixels: pixels}
}
