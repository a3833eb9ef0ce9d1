package icons

import (
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Compose scales src into the content box for edge and pastes it centered on
// a transparent square canvas.
func Compose(src image.Image, edge int, v Variant, zoom float64) *image.NRGBA {
	b := src.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), ContentSize(edge, v, zoom))
	scaled := imaging.Resize(src, w, h, imaging.Lanczos)

	canvas := image.NewNRGBA(image.Rect(0, 0, edge, edge))
	offset := image.Pt(floorHalf(edge-w), floorHalf(edge-h))
	draw.Draw(canvas, image.Rectangle{Min: offset, Max: offset.Add(scaled.Rect.Size())}, scaled, image.Point{}, draw.Over)
	return canvas
}

// floorHalf halves n rounding toward negative infinity, so oversized content
// (zoom above 1) is clipped evenly on both sides.
func floorHalf(n int) int {
	if n < 0 {
		return (n - 1) / 2
	}
	return n / 2
}
