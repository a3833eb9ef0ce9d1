package icons

import "mipmap-gen/internal/config"

// Variant selects which launcher icon flavour a canvas is built for.
type Variant int

const (
	Standard Variant = iota
	Adaptive
)

func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case Adaptive:
		return "adaptive"
	default:
		return "unknown"
	}
}

// Density is one Android screen-density bucket and its icon edges in pixels.
type Density struct {
	Name     string
	Standard int
	Adaptive int
}

// Edge returns the canvas edge for the given variant.
func (d Density) Edge(v Variant) int {
	if v == Adaptive {
		return d.Adaptive
	}
	return d.Standard
}

// Densities lists every bucket in output order, mdpi first.
var Densities = []Density{
	{Name: "mdpi", Standard: 48, Adaptive: 108},
	{Name: "hdpi", Standard: 72, Adaptive: 162},
	{Name: "xhdpi", Standard: 96, Adaptive: 216},
	{Name: "xxhdpi", Standard: 144, Adaptive: 324},
	{Name: "xxxhdpi", Standard: 192, Adaptive: 432},
}

// ContentSize returns the longer side of the scaled source for a canvas of
// the given edge. Adaptive foregrounds keep only the inner 2/3 safe zone.
// Zoom is capped at config.MaxZoom.
func ContentSize(edge int, v Variant, zoom float64) int {
	zoom = min(zoom, config.MaxZoom)
	if v == Adaptive {
		return int(float64(edge) * (2.0 / 3.0) * zoom)
	}
	return int(float64(edge) * zoom)
}

// FitSize scales w×h so its longer side equals target, keeping the aspect
// ratio. Neither side drops below one pixel.
func FitSize(w, h, target int) (int, int) {
	aspect := float64(w) / float64(h)

	var nw, nh int
	if aspect > 1 {
		nw = target
		nh = int(float64(target) / aspect)
	} else {
		nh = target
		nw = int(float64(target) * aspect)
	}
	return max(nw, 1), max(nh, 1)
}
