package icons

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"mipmap-gen/internal/config"
)

// Output describes one file written by Generate.
type Output struct {
	Density string
	Variant Variant
	Edge    int
	Path    string
}

// Generate decodes srcPath and writes every launcher icon under resDir.
// A source that cannot be decoded aborts the run before anything is created.
func Generate(srcPath, resDir string, zoom float64) ([]Output, error) {
	if err := checkZoom(zoom); err != nil {
		return nil, err
	}

	img, err := Load(srcPath)
	if err != nil {
		return nil, err
	}
	return Write(img, resDir, zoom)
}

// Write renders img for every density and variant into resDir, overwriting
// existing files.
func Write(img image.Image, resDir string, zoom float64) ([]Output, error) {
	if err := checkZoom(zoom); err != nil {
		return nil, err
	}

	var outputs []Output

	// Standard icons: launcher and round share the same pixels
	for _, d := range Densities {
		written, err := writeIcon(img, resDir, d, Standard, zoom, config.LauncherFile, config.RoundFile)
		outputs = append(outputs, written...)
		if err != nil {
			return outputs, err
		}
	}

	// Adaptive foregrounds
	for _, d := range Densities {
		written, err := writeIcon(img, resDir, d, Adaptive, zoom, config.ForegroundFile)
		outputs = append(outputs, written...)
		if err != nil {
			return outputs, err
		}
	}

	return outputs, nil
}

// writeIcon composes one canvas, encodes it once and writes the same bytes
// under every name in the density directory.
func writeIcon(img image.Image, resDir string, d Density, v Variant, zoom float64, names ...string) ([]Output, error) {
	edge := d.Edge(v)
	data, err := encodePNG(Compose(img, edge, v, zoom))
	if err != nil {
		return nil, fmt.Errorf("encode %s %s icon: %w", d.Name, v, err)
	}

	dir := config.DensityDir(resDir, d.Name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	var outputs []Output
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return outputs, fmt.Errorf("write %s: %w", path, err)
		}
		outputs = append(outputs, Output{Density: d.Name, Variant: v, Edge: edge, Path: path})
	}
	return outputs, nil
}

func checkZoom(zoom float64) error {
	if math.IsNaN(zoom) || math.IsInf(zoom, 0) || zoom <= 0 || zoom > config.MaxZoom {
		return fmt.Errorf("%w: %v", ErrZoom, zoom)
	}
	return nil
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
