package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"mipmap-gen/internal/config"
	"mipmap-gen/internal/icons"
	"mipmap-gen/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	out := ui.NewConsole(stdout)
	errOut := ui.NewConsole(stderr)

	fs := flag.NewFlagSet("mipmap-gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg, err := config.ParseConfig(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		errOut.Error(fmt.Sprintf("parse config: %v", err))
		return 2
	}

	out.Header("Generating Icons")
	if msg := clipWarning(cfg.Zoom); msg != "" {
		out.Warning(msg)
	}

	outputs, err := icons.Generate(cfg.Source, cfg.ResDir, cfg.Zoom)
	if err != nil {
		if errors.Is(err, icons.ErrSource) {
			errOut.Error(fmt.Sprintf("Error opening image: %v", err))
		} else {
			errOut.Error(err.Error())
		}
		return 1
	}

	for _, o := range outputs {
		out.Info(fmt.Sprintf("Created %s (%s %dx%d)", o.Path, o.Variant, o.Edge, o.Edge))
	}
	out.Success(fmt.Sprintf("Successfully generated all icons at %sx!", formatZoom(cfg.Zoom)))
	return 0
}

// clipWarning describes which variants overflow their canvas at zoom.
// Adaptive content is 2/3 of the edge, so it only overflows above 1.5.
func clipWarning(zoom float64) string {
	switch {
	case zoom > 1.5:
		return fmt.Sprintf("zoom %s is above 1.5, standard and adaptive icons will be clipped by the canvas", formatZoom(zoom))
	case zoom > 1:
		return fmt.Sprintf("zoom %s is above 1, standard icons will be clipped by the canvas", formatZoom(zoom))
	default:
		return ""
	}
}

// formatZoom prints whole numbers with a trailing ".0" (1 -> "1.0").
func formatZoom(zoom float64) string {
	s := strconv.FormatFloat(zoom, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
