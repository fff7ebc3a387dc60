// Package feature turns a screenshot into an app-store feature graphic: a
// banner of an exact size filled edge to edge with the screenshot's content.
package feature

import (
	"fmt"
	"image"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/store-art/internal/config"
	"github.com/ironsheep/store-art/internal/imaging"
)

// Result describes a generated feature graphic.
type Result struct {
	Source  string                   `json:"source"`
	Output  string                   `json:"output"`
	Crop    image.Rectangle          `json:"crop"`
	Size    imaging.Size             `json:"size"`
	Palette []imaging.ColorFrequency `json:"palette,omitempty"`
}

// Options are per-run extras that do not belong in Config.
type Options struct {
	// Palette is how many dominant colors of the output to report.
	Palette int
}

// Generate cover-crops cfg's source screenshot to the target aspect ratio,
// resizes it to exactly cfg.Target and writes it to cfg.Output(),
// overwriting any existing file.
//
// A missing source fails with imaging.NotFoundError before anything is
// written. Decode and encode failures are returned as imaging.DecodeError
// and imaging.EncodeError; no partial output is left behind.
func Generate(cfg config.Config, opts Options, log logrus.FieldLogger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	src := cfg.SourcePath()
	out := cfg.Output()

	img, err := imaging.Load(src)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"source": src,
		"size":   imaging.SizeOf(img).String(),
		"target": cfg.Target.String(),
	}).Debug("loaded source")

	graphic, crop, err := imaging.Fit(img, cfg.Target, imaging.FitOptions{
		Filter:  cfg.Filter,
		Gravity: cfg.Gravity,
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"crop":    crop.String(),
		"filter":  cfg.Filter,
		"gravity": string(cfg.Gravity),
	}).Debug("cropped source")

	if err := imaging.Save(graphic, out); err != nil {
		return nil, err
	}

	return &Result{
		Source:  src,
		Output:  out,
		Crop:    crop,
		Size:    imaging.SizeOf(graphic),
		Palette: imaging.DominantColors(graphic, opts.Palette),
	}, nil
}

// Write prints the confirmation line, followed by the palette if one was
// requested.
func (r *Result) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Created %s at %dx%d from %s\n",
		filepath.Base(r.Output), r.Size.Width, r.Size.Height, filepath.Base(r.Source))
	if err != nil {
		return err
	}
	for _, c := range r.Palette {
		_, err := fmt.Fprintf(w, "  %s  %5.1f%%  hsl(%d, %d%%, %d%%)\n",
			c.Hex, c.Percentage, c.HSL.H, c.HSL.S, c.HSL.L)
		if err != nil {
			return err
		}
	}
	return nil
}
