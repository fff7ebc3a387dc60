package imaging

import (
	"image"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Gravity selects where a cover crop is positioned inside the source.
type Gravity string

const (
	// GravityCenter centers the crop region.
	GravityCenter Gravity = "center"
	// GravitySmart places the crop region over the most interesting content.
	GravitySmart Gravity = "smart"
)

// ParseGravity returns the gravity with the given name. An empty name selects
// GravityCenter.
func ParseGravity(name string) (Gravity, error) {
	switch g := Gravity(strings.ToLower(strings.TrimSpace(name))); g {
	case "":
		return GravityCenter, nil
	case GravityCenter, GravitySmart:
		return g, nil
	default:
		return "", errors.Errorf("unknown gravity %q (want center or smart)", name)
	}
}

var filters = map[string]imaging.ResampleFilter{
	"lanczos":    imaging.Lanczos,
	"catmullrom": imaging.CatmullRom,
	"mitchell":   imaging.MitchellNetravali,
	"linear":     imaging.Linear,
	"box":        imaging.Box,
	"nearest":    imaging.NearestNeighbor,
}

// FilterNames returns the accepted resampling filter names, sorted.
func FilterNames() []string {
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseFilter returns the resampling filter with the given name. An empty
// name selects Lanczos.
func ParseFilter(name string) (imaging.ResampleFilter, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return imaging.Lanczos, nil
	}
	f, ok := filters[name]
	if !ok {
		return imaging.ResampleFilter{}, errors.Errorf("unknown filter %q (want one of %s)",
			name, strings.Join(FilterNames(), ", "))
	}
	return f, nil
}

// FitOptions controls how Fit crops and resamples.
type FitOptions struct {
	// Filter names the resampling filter used for the final resize
	// (see FilterNames). An empty name selects Lanczos.
	Filter string

	// Gravity positions the crop region. The zero value centers it.
	Gravity Gravity
}

// CoverCrop crops img to the aspect ratio of target using CoverRect, with
// the region positioned according to gravity. The returned rectangle is in
// img's coordinate space.
func CoverCrop(img image.Image, target Size, gravity Gravity) (image.Image, image.Rectangle, error) {
	bounds := img.Bounds()

	rect, err := CoverRect(SizeOf(img), target)
	if err != nil {
		return nil, image.Rectangle{}, err
	}

	if gravity == GravitySmart {
		rect, err = smartRect(img, rect.Size(), target)
		if err != nil {
			return nil, image.Rectangle{}, err
		}
	}

	rect = rect.Add(bounds.Min)
	return imaging.Crop(img, rect), rect, nil
}

// Fit cover-crops img to the aspect ratio of target and resizes the crop to
// exactly target. It returns the resized image and the crop rectangle that
// was taken from img.
func Fit(img image.Image, target Size, opts FitOptions) (image.Image, image.Rectangle, error) {
	filter, err := ParseFilter(opts.Filter)
	if err != nil {
		return nil, image.Rectangle{}, err
	}

	cropped, rect, err := CoverCrop(img, target, opts.Gravity)
	if err != nil {
		return nil, image.Rectangle{}, err
	}

	return imaging.Resize(cropped, target.Width, target.Height, filter), rect, nil
}
