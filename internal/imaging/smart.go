package imaging

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/muesli/smartcrop"
	"github.com/pkg/errors"
)

// resizer adapts imaging.Resize to the smartcrop resizer interface.
type resizer struct {
	filter imaging.ResampleFilter
}

func (r resizer) Resize(img image.Image, width, height uint) image.Image {
	return imaging.Resize(img, int(width), int(height), r.filter)
}

// smartRect returns a size-sized rectangle centered on the region smartcrop
// finds most interesting for a target-shaped frame, clamped to the source.
// The rectangle is relative to a (0,0) origin.
func smartRect(img image.Image, size image.Point, target Size) (image.Rectangle, error) {
	src := img
	if !img.Bounds().Min.Eq(image.Point{}) {
		src = imaging.Clone(img)
	}
	b := src.Bounds()

	analyzer := smartcrop.NewAnalyzer(resizer{filter: imaging.Linear})
	best, err := analyzer.FindBestCrop(src, target.Width, target.Height)
	if err != nil {
		return image.Rectangle{}, errors.Wrap(err, "finding best crop")
	}

	center := best.Min.Add(best.Max).Div(2)
	left := clamp(center.X-size.X/2, 0, b.Dx()-size.X)
	top := clamp(center.Y-size.Y/2, 0, b.Dy()-size.Y)
	return image.Rect(left, top, left+size.X, top+size.Y), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
