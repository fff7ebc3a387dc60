package imaging

import (
	"image"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Size is a width and height in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SizeOf returns the size of an image's bounds.
func SizeOf(img image.Image) Size {
	b := img.Bounds()
	return Size{Width: b.Dx(), Height: b.Dy()}
}

// String formats the size as "WxH".
func (s Size) String() string {
	return strconv.Itoa(s.Width) + "x" + strconv.Itoa(s.Height)
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// ParseSize parses a size written as "1024x500" or "1024,500".
func ParseSize(s string) (Size, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	sep := "x"
	if strings.Contains(s, ",") {
		sep = ","
	}
	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		return Size{}, errors.Errorf("invalid size %q: want WIDTHxHEIGHT", s)
	}

	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Size{}, errors.Wrapf(err, "invalid width in size %q", s)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Size{}, errors.Wrapf(err, "invalid height in size %q", s)
	}

	size := Size{Width: w, Height: h}
	if !size.Valid() {
		return Size{}, errors.Wrapf(ErrInvalidSize, "size %q", s)
	}
	return size, nil
}

// CoverRect returns the largest centered region of a src-sized image that has
// the aspect ratio of target.
//
// When the source is relatively wider than the target, the full source height
// is kept and the width is trimmed to floor(height * targetRatio). Otherwise
// the full width is kept and the height becomes floor(width / targetRatio).
// The region is centered with floor division, so it may sit one pixel toward
// the top-left.
//
// The returned rectangle is relative to a source whose origin is (0,0).
func CoverRect(src, target Size) (image.Rectangle, error) {
	if !target.Valid() {
		return image.Rectangle{}, errors.Wrapf(ErrInvalidSize, "target %s", target)
	}
	if !src.Valid() {
		return image.Rectangle{}, errors.Wrapf(ErrInvalidSize, "source %s", src)
	}

	// Ratios are compared and applied by cross-multiplication so the floors
	// are exact: sw/sh > tw/th  <=>  sw*th > sh*tw.
	var w, h int
	if src.Width*target.Height > src.Height*target.Width {
		// Wider than target: trim width
		h = src.Height
		w = h * target.Width / target.Height
	} else {
		// Taller than target (or equal): trim height
		w = src.Width
		h = w * target.Height / target.Width
	}
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, errors.Wrapf(ErrEmptyCrop, "source %s, target %s", src, target)
	}

	left := (src.Width - w) / 2
	top := (src.Height - h) / 2
	return image.Rect(left, top, left+w, top+h), nil
}
