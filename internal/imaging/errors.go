package imaging

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidSize is returned for a source or target size with a
	// non-positive width or height.
	ErrInvalidSize = errors.New("width and height must be positive")

	// ErrEmptyCrop is returned when the cover rectangle of a source has no
	// area, which happens for sources only a few pixels across.
	ErrEmptyCrop = errors.New("cover crop has zero area")
)

// NotFoundError reports an input file that does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("source image not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// DecodeError reports a file that could not be decoded as an image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports an output image that could not be encoded or written.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode image %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// CapabilityError reports that image support is missing altogether, as
// opposed to a problem with one particular file.
type CapabilityError struct {
	Err error
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("imaging support unavailable: %v", e.Err)
}

func (e *CapabilityError) Unwrap() error { return e.Err }
