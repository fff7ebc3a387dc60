package imaging

import (
	"bytes"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// statSource returns a NotFoundError if path does not exist.
func statSource(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &NotFoundError{Path: path, Err: err}
		}
		return errors.Wrapf(err, "failed to stat %s", path)
	}
	return nil
}

// ReadDimensions returns the pixel size of the image at path.
//
// Only the image header is decoded, so this is cheap even for large files.
// The file is closed before ReadDimensions returns, on every path.
//
// # Errors
//
//   - NotFoundError if the file does not exist
//   - DecodeError if the header is not a recognized image format
func ReadDimensions(path string) (Size, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Size{}, &NotFoundError{Path: path, Err: err}
		}
		return Size{}, errors.Wrap(err, "failed to open image")
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Size{}, &DecodeError{Path: path, Err: err}
	}
	return Size{Width: cfg.Width, Height: cfg.Height}, nil
}

// Load decodes the image at path, applying any EXIF orientation so the
// result is upright the way a phone gallery would show it.
//
// # Errors
//
//   - NotFoundError if the file does not exist
//   - DecodeError if the file is not a readable image
func Load(path string) (image.Image, error) {
	if err := statSource(path); err != nil {
		return nil, err
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return img, nil
}

// Save encodes img in the format implied by path's extension and writes it
// to path, replacing any existing file.
//
// The image is fully encoded in memory and written to a temporary file in
// the destination directory before being renamed into place, so a failed
// Save never leaves a partial file at path.
func Save(img image.Image, path string) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return &EncodeError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}
