// Package imaging implements the image operations behind store-art: reading
// screenshot dimensions, cover-cropping a screenshot to a target aspect ratio,
// resizing it to an exact banner size and writing the result.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner.
// Crop rectangles follow image.Rectangle conventions: Min is inclusive and
// Max is exclusive, so a rectangle's width is Max.X - Min.X.
//
// # Cover Crop
//
// A cover crop fills the whole target frame with image content. Whichever
// source dimension overflows the target aspect ratio is trimmed and the kept
// region is centered. Offsets use integer floor division, so any odd pixel of
// slack ends up on the right or bottom edge.
//
// # Error Handling
//
// File level failures are reported with typed errors so callers can react to
// them with errors.As:
//   - NotFoundError: the input file does not exist
//   - DecodeError: the file exists but is not a readable image
//   - EncodeError: the output could not be encoded or written
//   - CapabilityError: the codecs needed for a run are not registered
package imaging
