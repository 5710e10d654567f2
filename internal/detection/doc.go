// Package detection locates the single dominant high-contrast region of an
// RGB image, such as a printed code pattern on a poster.
//
// The work is done by a fixed, non-learned pipeline. Each stage is a pure
// function from one grid to the next and every grid keeps the input's width
// and height:
//
//  1. Greyscale: BT.601 luminance (0.299*R + 0.587*G + 0.114*B), rounded,
//     then contrast-stretched to the full 0-255 range
//  2. GradientMagnitude: 3x3 Sobel operators, magnitude = sqrt(Gx² + Gy²)
//  3. MeanSmooth: 9x9 box mean with a fixed denominator of 81
//  4. Binarize: p >= threshold -> 255, else 0
//  5. SelectLargestComponent: 4-connected breadth-first labeling, keep the
//     largest blob
//  6. Dilate: 3x3 flat dilation, output 0/1
//  7. ExtractBounds: first and last foreground pixel in raster order
//
// Locator chains the stages and inflates the raw rectangle by MarginWidth
// and MarginHeight.
//
// # Border Rules
//
// The Sobel and mean stages write only interior pixels; the outermost
// one-pixel ring of their output is always 0. The mean stage divides by 81
// even when part of the window falls outside the grid, so values near the
// border are biased low. Default thresholds assume that bias.
//
// # Bounding Box
//
// ExtractBounds is a raster-scan approximation, not a min/max reduction. For
// blobs that are not convex the reported width or height may be smaller than
// the true extent.
//
// # Coordinate System
//
// Origin (0, 0) is the top-left pixel, X increases rightward and Y
// increases downward. Grid.Pix is indexed [y][x].
//
// # Errors
//
//   - ErrShapeMismatch: the input planes disagree with the declared size.
//     Nothing is processed.
//   - ErrNoRegion: no foreground pixel survived to the last stage. This is
//     different from a valid rectangle with zero width or height.
//
// A flat image (one luminance value) is not an error; Result.Degenerate is
// set and a warning is logged.
//
// # Thread Safety
//
// No package-level mutable state is used. Label grids and component areas
// live only for the duration of one call, so independent images can be
// processed concurrently as long as each goroutine owns its grids.
package detection
