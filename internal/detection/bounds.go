package detection

// Margins added to the raw raster-scan extent. The scan reports the first
// and last foreground pixels in raster order rather than a true min/max box,
// so the published rectangle is padded to compensate.
const (
	MarginWidth  = 10
	MarginHeight = 5
)

// Rectangle is an axis-aligned region in image coordinates.
//
// (X, Y) is the top-left origin; X grows rightward and Y grows downward.
type Rectangle struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// FirstForeground scans rows top to bottom, each row left to right, and
// returns the first nonzero pixel. ok is false when the grid is empty.
func FirstForeground[T Sample](g *Grid[T]) (p Point, ok bool) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Pix[y][x] != 0 {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}

// LastForeground scans rows bottom to top, each row right to left, and
// returns the first nonzero pixel met in that order.
func LastForeground[T Sample](g *Grid[T]) (p Point, ok bool) {
	for y := g.Height - 1; y >= 0; y-- {
		for x := g.Width - 1; x >= 0; x-- {
			if g.Pix[y][x] != 0 {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}

// ExtractBounds returns the raw raster-scan rectangle of g: origin at the
// first foreground pixel, size (last.X-first.X, last.Y-first.Y).
//
// This is not a true bounding box. For L-shaped or otherwise non-convex
// blobs the last pixel in raster order can lie left of the first one, which
// yields a narrow or even negative width. ok is false when g has no
// foreground pixel at all.
func ExtractBounds[T Sample](g *Grid[T]) (raw Rectangle, first, last Point, ok bool) {
	first, ok = FirstForeground(g)
	if !ok {
		return Rectangle{}, Point{}, Point{}, false
	}
	last, _ = LastForeground(g)
	raw = Rectangle{
		X:      first.X,
		Y:      first.Y,
		Width:  last.X - first.X,
		Height: last.Y - first.Y,
	}
	return raw, first, last, true
}

// InflateBounds adds the fixed publication margins to a raw rectangle.
func InflateBounds(raw Rectangle) Rectangle {
	raw.Width += MarginWidth
	raw.Height += MarginHeight
	return raw
}
