package detection

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when a grid's declared width/height disagree
// with its actual row and column counts.
var ErrShapeMismatch = errors.New("shape mismatch")

// Sample is the set of numeric types a Grid may hold.
//
// 8-bit samples carry colour, greyscale and binary stages; int carries
// component labels; float64 carries gradient and smoothing intermediates.
type Sample interface {
	~uint8 | ~int | ~float64
}

// Grid is a rectangular, row-major array of samples.
//
// Pix holds exactly Height rows of exactly Width samples. Every pipeline
// stage returns a new Grid with the same Width and Height as its input.
type Grid[T Sample] struct {
	Width  int
	Height int
	Pix    [][]T
}

// NewGrid allocates a zero-filled width×height grid.
func NewGrid[T Sample](width, height int) *Grid[T] {
	pix := make([][]T, height)
	for y := range pix {
		pix[y] = make([]T, width)
	}
	return &Grid[T]{Width: width, Height: height, Pix: pix}
}

// GridFromRows wraps existing rows, taking the width from the first row.
// The rows are not copied.
func GridFromRows[T Sample](rows [][]T) *Grid[T] {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	return &Grid[T]{Width: width, Height: len(rows), Pix: rows}
}

// At returns the sample at column x, row y.
func (g *Grid[T]) At(x, y int) T {
	return g.Pix[y][x]
}

// Set stores v at column x, row y.
func (g *Grid[T]) Set(x, y int, v T) {
	g.Pix[y][x] = v
}

// Contains reports whether (x, y) lies inside the grid.
func (g *Grid[T]) Contains(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Validate checks that Pix has exactly Height rows of exactly Width samples.
func (g *Grid[T]) Validate() error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrShapeMismatch)
	}
	if g.Width < 0 || g.Height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrShapeMismatch, g.Width, g.Height)
	}
	if len(g.Pix) != g.Height {
		return fmt.Errorf("%w: declared height %d, got %d rows", ErrShapeMismatch, g.Height, len(g.Pix))
	}
	for y, row := range g.Pix {
		if len(row) != g.Width {
			return fmt.Errorf("%w: row %d has %d samples, declared width %d", ErrShapeMismatch, y, len(row), g.Width)
		}
	}
	return nil
}

// CountNonZero returns the number of samples that are not zero.
func (g *Grid[T]) CountNonZero() int {
	n := 0
	for _, row := range g.Pix {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	out := NewGrid[T](g.Width, g.Height)
	for y, row := range g.Pix {
		copy(out.Pix[y], row)
	}
	return out
}

// RGBImage is the raw colour input of the pipeline: three equal-sized
// 8-bit planes.
type RGBImage struct {
	Width  int
	Height int
	Red    [][]uint8
	Green  [][]uint8
	Blue   [][]uint8
}

// NewRGBImage allocates a black width×height image.
func NewRGBImage(width, height int) *RGBImage {
	return &RGBImage{
		Width:  width,
		Height: height,
		Red:    NewGrid[uint8](width, height).Pix,
		Green:  NewGrid[uint8](width, height).Pix,
		Blue:   NewGrid[uint8](width, height).Pix,
	}
}

// SetRGB stores one pixel.
func (img *RGBImage) SetRGB(x, y int, r, g, b uint8) {
	img.Red[y][x] = r
	img.Green[y][x] = g
	img.Blue[y][x] = b
}

// Validate checks every plane against the declared width and height.
func (img *RGBImage) Validate() error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrShapeMismatch)
	}
	planes := []struct {
		name string
		pix  [][]uint8
	}{
		{"red", img.Red},
		{"green", img.Green},
		{"blue", img.Blue},
	}
	for _, p := range planes {
		g := &Grid[uint8]{Width: img.Width, Height: img.Height, Pix: p.pix}
		if err := g.Validate(); err != nil {
			return fmt.Errorf("%s plane: %w", p.name, err)
		}
	}
	return nil
}

// ToFloat converts any grid to float64 samples.
func ToFloat[T Sample](g *Grid[T]) *Grid[float64] {
	out := NewGrid[float64](g.Width, g.Height)
	for y, row := range g.Pix {
		for x, v := range row {
			out.Pix[y][x] = float64(v)
		}
	}
	return out
}
