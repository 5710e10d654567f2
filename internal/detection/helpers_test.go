package detection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// uniformImage creates a width×height image filled with one colour.
func uniformImage(width, height int, r, g, b uint8) *RGBImage {
	img := NewRGBImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGB(x, y, r, g, b)
		}
	}
	return img
}

// codeImage creates a white image with a black/white checkerboard block,
// a stand-in for a printed code pattern.
func codeImage(width, height, x0, y0, size, cell int) *RGBImage {
	img := uniformImage(width, height, 255, 255, 255)
	for y := y0; y < y0+size; y++ {
		for x := x0; x < x0+size; x++ {
			if ((x-x0)/cell+(y-y0)/cell)%2 == 0 {
				img.SetRGB(x, y, 0, 0, 0)
			}
		}
	}
	return img
}

// binaryGrid builds a grid from rows of '#' (255) and '.' (0).
func binaryGrid(rows ...string) *Grid[uint8] {
	g := NewGrid[uint8](len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				g.Pix[y][x] = 255
			}
		}
	}
	return g
}

// fillRect sets every pixel of the inclusive rectangle (x1,y1)-(x2,y2).
func fillRect(g *Grid[uint8], x1, y1, x2, y2 int, v uint8) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			g.Pix[y][x] = v
		}
	}
}

func requireShape[T Sample](t *testing.T, g *Grid[T], width, height int) {
	t.Helper()
	require.NotNil(t, g)
	require.Equal(t, width, g.Width)
	require.Equal(t, height, g.Height)
	require.NoError(t, g.Validate())
}
