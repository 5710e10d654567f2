package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectLargestComponent_KeepsLargerBlob(t *testing.T) {
	g := NewGrid[uint8](40, 30)
	fillRect(g, 1, 1, 10, 5, 255)   // 10x5 = 50 pixels, found first
	fillRect(g, 20, 10, 29, 21, 255) // 10x12 = 120 pixels

	out, lab := SelectLargestComponent(g)

	requireShape(t, out, 40, 30)
	require.Equal(t, 2, lab.Count())
	assert.Equal(t, 50, lab.Areas[1])
	assert.Equal(t, 120, lab.Areas[2])

	winner, area := lab.Largest()
	assert.Equal(t, 2, winner)
	assert.Equal(t, 120, area)
	assert.Equal(t, area, out.CountNonZero())
	assert.Zero(t, out.At(5, 3), "smaller blob must be cleared")
	assert.Equal(t, uint8(255), out.At(25, 15))
}

func TestSelectLargestComponent_TieKeepsFirst(t *testing.T) {
	g := binaryGrid(
		"##...##",
		"##...##",
	)

	out, lab := SelectLargestComponent(g)

	winner, _ := lab.Largest()
	assert.Equal(t, 1, winner)
	assert.Equal(t, uint8(255), out.At(0, 0))
	assert.Zero(t, out.At(6, 0))
}

func TestSelectLargestComponent_KeepsIntensity(t *testing.T) {
	g := NewGrid[uint8](4, 1)
	g.Pix[0] = []uint8{7, 9, 0, 3}

	out, _ := SelectLargestComponent(g)

	assert.Equal(t, []uint8{7, 9, 0, 0}, out.Pix[0])
}

func TestSelectLargestComponent_Empty(t *testing.T) {
	out, lab := SelectLargestComponent(NewGrid[uint8](5, 5))

	assert.Zero(t, lab.Count())
	winner, area := lab.Largest()
	assert.Zero(t, winner)
	assert.Zero(t, area)
	assert.Zero(t, out.CountNonZero())
}

func TestLabelComponents_DiagonalsAreSeparate(t *testing.T) {
	g := binaryGrid(
		"#.",
		".#",
	)

	lab := LabelComponents(g)

	assert.Equal(t, 2, lab.Count())
	assert.Equal(t, 1, lab.Labels.At(0, 0))
	assert.Equal(t, 2, lab.Labels.At(1, 1))
}

func TestLabelComponents_RowMajorOrder(t *testing.T) {
	g := binaryGrid(
		"..#..#",
		"#.#...",
		"#.###.",
		"......",
		".##..#",
	)

	lab := LabelComponents(g)

	want := [][]int{
		{0, 0, 1, 0, 0, 2},
		{3, 0, 1, 0, 0, 0},
		{3, 0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 4, 4, 0, 0, 5},
	}
	assert.Equal(t, want, lab.Labels.Pix)
	assert.Equal(t, []int{0, 5, 1, 2, 2, 1}, lab.Areas)
}

func TestLabelComponents_UShapeIsOneComponent(t *testing.T) {
	// The two arms meet only at the bottom; breadth-first growth from the
	// top-left arm must still reach the right arm.
	g := binaryGrid(
		"#...#",
		"#...#",
		"#####",
	)

	lab := LabelComponents(g)

	assert.Equal(t, 1, lab.Count())
	assert.Equal(t, 9, lab.Areas[1])
	assert.Equal(t, 1, lab.Labels.At(4, 0))
}

func TestLabelComponents_EveryPixelOnce(t *testing.T) {
	g := NewGrid[uint8](30, 30)
	fillRect(g, 0, 0, 29, 29, 255)

	lab := LabelComponents(g)

	require.Equal(t, 1, lab.Count())
	assert.Equal(t, 900, lab.Areas[1])
}
