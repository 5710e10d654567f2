package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid[float64](7, 3)
	requireShape(t, g, 7, 3)
	assert.Zero(t, g.CountNonZero())
}

func TestGridValidate(t *testing.T) {
	tests := []struct {
		name    string
		grid    *Grid[uint8]
		wantErr bool
	}{
		{"valid", NewGrid[uint8](4, 2), false},
		{"empty", NewGrid[uint8](0, 0), false},
		{"too few rows", &Grid[uint8]{Width: 2, Height: 3, Pix: [][]uint8{{0, 0}, {0, 0}}}, true},
		{"short row", &Grid[uint8]{Width: 2, Height: 2, Pix: [][]uint8{{0, 0}, {0}}}, true},
		{"negative", &Grid[uint8]{Width: -1, Height: 0}, true},
		{"nil", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.grid.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrShapeMismatch)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRGBImageValidate(t *testing.T) {
	img := NewRGBImage(5, 4)
	require.NoError(t, img.Validate())

	img.Green = img.Green[:3]
	err := img.Validate()
	require.ErrorIs(t, err, ErrShapeMismatch)
	assert.Contains(t, err.Error(), "green plane")
}

func TestGridCloneIsDeep(t *testing.T) {
	g := binaryGrid("#.", ".#")
	c := g.Clone()
	c.Set(0, 0, 0)

	assert.Equal(t, uint8(255), g.At(0, 0))
	assert.Equal(t, 1, c.CountNonZero())
}

func TestGridFromRows(t *testing.T) {
	g := GridFromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	requireShape(t, g, 3, 2)
	assert.Equal(t, 6, g.At(2, 1))
	assert.True(t, g.Contains(2, 1))
	assert.False(t, g.Contains(3, 1))
	assert.False(t, g.Contains(0, -1))
}
