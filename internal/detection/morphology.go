package detection

// Dilate performs a 3×3 flat dilation of src.
//
// The source is copied into a grid padded with one ring of zeros so every
// pixel can read its eight neighbours without bounds checks. A pixel is 1 in
// the output when it or any of its eight neighbours is nonzero, 0 otherwise.
// The output is 0/1, not 0/255.
func Dilate(src *Grid[uint8]) *Grid[uint8] {
	padded := NewGrid[uint8](src.Width+2, src.Height+2)
	for y, row := range src.Pix {
		copy(padded.Pix[y+1][1:], row)
	}

	out := NewGrid[uint8](src.Width, src.Height)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			// (x, y) in src is (x+1, y+1) in padded.
			hit := false
			for dy := 0; dy <= 2 && !hit; dy++ {
				row := padded.Pix[y+dy]
				hit = row[x] != 0 || row[x+1] != 0 || row[x+2] != 0
			}
			if hit {
				out.Pix[y][x] = 1
			}
		}
	}
	return out
}
