package detection

// Binary foreground and background levels produced by Binarize.
const (
	Foreground uint8 = 255
	Background uint8 = 0
)

// Binarize maps every sample p to 255 when p >= threshold and to 0 otherwise.
func Binarize[T Sample](src *Grid[T], threshold float64) *Grid[uint8] {
	out := NewGrid[uint8](src.Width, src.Height)
	for y, row := range src.Pix {
		for x, v := range row {
			if float64(v) >= threshold {
				out.Pix[y][x] = Foreground
			}
		}
	}
	return out
}
