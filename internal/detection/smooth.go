package detection

const (
	meanRadius      = 4 // 9×9 window
	meanDenominator = 81.0
)

// MeanSmooth applies a 9×9 box mean to the edge-strength grid.
//
// Only interior pixels are written; the outermost ring stays 0. Neighbours
// outside the grid are skipped but the sum is always divided by 81, so
// windows that overhang the border are under-weighted rather than
// renormalized. Thresholds downstream are tuned against that bias.
func MeanSmooth(src *Grid[float64]) *Grid[float64] {
	out := NewGrid[float64](src.Width, src.Height)
	for y := 1; y < src.Height-1; y++ {
		for x := 1; x < src.Width-1; x++ {
			var sum float64
			for dy := -meanRadius; dy <= meanRadius; dy++ {
				ny := y + dy
				if ny < 0 || ny >= src.Height {
					continue
				}
				row := src.Pix[ny]
				for dx := -meanRadius; dx <= meanRadius; dx++ {
					nx := x + dx
					if nx < 0 || nx >= src.Width {
						continue
					}
					sum += row[nx]
				}
			}
			out.Pix[y][x] = sum / meanDenominator
		}
	}
	return out
}
