package detection

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Labeling is the result of one connected-component pass.
//
// Labels holds 0 for background and the component label (1, 2, ...) for
// every foreground pixel. Areas[l] is the pixel count of label l; Areas[0]
// is unused. Labels are assigned in row-major first-encounter order and the
// slice is discarded with the Labeling, so nothing outlives the call.
type Labeling struct {
	Labels *Grid[int]
	Areas  []int
}

// Count returns the number of components found.
func (l *Labeling) Count() int {
	return len(l.Areas) - 1
}

// Largest returns the label with the strictly largest area, scanning labels
// in ascending order so the first of several equal-area components wins.
// It returns 0 when there are no components.
func (l *Labeling) Largest() (label, area int) {
	for lbl := 1; lbl < len(l.Areas); lbl++ {
		if l.Areas[lbl] > area {
			label, area = lbl, l.Areas[lbl]
		}
	}
	return label, area
}

// LabelComponents assigns a label to every maximal 4-connected set of
// nonzero pixels in bin.
//
// Each component is grown breadth-first from its first pixel in raster
// order. Pixels are marked visited when they are enqueued, so every
// foreground pixel is queued and labeled exactly once.
func LabelComponents(bin *Grid[uint8]) *Labeling {
	labels := NewGrid[int](bin.Width, bin.Height)
	visited := NewGrid[uint8](bin.Width, bin.Height)
	areas := []int{0}

	var queue pointQueue
	for y := 0; y < bin.Height; y++ {
		for x := 0; x < bin.Width; x++ {
			if bin.Pix[y][x] == 0 || visited.Pix[y][x] != 0 {
				continue
			}

			label := len(areas)
			areas = append(areas, 0)

			queue.reset()
			queue.push(Point{X: x, Y: y})
			visited.Pix[y][x] = 1

			for !queue.empty() {
				p := queue.pop()
				labels.Pix[p.Y][p.X] = label
				areas[label]++

				// up, down, left, right
				for _, n := range [4]Point{
					{X: p.X, Y: p.Y - 1},
					{X: p.X, Y: p.Y + 1},
					{X: p.X - 1, Y: p.Y},
					{X: p.X + 1, Y: p.Y},
				} {
					if !bin.Contains(n.X, n.Y) {
						continue
					}
					if bin.Pix[n.Y][n.X] == 0 || visited.Pix[n.Y][n.X] != 0 {
						continue
					}
					visited.Pix[n.Y][n.X] = 1
					queue.push(n)
				}
			}
		}
	}

	return &Labeling{Labels: labels, Areas: areas}
}

// SelectLargestComponent keeps only the largest 4-connected blob of bin.
//
// Surviving pixels keep their original value; every other pixel is zeroed.
// The labeling is returned for callers that want the component count or the
// winning area.
func SelectLargestComponent(bin *Grid[uint8]) (*Grid[uint8], *Labeling) {
	lab := LabelComponents(bin)
	winner, _ := lab.Largest()

	out := NewGrid[uint8](bin.Width, bin.Height)
	if winner == 0 {
		return out, lab
	}
	for y, row := range lab.Labels.Pix {
		for x, l := range row {
			if l == winner {
				out.Pix[y][x] = bin.Pix[y][x]
			}
		}
	}
	return out, lab
}

// pointQueue is a FIFO of points backed by a slice. Popped slots are
// reclaimed on reset, so one queue serves every component of a pass.
type pointQueue struct {
	items []Point
	head  int
}

func (q *pointQueue) push(p Point) {
	q.items = append(q.items, p)
}

func (q *pointQueue) pop() Point {
	p := q.items[q.head]
	q.head++
	return p
}

func (q *pointQueue) empty() bool {
	return q.head >= len(q.items)
}

func (q *pointQueue) reset() {
	q.items = q.items[:0]
	q.head = 0
}
