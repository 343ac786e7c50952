package state

import "math"

// CellWidth is the fixed grid cell width: 20 display cells for the entry
// name plus 2 for the selection prefix.
const (
	CellWidth = 22
	NameWidth = 20
)

// SquareLayout distributes n items over a grid that is as close to square
// as maxCols allows. Candidate column counts are scanned outward from the
// ideal (ceil of sqrt(n)) in the order ideal, ideal+1, ideal-1, ideal+2,
// ideal-2, ..., and the first candidate reaching the minimal |cols-rows|
// score wins, so ties resolve to the candidate nearest the ideal.
// n == 0 yields (1, 0): one nominal column, no grid.
func SquareLayout(n, maxCols int) (cols, rows int) {
	if maxCols < 1 {
		maxCols = 1
	}
	if n <= 0 {
		return 1, 0
	}

	ideal := int(math.Ceil(math.Sqrt(float64(n))))
	if ideal < 1 {
		ideal = 1
	}
	if ideal > maxCols {
		ideal = maxCols
	}

	bestCols := ideal
	bestScore := math.MaxInt

	for dist := 0; dist <= maxCols; dist++ {
		for _, candidate := range []int{ideal + dist, ideal - dist} {
			if candidate < 1 || candidate > maxCols {
				continue
			}
			r := (n + candidate - 1) / candidate
			score := candidate - r
			if score < 0 {
				score = -score
			}
			if score < bestScore {
				bestScore = score
				bestCols = candidate
			}
			if dist == 0 {
				break
			}
		}
	}

	return bestCols, (n + bestCols - 1) / bestCols
}

// UpdateLayout recomputes the grid shape from the entry count and the
// terminal width, then re-clamps the selection.
func (s *AppState) UpdateLayout() {
	maxCols := s.ScreenWidth / CellWidth
	if maxCols < 1 {
		maxCols = 1
	}
	s.Cols, s.Rows = SquareLayout(len(s.Entries), maxCols)
	s.clampSelection()
}

// MoveSelection shifts the selection by whole grid rows and columns,
// clamping at the grid edges with no wraparound. A move that would land
// past the last entry of a partial bottom row is ignored.
func MoveSelection(s *AppState, deltaRow, deltaCol int) {
	n := len(s.Entries)
	if n == 0 || s.Cols < 1 {
		return
	}

	row := s.Selected / s.Cols
	col := s.Selected % s.Cols

	row += deltaRow
	col += deltaCol

	lastRow := (n - 1) / s.Cols
	if row < 0 {
		row = 0
	}
	if row > lastRow {
		row = lastRow
	}
	if col < 0 {
		col = 0
	}
	if col > s.Cols-1 {
		col = s.Cols - 1
	}

	idx := row*s.Cols + col
	if idx >= n {
		return
	}
	s.Selected = idx
}
