package state

import "testing"

func TestSquareLayout(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		maxCols  int
		wantCols int
		wantRows int
	}{
		{name: "zero entries", n: 0, maxCols: 5, wantCols: 1, wantRows: 0},
		{name: "single entry", n: 1, maxCols: 5, wantCols: 1, wantRows: 1},
		{name: "perfect square", n: 9, maxCols: 5, wantCols: 3, wantRows: 3},
		{name: "twelve entries six columns", n: 12, maxCols: 6, wantCols: 4, wantRows: 3},
		{name: "narrow terminal clamps columns", n: 5, maxCols: 2, wantCols: 2, wantRows: 3},
		{name: "seven entries", n: 7, maxCols: 10, wantCols: 3, wantRows: 3},
		{name: "two entries", n: 2, maxCols: 10, wantCols: 2, wantRows: 1},
		{name: "column cap of one", n: 4, maxCols: 1, wantCols: 1, wantRows: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := SquareLayout(tt.n, tt.maxCols)
			if cols != tt.wantCols || rows != tt.wantRows {
				t.Fatalf("SquareLayout(%d, %d) = (%d, %d), want (%d, %d)",
					tt.n, tt.maxCols, cols, rows, tt.wantCols, tt.wantRows)
			}
		})
	}
}

func TestSquareLayoutBounds(t *testing.T) {
	for n := 1; n <= 200; n++ {
		for maxCols := 1; maxCols <= 12; maxCols++ {
			cols, rows := SquareLayout(n, maxCols)
			if cols < 1 || cols > maxCols {
				t.Fatalf("n=%d maxCols=%d: cols %d out of range", n, maxCols, cols)
			}
			if cols*rows < n {
				t.Fatalf("n=%d maxCols=%d: grid %dx%d cannot hold all entries", n, maxCols, cols, rows)
			}
			if cols*(rows-1) >= n {
				t.Fatalf("n=%d maxCols=%d: grid %dx%d has a spare row", n, maxCols, cols, rows)
			}
		}
	}
}

func TestSquareLayoutDeterministic(t *testing.T) {
	for n := 0; n <= 50; n++ {
		c1, r1 := SquareLayout(n, 6)
		c2, r2 := SquareLayout(n, 6)
		if c1 != c2 || r1 != r2 {
			t.Fatalf("n=%d: layout not deterministic: (%d,%d) vs (%d,%d)", n, c1, r1, c2, r2)
		}
	}
}

func makeEntries(n int) []FileEntry {
	entries := make([]FileEntry, n)
	for i := range entries {
		entries[i] = FileEntry{Name: string(rune('a' + i%26))}
	}
	return entries
}

func TestUpdateLayoutUsesScreenWidth(t *testing.T) {
	s := NewAppState()
	s.ScreenWidth = 80 // 3 cells of width 22
	s.Entries = makeEntries(12)
	s.Selected = 20

	s.UpdateLayout()

	if s.Cols != 3 || s.Rows != 4 {
		t.Fatalf("expected 3x4 grid on an 80-column screen, got %dx%d", s.Cols, s.Rows)
	}
	if s.Selected != 11 {
		t.Fatalf("selection should be clamped to the last entry, got %d", s.Selected)
	}
}

func TestMoveSelectionClampsAtEdges(t *testing.T) {
	s := NewAppState()
	s.ScreenWidth = 200
	s.Entries = makeEntries(9) // 3x3
	s.UpdateLayout()

	MoveSelection(s, -1, 0)
	if s.Selected != 0 {
		t.Fatalf("moving up from the top row should clamp, got %d", s.Selected)
	}

	MoveSelection(s, 0, -1)
	if s.Selected != 0 {
		t.Fatalf("moving left from the first column should clamp, got %d", s.Selected)
	}

	s.Selected = 8
	MoveSelection(s, 1, 0)
	if s.Selected != 8 {
		t.Fatalf("moving down from the bottom row should clamp, got %d", s.Selected)
	}
	MoveSelection(s, 0, 1)
	if s.Selected != 8 {
		t.Fatalf("moving right from the last column should clamp, got %d", s.Selected)
	}
}

func TestMoveSelectionIgnoresPartialRowHoles(t *testing.T) {
	s := NewAppState()
	s.ScreenWidth = 200
	s.Entries = makeEntries(5) // 3 cols, 2 rows, bottom row holds 2
	s.UpdateLayout()
	if s.Cols != 3 || s.Rows != 2 {
		t.Fatalf("expected 3x2 grid, got %dx%d", s.Cols, s.Rows)
	}

	s.Selected = 2 // top-right
	MoveSelection(s, 1, 0)
	if s.Selected != 2 {
		t.Fatalf("moving into a bottom-row hole should be ignored, got %d", s.Selected)
	}

	s.Selected = 1
	MoveSelection(s, 1, 0)
	if s.Selected != 4 {
		t.Fatalf("moving into an occupied bottom cell should work, got %d", s.Selected)
	}
}

func TestMoveSelectionEmptyDirectory(t *testing.T) {
	s := NewAppState()
	s.ScreenWidth = 200
	s.UpdateLayout()

	MoveSelection(s, 1, 1)
	if s.Selected != 0 {
		t.Fatalf("selection must stay 0 in an empty directory, got %d", s.Selected)
	}
}
