package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// continuation marks the second column of a double-width glyph.
const continuation rune = 0

// Cell is a single character position on a Screen.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D character buffer for rendering page and game graphics.
// It decouples drawing from the terminal: pages draw runes into cells while the
// platform layer converts the buffer into styled output.
//
// Double-width glyphs (emoji cars and road works) occupy two cells; the second
// cell holds a continuation marker and is skipped when the buffer is printed.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		for x := 0; x < copyW; x++ {
			s.cells[y][x] = oldCells[y][x]
		}
		// A wide glyph cut in half by the new right edge becomes a blank.
		if copyW > 0 && copyW < oldW && oldCells[y][copyW].Rune == continuation {
			s.cells[y][copyW-1] = Cell{Rune: ' '}
		}
	}
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	s.Fill(' ')
}

// Fill fills the entire screen with the given rune.
func (s *Screen) Fill(r rune) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: r}
		}
	}
}

// Set places a rune at the given position using the default color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a colored rune at the given position and returns the
// number of columns it occupies. Wide runes that do not fit are clipped.
func (s *Screen) SetColored(x, y int, r rune, c Color) int {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		w = 1
	}
	if y < 0 || y >= s.height || x < 0 || x+w > s.width {
		return w
	}

	s.release(x, y)
	if w == 2 {
		s.release(x+1, y)
		s.cells[y][x+1] = Cell{Rune: continuation, Color: c}
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
	return w
}

// release blanks the other half of any wide glyph overlapping (x, y).
func (s *Screen) release(x, y int) {
	row := s.cells[y]
	if row[x].Rune == continuation && x > 0 {
		row[x-1] = Cell{Rune: ' '}
	}
	if x+1 < s.width && row[x+1].Rune == continuation && row[x].Rune != continuation {
		row[x+1] = Cell{Rune: ' '}
	}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// IsContinuation reports whether the cell is the right half of a wide glyph.
func (s *Screen) IsContinuation(x, y int) bool {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return false
	}
	return s.cells[y][x].Rune == continuation
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes a colored string horizontally starting at (x, y).
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	col := x
	for _, r := range text {
		col += s.SetColored(col, y, r, c)
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - runewidth.StringWidth(text)) / 2
	s.DrawText(x, y, text)
}

// String converts the screen buffer to a renderable string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		s.writeRow(&sb, y)
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	s.writeRow(&sb, y)
	return sb.String()
}

func (s *Screen) writeRow(sb *strings.Builder, y int) {
	for x := 0; x < s.width; x++ {
		if r := s.cells[y][x].Rune; r != continuation {
			sb.WriteRune(r)
		}
	}
}
