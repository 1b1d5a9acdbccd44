package entity

import (
	"errors"
	"fmt"
)

// Marker is the content of a single board cell.
type Marker uint8

const (
	EmptyCell Marker = iota
	PlayerX
	PlayerO
)

func (that Marker) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return " "
	}
}

// Opponent - returns the marker that moves after this one.
func (that Marker) Opponent() Marker {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Outcome is always derived from a Board, never stored on its own.
type Outcome uint8

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

func (that Outcome) String() string {
	switch that {
	case XWins:
		return "x-wins"
	case OWins:
		return "o-wins"
	case Draw:
		return "draw"
	default:
		return "in-progress"
	}
}

func (that Outcome) IsTerminal() bool {
	return that != InProgress
}

// Winner - returns the winning marker, or EmptyCell for a draw or an unfinished match.
func (that Outcome) Winner() Marker {
	switch that {
	case XWins:
		return PlayerX
	case OWins:
		return PlayerO
	default:
		return EmptyCell
	}
}

const (
	BoardSize = 9

	// cells are addressed 1..9 from the outside and 0..8 internally
	FirstCell  = 1
	LastCell   = BoardSize
	CenterCell = 4
)

var (
	ErrInvalidBoard = errors.New("invalid board layout")

	WinCombos = [8][3]int{
		// rows
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		// columns
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		// diagonals
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Board is a 3x3 tic-tac-toe grid stored row-major (index = row*3 + col).
type Board struct {
	cells [BoardSize]Marker
}

func NewBoard() *Board {
	return &Board{}
}

// ParseBoard - builds a board from a 9 character layout such as "XXX______".
// 'X' and 'O' (any case) are markers, '_', '.', '-' and ' ' are empty cells.
func ParseBoard(layout string) (*Board, error) {
	if len(layout) != BoardSize {
		return nil, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidBoard, BoardSize, len(layout))
	}

	board := NewBoard()
	for i := range len(layout) {
		switch layout[i] {
		case 'X', 'x':
			board.cells[i] = PlayerX
		case 'O', 'o':
			board.cells[i] = PlayerO
		case '_', '.', '-', ' ':
			board.cells[i] = EmptyCell
		default:
			return nil, fmt.Errorf("%w: unexpected %q at cell %d", ErrInvalidBoard, layout[i], i+1)
		}
	}

	return board, nil
}

// Place - puts marker into cell (1..9) if the cell is empty.
// On failure the board is left untouched.
func (that *Board) Place(cell int, marker Marker) bool {
	if cell < FirstCell || cell > LastCell || marker == EmptyCell {
		return false
	}

	index := cell - 1
	if that.cells[index] != EmptyCell {
		return false
	}

	that.cells[index] = marker

	return true
}

// Evaluate - checks the win lines in table order, then looks for a draw.
func (that *Board) Evaluate() Outcome {
	for _, combo := range WinCombos {
		a, b, c := that.cells[combo[0]], that.cells[combo[1]], that.cells[combo[2]]
		if a != EmptyCell && a == b && b == c {
			if a == PlayerX {
				return XWins
			}
			return OWins
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range that.cells {
		if cell == EmptyCell {
			return InProgress
		}
	}

	return Draw
}

// Cells - returns a copy of the grid for rendering.
func (that *Board) Cells() [BoardSize]Marker {
	return that.cells
}

// At - returns the marker stored at a 0-based index.
func (that *Board) At(index int) Marker {
	return that.cells[index]
}

// EmptyCells - returns the 0-based indices of all free cells in ascending order.
func (that *Board) EmptyCells() []int {
	empty := make([]int, 0, BoardSize)
	for i, cell := range that.cells {
		if cell == EmptyCell {
			empty = append(empty, i)
		}
	}

	return empty
}

func (that *Board) String() string {
	layout := make([]byte, BoardSize)
	for i, cell := range that.cells {
		if cell == EmptyCell {
			layout[i] = '_'
			continue
		}
		layout[i] = cell.String()[0]
	}

	return string(layout)
}
