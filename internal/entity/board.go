package entity

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
)

const (
	DefaultHeight = 6
	DefaultWidth  = 7

	// RunLength is the number of aligned pieces that wins the game.
	RunLength = 4

	// MaxDimension bounds each side so that height*width neither overflows nor
	// allocates an unreasonable grid.
	MaxDimension = 1024
)

// Cell addresses a board position. Row 0 is the top row.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// scan directions in the order they are checked from every starting cell:
// horizontal, vertical, down-right, down-left.
var directions = [4]Cell{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 1, Col: 1},
	{Row: 1, Col: -1},
}

type Board struct {
	height int
	width  int
	cells  []PlayerID
}

// NewBoard creates an empty height×width grid. Dimensions are validated by ValidateDimensions.
func NewBoard(height, width int) *Board {
	return &Board{
		height: height,
		width:  width,
		cells:  make([]PlayerID, height*width),
	}
}

// ValidateDimensions rejects grids with a non-positive side or a side above MaxDimension.
func ValidateDimensions(height, width int) error {
	if height <= 0 || width <= 0 || height > MaxDimension || width > MaxDimension {
		return fmt.Errorf("%w: %dx%d, each side must be in [1, %d]",
			apperror.ErrInvalidDimensions, height, width, MaxDimension)
	}

	return nil
}

func (that *Board) Height() int {
	return that.height
}

func (that *Board) Width() int {
	return that.width
}

func (that *Board) inBounds(row, col int) bool {
	return row >= 0 && row < that.height && col >= 0 && col < that.width
}

// Owner returns the player occupying the cell, or NoPlayer for empty and out-of-range cells.
func (that *Board) Owner(row, col int) PlayerID {
	if !that.inBounds(row, col) {
		return NoPlayer
	}

	return that.cells[row*that.width+col]
}

// LowestEmptyRow returns the row a piece dropped into col would land on.
func (that *Board) LowestEmptyRow(col int) (int, bool) {
	if col < 0 || col >= that.width {
		return -1, false
	}

	for row := that.height - 1; row >= 0; row-- {
		if that.cells[row*that.width+col] == NoPlayer {
			return row, true
		}
	}

	return -1, false
}

// Drop places player in the lowest empty row of col and returns that row.
func (that *Board) Drop(col int, player PlayerID) (int, bool) {
	row, ok := that.LowestEmptyRow(col)
	if !ok {
		return -1, false
	}

	that.cells[row*that.width+col] = player

	return row, true
}

// IsFull reports whether every cell is occupied.
func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == NoPlayer {
			return false
		}
	}

	return true
}

// HasWin reports whether player owns four aligned cells anywhere on the board.
func (that *Board) HasWin(player PlayerID) bool {
	_, ok := that.WinningRun(player)
	return ok
}

// WinningRun returns the first run of four cells owned by player. Starting
// cells are visited in row-major order and only forward directions are
// checked, so every run is found from its top-most (then left-most or
// right-most for the anti-diagonal) end.
func (that *Board) WinningRun(player PlayerID) ([]Cell, bool) {
	if player == NoPlayer {
		return nil, false
	}

	for row := 0; row < that.height; row++ {
		for col := 0; col < that.width; col++ {
			for _, dir := range directions {
				if that.isRun(row, col, dir, player) {
					return runCells(row, col, dir), true
				}
			}
		}
	}

	return nil, false
}

func (that *Board) isRun(row, col int, dir Cell, player PlayerID) bool {
	for i := 0; i < RunLength; i++ {
		r, c := row+dir.Row*i, col+dir.Col*i
		if !that.inBounds(r, c) || that.cells[r*that.width+c] != player {
			return false
		}
	}

	return true
}

func runCells(row, col int, dir Cell) []Cell {
	run := make([]Cell, 0, RunLength)
	for i := 0; i < RunLength; i++ {
		run = append(run, Cell{Row: row + dir.Row*i, Col: col + dir.Col*i})
	}

	return run
}

// Rows returns a copy of the grid as rows, top row first.
func (that *Board) Rows() [][]PlayerID {
	rows := make([][]PlayerID, that.height)
	for row := range rows {
		rows[row] = make([]PlayerID, that.width)
		copy(rows[row], that.cells[row*that.width:(row+1)*that.width])
	}

	return rows
}
