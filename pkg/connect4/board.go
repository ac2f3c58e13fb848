// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package connect4

import "errors"

const (
	Rows    = 6
	Columns = 7

	// ConnectN is the length of the line needed to win.
	ConnectN = 4
)

var (
	ErrColumnOutOfRange = errors.New("board: column out of range")
	ErrColumnFull       = errors.New("board: column is full")
)

// Grid is the raw cell storage of a board. Row 0 is the top of the board
// and row Rows-1 is the bottom, which is where tokens land first.
type Grid [Rows][Columns]Cell

// Board is a read-only view of the board of a Game, as returned by
// Game.Board. It always shows the game's current position.
type Board struct {
	*board
}

// board holds the tokens placed during a game. It is owned by its Game,
// which is the only thing allowed to change it.
type board struct {
	grid Grid
}

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Columns
}

// CellAt returns the contents of the given square. The square has to be
// in bounds.
func (b *board) CellAt(row, col int) Cell {
	return b.grid[row][col]
}

// IsColumnFull reports whether the topmost square of the column is taken.
func (b *board) IsColumnFull(col int) bool {
	return b.grid[0][col] != Empty
}

func (b *board) IsBoardFull() bool {
	for col := 0; col < Columns; col++ {
		if !b.IsColumnFull(col) {
			return false
		}
	}

	return true
}

// Grid returns a copy of the board's cells.
func (b *board) Grid() Grid {
	return b.grid
}

// dropToken places a token of the given player in the lowest empty square
// of the column and returns the row it landed on. The board is left
// untouched if the move is not possible.
func (b *board) dropToken(col int, player Player) (int, error) {
	if col < 0 || col >= Columns {
		return -1, ErrColumnOutOfRange
	}

	if b.IsColumnFull(col) {
		return -1, ErrColumnFull
	}

	for row := Rows - 1; row >= 0; row-- {
		if b.grid[row][col] == Empty {
			b.grid[row][col] = CellOf(player)
			return row, nil
		}
	}

	// unreachable while the gravity invariant holds
	return -1, ErrColumnFull
}

func (b *board) clear() {
	b.grid = Grid{}
}
