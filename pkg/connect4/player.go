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

// Player represents one of the two sides of a game.
type Player uint8

const (
	PlayerA Player = iota
	PlayerB

	PlayerN = 2
)

// Opponent returns the other player.
func (player Player) Opponent() Player {
	return player ^ 1
}

// Cell represents the contents of a single square of the board: either
// Empty or a token owned by one of the players.
type Cell uint8

const Empty Cell = 0

// CellOf returns the Cell occupied by the given player's token.
func CellOf(player Player) Cell {
	return Cell(player + 1)
}

// Player returns the owner of the token in the cell, if any.
func (cell Cell) Player() (Player, bool) {
	if cell == Empty {
		return 0, false
	}

	return Player(cell - 1), true
}

func (cell Cell) IsEmpty() bool {
	return cell == Empty
}
