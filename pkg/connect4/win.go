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

// axes are the four line directions through a square: vertical,
// horizontal, and the two diagonals.
var axes = [4][2]int{
	{1, 0},
	{0, 1},
	{1, 1},
	{1, -1},
}

// isWin checks whether the token at (row, col) completes a line of at
// least ConnectN tokens of the given player. Only lines through the
// square are looked at, since any new line has to contain the new token.
func (game *Game) isWin(row, col int, player Player) bool {
	for _, axis := range axes {
		count := 1 +
			game.countInDirection(row, col, axis[0], axis[1], player) +
			game.countInDirection(row, col, -axis[0], -axis[1], player)

		if count >= ConnectN {
			return true
		}
	}

	return false
}

// countInDirection counts the contiguous tokens of the given player
// starting next to (row, col) and moving by (dRow, dCol).
func (game *Game) countInDirection(row, col, dRow, dCol int, player Player) int {
	cell := CellOf(player)

	count := 0
	r, c := row+dRow, col+dCol
	for InBounds(r, c) && game.board.CellAt(r, c) == cell {
		count++
		r += dRow
		c += dCol
	}

	return count
}
