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

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Game is the connect four state machine. It owns its Board, keeps track
// of whose turn it is and decides when the game is over.
//
// A Game does no synchronization of its own; concurrent users have to
// serialize access to it.
type Game struct {
	board  board
	player Player
	status Status
	moves  int
}

// New creates a game with an empty board and PlayerA to move.
func New() *Game {
	var game Game
	game.Reset()
	return &game
}

// CurrentPlayer returns the player to move. Once the game is over it is
// the player who made the last move.
func (game *Game) CurrentPlayer() Player {
	return game.player
}

func (game *Game) Status() Status {
	return game.status
}

// Board returns a read-only view of the game's board.
func (game *Game) Board() Board {
	return Board{&game.board}
}

// Moves returns the number of tokens placed since the last reset.
func (game *Game) Moves() int {
	return game.moves
}

// DropToken drops a token of the current player into the given column.
// Rejected moves leave the game exactly as it was.
func (game *Game) DropToken(col int) MoveOutcome {
	if game.status.IsTerminal() {
		logrus.Tracef("connect4: rejected move %d: game is over", col)
		return rejected(GameAlreadyOver)
	}

	mover := game.player
	row, err := game.board.dropToken(col, mover)
	if err != nil {
		logrus.Tracef("connect4: rejected move %d: %v", col, err)
		if errors.Is(err, ErrColumnOutOfRange) {
			return rejected(InvalidColumn)
		}

		return rejected(ColumnFull)
	}

	game.moves++
	logrus.Tracef("connect4: player %d dropped into column %d, row %d", mover, col, row)

	switch {
	case game.isWin(row, col, mover):
		game.status = WinFor(mover)
		logrus.Debugf("connect4: player %d won after %d moves", mover, game.moves)
	case game.board.IsBoardFull():
		game.status = Draw
		logrus.Debugf("connect4: draw after %d moves", game.moves)
	default:
		game.player = mover.Opponent()
	}

	return placedAt(row)
}

// Reset clears the board and starts a new game with PlayerA to move.
func (game *Game) Reset() {
	game.board.clear()
	game.player = PlayerA
	game.status = InProgress
	game.moves = 0
}
