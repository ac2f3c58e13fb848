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

// Status represents the state of a game. InProgress is the only state in
// which moves are accepted; every other state is terminal.
type Status uint8

const (
	InProgress Status = iota
	PlayerAWins
	PlayerBWins
	Draw
)

// WinFor returns the Status of a game won by the given player.
func WinFor(player Player) Status {
	return PlayerAWins + Status(player)
}

func (status Status) IsTerminal() bool {
	return status != InProgress
}

// Winner returns the player who won the game, if the game has been won.
func (status Status) Winner() (Player, bool) {
	switch status {
	case PlayerAWins:
		return PlayerA, true
	case PlayerBWins:
		return PlayerB, true
	default:
		return 0, false
	}
}
