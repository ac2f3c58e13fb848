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

package match

import (
	"fmt"

	"laptudirm.com/x/connect4/pkg/connect4"
)

// Result represents the result of a single game from PlayerA's side.
type Result int

const (
	Win  Result = +1
	Draw Result = 0
	Loss Result = -1
)

// GameWonBy maps the winning player to the game's Result.
var GameWonBy = [connect4.PlayerN]Result{
	connect4.PlayerA: Win,
	connect4.PlayerB: Loss,
}

// ResultOf converts a terminal game status to a Result. It returns false
// if the game is still in progress.
func ResultOf(status connect4.Status) (Result, bool) {
	if !status.IsTerminal() {
		return Draw, false
	}

	if winner, won := status.Winner(); won {
		return GameWonBy[winner], true
	}

	return Draw, true
}

// String returns a string representation of the given Result.
func (result Result) String() string {
	switch result {
	case Win:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case Loss:
		return "0-1"
	default:
		return "?-?"
	}
}

// Score is the running tally of a series of games, from PlayerA's side.
type Score struct {
	Wins, Losses, Draws int
}

func (score *Score) Add(result Result) {
	switch result {
	case Win:
		score.Wins++
	case Loss:
		score.Losses++
	default:
		score.Draws++
	}
}

func (score Score) Games() int {
	return score.Wins + score.Losses + score.Draws
}

// Points returns the points scored by each player, counting a draw as
// half a point for both.
func (score Score) Points() (a, b float64) {
	a = float64(score.Wins) + float64(score.Draws)/2
	b = float64(score.Losses) + float64(score.Draws)/2
	return a, b
}

func (score Score) String() string {
	a, b := score.Points()
	return fmt.Sprintf("%g-%g [W: %d, L: %d, D: %d]", a, b, score.Wins, score.Losses, score.Draws)
}
