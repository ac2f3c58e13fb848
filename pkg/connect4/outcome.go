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

// OutcomeKind enumerates the possible results of a move request.
type OutcomeKind uint8

const (
	Placed OutcomeKind = iota
	ColumnFull
	InvalidColumn
	GameAlreadyOver
)

// MoveOutcome is the result of Game.DropToken. The landing row is only
// present when the token was placed.
type MoveOutcome struct {
	Kind OutcomeKind
	row  int
}

func placedAt(row int) MoveOutcome {
	return MoveOutcome{Kind: Placed, row: row}
}

func rejected(kind OutcomeKind) MoveOutcome {
	return MoveOutcome{Kind: kind, row: -1}
}

// OK reports whether the token was placed.
func (outcome MoveOutcome) OK() bool {
	return outcome.Kind == Placed
}

// Row returns the row the token landed on.
func (outcome MoveOutcome) Row() (int, bool) {
	if outcome.Kind != Placed {
		return -1, false
	}

	return outcome.row, true
}
