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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"laptudirm.com/x/connect4/pkg/connect4"
)

var ErrNoMoves = errors.New("parse moves: no moves found")

// ParseMoves parses a move list into columns. Moves are separated by
// spaces or commas ("3 3 4,4"), or written as a single run of at least
// connect4.Columns digits ("3344556") where every digit is one move. A
// shorter lone number like "12" is one move. Columns are not range
// checked, that is left to the game.
func ParseMoves(list string) ([]int, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	if len(fields) == 0 {
		return nil, ErrNoMoves
	}

	// compact notation: one digit per move
	if len(fields) == 1 && len(fields[0]) >= connect4.Columns && isDigits(fields[0]) {
		fields = strings.Split(fields[0], "")
	}

	moves := make([]int, 0, len(fields))
	for _, field := range fields {
		col, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parse moves: bad column %q: %w", field, err)
		}

		moves = append(moves, col)
	}

	return moves, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
