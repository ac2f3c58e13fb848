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

package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"laptudirm.com/x/connect4/pkg/common"
	"laptudirm.com/x/connect4/pkg/connect4"
)

// OutcomeLabels maps move outcomes to human readable strings.
var OutcomeLabels = [...]string{
	connect4.Placed:          "success",
	connect4.ColumnFull:      "column full",
	connect4.InvalidColumn:   "invalid column",
	connect4.GameAlreadyOver: "no current game running",
}

// Renderer turns game state into text using the configured player names
// and glyphs.
type Renderer struct {
	names  [connect4.PlayerN]string
	glyphs [connect4.PlayerN + 1]string // indexed by connect4.Cell
}

func New(config common.Config) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var renderer Renderer
	renderer.glyphs[connect4.Empty] = config.Empty

	for _, player := range []connect4.Player{connect4.PlayerA, connect4.PlayerB} {
		settings := config.Player(player)

		glyph := settings.Glyph
		if attribute, found := common.ColorOf(settings.Color); config.Color && found {
			glyph = color.New(attribute, color.Bold).Sprint(glyph)
		}

		renderer.names[player] = settings.Name
		renderer.glyphs[connect4.CellOf(player)] = glyph
	}

	return &renderer, nil
}

func (renderer *Renderer) Player(player connect4.Player) string {
	return renderer.names[player]
}

func (renderer *Renderer) Status(status connect4.Status) string {
	if winner, won := status.Winner(); won {
		return renderer.Player(winner) + " wins"
	}

	if status == connect4.Draw {
		return "draw"
	}

	return "in progress"
}

func Outcome(outcome connect4.MoveOutcome) string {
	if int(outcome.Kind) < len(OutcomeLabels) {
		return OutcomeLabels[outcome.Kind]
	}

	return "unknown outcome"
}

// Board writes the board to w, top row first, followed by a line with the
// column numbers.
func (renderer *Renderer) Board(w io.Writer, board connect4.Board) error {
	var b strings.Builder

	for row := 0; row < connect4.Rows; row++ {
		for col := 0; col < connect4.Columns; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}

			b.WriteString(renderer.glyphs[board.CellAt(row, col)])
		}

		b.WriteByte('\n')
	}

	for col := 0; col < connect4.Columns; col++ {
		if col > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(strconv.Itoa(col))
	}

	b.WriteString("\n\n")

	_, err := io.WriteString(w, b.String())
	return err
}
