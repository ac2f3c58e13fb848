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

package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/connect4/pkg/connect4"
	"laptudirm.com/x/connect4/pkg/render"
)

var ErrInputClosed = errors.New("client: input closed")

// Client is a text front end for a game. It reads columns from its input,
// one whitespace separated word per move, and writes the board and its
// prompts to its output.
type Client struct {
	Game     *connect4.Game
	Renderer *render.Renderer

	scanner *bufio.Scanner
	out     io.Writer
}

func New(game *connect4.Game, renderer *render.Renderer, in io.Reader, out io.Writer) *Client {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Client{
		Game:     game,
		Renderer: renderer,

		scanner: scanner,
		out:     out,
	}
}

// PlayGame prompts the players for moves until the game is over, and then
// prints the final board and the result.
func (client *Client) PlayGame() error {
	for client.Game.Status() == connect4.InProgress {
		if err := client.Renderer.Board(client.out, client.Game.Board()); err != nil {
			return err
		}

		player := client.Renderer.Player(client.Game.CurrentPlayer())
		fmt.Fprintf(client.out, "%s choose a column (0-%d): ", player, connect4.Columns-1)

		col, err := client.readColumn()
		if err != nil {
			return err
		}

		outcome := client.Game.DropToken(col)
		if !outcome.OK() {
			fmt.Fprintf(client.out, "Supplied an invalid move! Error: %s\n", render.Outcome(outcome))
		}
	}

	if err := client.Renderer.Board(client.out, client.Game.Board()); err != nil {
		return err
	}

	fmt.Fprintf(client.out, "Game over: %s!\n", client.Renderer.Status(client.Game.Status()))
	return nil
}

// readColumn reads the next column from the input, complaining about and
// skipping anything that isn't a number.
func (client *Client) readColumn() (int, error) {
	for client.scanner.Scan() {
		word := client.scanner.Text()

		col, err := strconv.Atoi(word)
		if err == nil {
			return col, nil
		}

		logrus.Debugf("client: bad input %q: %v", word, err)
		fmt.Fprintf(client.out, "\n%q is not a column, choose a column (0-%d): ", word, connect4.Columns-1)
	}

	if err := client.scanner.Err(); err != nil {
		return 0, err
	}

	return 0, ErrInputClosed
}
