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

package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/connect4/pkg/connect4"
	"laptudirm.com/x/connect4/pkg/match"
	"laptudirm.com/x/connect4/pkg/render"
)

const SPIN = 31

// connect4 replay
func Replay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [moves...]",
		Short: "Replay a game from its list of moves",
		Args:  cobra.ArbitraryArgs,
		Long: heredoc.Doc(`replay plays the given moves on a new board, one after the
			other, and shows the position after each of them. Moves
			are column numbers, separated by spaces or commas, or a
			single run of seven or more digits like 3344556 where
			every digit is a move. They are read from the --file if
			one is given.

			Moves which can't be made are skipped with a warning, and
			any moves left once the game is over are ignored.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			list := strings.Join(args, " ")
			if file, _ := cmd.Flags().GetString("file"); file != "" {
				contents, err := os.ReadFile(file)
				if err != nil {
					return err
				}

				list = string(contents)
			}

			moves, err := match.ParseMoves(list)
			if err != nil {
				return err
			}

			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			renderer, err := render.New(config)
			if err != nil {
				return err
			}

			delay := config.ReplayDelay
			if cmd.Flag("delay").Changed {
				delay, _ = cmd.Flags().GetDuration("delay")
			}

			quiet, _ := cmd.Flags().GetBool("quiet")

			game := connect4.New()
			if err := replay(cmd, game, renderer, moves, delay, quiet); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := renderer.Board(out, game.Board()); err != nil {
				return err
			}

			fmt.Fprintf(out, "%s after %d moves\n", renderer.Status(game.Status()), game.Moves())
			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "Read the moves from a file")
	cmd.Flags().DurationP("delay", "d", 0, "Pause between moves (default from the configuration)")
	cmd.Flags().BoolP("quiet", "q", false, "Only show the final position")

	return cmd
}

func replay(cmd *cobra.Command, game *connect4.Game, renderer *render.Renderer, moves []int, delay time.Duration, quiet bool) error {
	s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
	defer s.Stop()

	for i, col := range moves {
		player := renderer.Player(game.CurrentPlayer())

		outcome := game.DropToken(col)
		switch outcome.Kind {
		case connect4.Placed:
		case connect4.GameAlreadyOver:
			logrus.Warnf("Game is over, ignoring the last %d moves", len(moves)-i)
			return nil
		default:
			logrus.Warnf("Skipping move %d (%s, column %d): %s", i+1, player, col, render.Outcome(outcome))
			continue
		}

		if quiet || i == len(moves)-1 || game.Status().IsTerminal() {
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Move %d: %s drops into column %d\n", i+1, player, col)
		if err := renderer.Board(cmd.OutOrStdout(), game.Board()); err != nil {
			return err
		}

		if delay > 0 {
			s.Start()
			time.Sleep(delay)
			s.Stop()
		}
	}

	return nil
}
