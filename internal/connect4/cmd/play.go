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
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/connect4/pkg/client"
	"laptudirm.com/x/connect4/pkg/connect4"
	"laptudirm.com/x/connect4/pkg/match"
	"laptudirm.com/x/connect4/pkg/render"
)

var ErrNoGames = errors.New("play: number of games has to be positive")

// connect4 play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game of connect four against another person",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts a game of connect four between two players
			sharing the terminal. On their turn, a player types the
			number of the column to drop their token into. Moves which
			can't be made are reported and the same player is asked
			again.

			With --games, several games are played one after the
			other on the same board and a running score is shown,
			followed by the estimated elo difference between the two
			players. Both are given from the first player's side.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := cmd.Flags().GetInt("games")
			if err != nil {
				return err
			}

			if games < 1 {
				return ErrNoGames
			}

			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			renderer, err := render.New(config)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			game := connect4.New()
			text := client.New(game, renderer, cmd.InOrStdin(), out)

			var score match.Score
			for i := 1; i <= games; i++ {
				game.Reset()
				logrus.Debugf("Starting game %d of %d", i, games)

				if err := text.PlayGame(); err != nil {
					return fmt.Errorf("game %d: %w", i, err)
				}

				result, _ := match.ResultOf(game.Status())
				score.Add(result)

				if games > 1 {
					fmt.Fprintf(out, "Game %d: %s, score %s\n\n", i, result, score)
				}
			}

			if games > 1 {
				muMin, mu, muMax := score.Elo()
				fmt.Fprintf(out, "Elo difference: %+.1f [%+.1f, %+.1f]\n", mu, muMin, muMax)
			}

			return nil
		},
	}

	cmd.Flags().IntP("games", "g", 1, "Number of games to play")

	return cmd
}
