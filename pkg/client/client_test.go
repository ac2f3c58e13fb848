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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"laptudirm.com/x/connect4/pkg/common"
	"laptudirm.com/x/connect4/pkg/connect4"
	"laptudirm.com/x/connect4/pkg/render"
)

func newClient(t *testing.T, input string) (*Client, *bytes.Buffer) {
	t.Helper()

	config := common.Default()
	config.Color = false

	renderer, err := render.New(config)
	require.NoError(t, err)

	var out bytes.Buffer
	return New(connect4.New(), renderer, strings.NewReader(input), &out), &out
}

func TestPlayGame(t *testing.T) {
	t.Run("game played to a win", func(t *testing.T) {
		client, out := newClient(t, "0\n1\n0 1\n0\n1\n0\n")

		require.NoError(t, client.PlayGame())
		require.Equal(t, connect4.PlayerAWins, client.Game.Status())

		output := out.String()
		require.Equal(t, 4, strings.Count(output, "Player A choose a column (0-6): "))
		require.Equal(t, 3, strings.Count(output, "Player B choose a column (0-6): "))
		require.True(t, strings.HasSuffix(output, "Game over: Player A wins!\n"))
		require.NotContains(t, output, "invalid move")
	})

	t.Run("rejected moves are reported and retried", func(t *testing.T) {
		client, out := newClient(t, "7 -1 0 1 0 1 0 1 0")

		require.NoError(t, client.PlayGame())
		require.Equal(t, connect4.PlayerAWins, client.Game.Status())
		require.Equal(t, 7, client.Game.Moves())

		output := out.String()
		require.Equal(t, 2, strings.Count(output, "Supplied an invalid move! Error: invalid column\n"))
	})

	t.Run("full columns", func(t *testing.T) {
		client, out := newClient(t, "3 3 3 3 3 3 3 0 1 0 1 0 1 0")

		require.NoError(t, client.PlayGame())
		require.Contains(t, out.String(), "Supplied an invalid move! Error: column full\n")
		require.Equal(t, connect4.PlayerAWins, client.Game.Status())
	})

	t.Run("words that aren't columns", func(t *testing.T) {
		client, out := newClient(t, "zero 0 1 0 1 0 1 0")

		require.NoError(t, client.PlayGame())
		require.Contains(t, out.String(), `"zero" is not a column`)
		require.Equal(t, 7, client.Game.Moves())
	})

	t.Run("input runs out", func(t *testing.T) {
		client, _ := newClient(t, "0 1 0")

		require.ErrorIs(t, client.PlayGame(), ErrInputClosed)
		require.Equal(t, connect4.InProgress, client.Game.Status())
		require.Equal(t, 3, client.Game.Moves())
	})

	t.Run("consecutive games", func(t *testing.T) {
		client, out := newClient(t, "0 1 0 1 0 1 0  1 0 1 0 1 0 2 0")

		require.NoError(t, client.PlayGame())
		require.Equal(t, connect4.PlayerAWins, client.Game.Status())

		client.Game.Reset()
		require.NoError(t, client.PlayGame())
		require.Equal(t, connect4.PlayerBWins, client.Game.Status())
		require.Contains(t, out.String(), "Game over: Player B wins!\n")
	})
}
