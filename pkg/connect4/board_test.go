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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardDropToken(t *testing.T) {
	t.Run("tokens stack from the bottom row", func(t *testing.T) {
		var b board

		for i := 0; i < Rows; i++ {
			row, err := b.dropToken(2, Player(i%2))
			require.NoError(t, err)
			require.Equal(t, Rows-1-i, row, "token should land on the lowest empty row")
			require.Equal(t, CellOf(Player(i%2)), b.CellAt(row, 2))
		}

		require.True(t, b.IsColumnFull(2))
		require.False(t, b.IsBoardFull())
	})

	t.Run("out of range columns are rejected", func(t *testing.T) {
		var b board
		_, err := b.dropToken(0, PlayerA)
		require.NoError(t, err)

		before := b.Grid()
		for _, col := range []int{-100, -1, Columns, Columns + 1, 1 << 20} {
			row, err := b.dropToken(col, PlayerB)
			require.ErrorIs(t, err, ErrColumnOutOfRange)
			require.Equal(t, -1, row)
			require.Equal(t, before, b.Grid(), "board should not change")
		}
	})

	t.Run("full columns are rejected", func(t *testing.T) {
		var b board
		for i := 0; i < Rows; i++ {
			_, err := b.dropToken(5, PlayerA)
			require.NoError(t, err)
		}

		before := b.Grid()
		row, err := b.dropToken(5, PlayerB)
		require.ErrorIs(t, err, ErrColumnFull)
		require.Equal(t, -1, row)
		require.Equal(t, before, b.Grid())
	})
}

func TestBoardQueries(t *testing.T) {
	var b board

	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			require.True(t, InBounds(row, col))
			require.True(t, b.CellAt(row, col).IsEmpty())
		}
	}

	require.False(t, InBounds(-1, 0))
	require.False(t, InBounds(0, -1))
	require.False(t, InBounds(Rows, 0))
	require.False(t, InBounds(0, Columns))

	for col := 0; col < Columns; col++ {
		require.False(t, b.IsBoardFull())
		for i := 0; i < Rows; i++ {
			_, err := b.dropToken(col, Player((col+i)%2))
			require.NoError(t, err)
		}
	}

	require.True(t, b.IsBoardFull())
}

func TestBoardClear(t *testing.T) {
	var b board
	for col := 0; col < Columns; col++ {
		_, err := b.dropToken(col, PlayerB)
		require.NoError(t, err)
	}

	b.clear()
	require.Equal(t, Grid{}, b.Grid())

	b.clear()
	require.Equal(t, Grid{}, b.Grid(), "clearing twice should be the same as clearing once")
}

func TestGridIsACopy(t *testing.T) {
	var b board
	grid := b.Grid()
	grid[Rows-1][0] = CellOf(PlayerA)

	require.True(t, b.CellAt(Rows-1, 0).IsEmpty())
}

func TestCell(t *testing.T) {
	_, ok := Empty.Player()
	require.False(t, ok)
	require.True(t, Empty.IsEmpty())

	for _, player := range []Player{PlayerA, PlayerB} {
		cell := CellOf(player)
		require.False(t, cell.IsEmpty())

		owner, ok := cell.Player()
		require.True(t, ok)
		require.Equal(t, player, owner)
	}

	require.NotEqual(t, CellOf(PlayerA), CellOf(PlayerB))
}

func TestPlayerOpponent(t *testing.T) {
	require.Equal(t, PlayerB, PlayerA.Opponent())
	require.Equal(t, PlayerA, PlayerB.Opponent())
	require.Equal(t, PlayerA, PlayerA.Opponent().Opponent())
	require.Equal(t, PlayerB, PlayerB.Opponent().Opponent())
}
