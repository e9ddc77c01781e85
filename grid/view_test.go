package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/grid"
)

// newView builds a rows×cols snapshot with the given obstacles.
func newView(t *testing.T, rows, cols int, blocked ...grid.CellID) *grid.View {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	require.NoError(t, g.SetObstacles(blocked, true))

	return g.Snapshot()
}

// TestNeighbors checks corner, edge, interior and obstacle handling on a 3×3 grid.
//
//	1 2 3
//	4 5 6
//	7 8 9
func TestNeighbors(t *testing.T) {
	v := newView(t, 3, 3)
	cases := []struct {
		id   grid.CellID
		want []grid.CellID
	}{
		{1, []grid.CellID{2, 4}},
		{2, []grid.CellID{3, 5, 1}},
		{5, []grid.CellID{2, 6, 8, 4}},
		{9, []grid.CellID{6, 8}},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, v.Neighbors(tc.id, nil), "Neighbors(%d)", tc.id)
	}

	blocked := newView(t, 3, 3, 2, 6)
	require.Equal(t, []grid.CellID{8, 4}, blocked.Neighbors(5, nil))
	require.Equal(t, []grid.CellID{4}, blocked.Neighbors(1, nil))
}

// TestNeighbors_ReusesBuffer verifies the append-to-buf contract.
func TestNeighbors_ReusesBuffer(t *testing.T) {
	v := newView(t, 3, 3)
	buf := make([]grid.CellID, 0, 4)
	buf = v.Neighbors(5, buf[:0])
	require.Len(t, buf, 4)
	buf = v.Neighbors(1, buf[:0])
	require.Equal(t, []grid.CellID{2, 4}, buf)
}

// TestManhattan checks the heuristic on a 5×5 grid.
func TestManhattan(t *testing.T) {
	v := newView(t, 5, 5)
	require.Equal(t, 8, v.Manhattan(1, 25))
	require.Equal(t, 4, v.Manhattan(1, 13))
	require.Equal(t, 0, v.Manhattan(7, 7))
	require.Equal(t, v.Manhattan(5, 21), v.Manhattan(21, 5))
}

// TestComponents_SplitGrid verifies labelling when a full column of obstacles
// splits a 3×3 grid into two halves.
//
//	1 # 3
//	4 # 6
//	7 # 9
func TestComponents_SplitGrid(t *testing.T) {
	v := newView(t, 3, 3, 2, 5, 8)

	comps := v.Components()
	require.Len(t, comps, 2)
	require.ElementsMatch(t, []grid.CellID{1, 4, 7}, comps[0])
	require.ElementsMatch(t, []grid.CellID{3, 6, 9}, comps[1])

	require.True(t, v.Connected(1, 7))
	require.False(t, v.Connected(1, 3))
	require.False(t, v.Connected(1, 2), "obstacle cells belong to no component")
	require.False(t, v.Connected(1, 42))
}

// TestComponents_Empty verifies that a fully blocked grid has no components.
func TestComponents_Empty(t *testing.T) {
	v := newView(t, 1, 2, 1, 2)
	require.Empty(t, v.Components())
	require.False(t, v.Connected(1, 2))
}
