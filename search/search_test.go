package search_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/search"
)

// ------------------------------------------------------------------------
// Helpers
// ------------------------------------------------------------------------

// view builds a rows×cols snapshot with the given obstacles.
func view(t testing.TB, rows, cols int, blocked ...grid.CellID) *grid.View {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	require.NoError(t, g.SetObstacles(blocked, true))

	return g.Snapshot()
}

// finders lists every strategy under test.
func finders() map[string]search.Finder {
	return map[string]search.Finder{
		"Bidirectional": search.NewBidirectional(),
		"AStar":         search.NewAStar(),
		"BFS":           search.NewBFS(),
	}
}

// requireValidPath checks endpoints, contiguity and obstacle avoidance.
func requireValidPath(t *testing.T, v *grid.View, path []grid.CellID, from, to grid.CellID) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, from, path[0], "path must start at from")
	require.Equal(t, to, path[len(path)-1], "path must end at to")
	for i, id := range path {
		require.False(t, v.IsObstacle(id), "path crosses obstacle %d", id)
		if i > 0 {
			require.Equal(t, 1, v.Manhattan(path[i-1], id), "cells %d→%d not adjacent", path[i-1], id)
		}
	}
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestFindPath_Validation(t *testing.T) {
	v := view(t, 3, 3, 5)
	for name, f := range finders() {
		t.Run(name, func(t *testing.T) {
			_, err := f.FindPath(nil, 1, 2)
			require.ErrorIs(t, err, search.ErrNilSpace)

			_, err = f.FindPath(v, 0, 2)
			require.ErrorIs(t, err, grid.ErrCellOutOfRange)

			_, err = f.FindPath(v, 1, 10)
			require.ErrorIs(t, err, grid.ErrCellOutOfRange)

			_, err = f.FindPath(v, 1, 5)
			require.ErrorIs(t, err, search.ErrUnreachable, "blocked endpoint")
		})
	}
}

// ------------------------------------------------------------------------
// 2. Scenarios on a 5×5 grid
// ------------------------------------------------------------------------

func TestFindPath_Scenarios(t *testing.T) {
	cases := []struct {
		name     string
		blocked  []grid.CellID
		from, to grid.CellID
		steps    int
	}{
		{"CornerToCorner", nil, 1, 25, 8},
		{"ToCenter", nil, 1, 13, 4},
		{"Adjacent", nil, 7, 8, 1},
		{"SameCell", nil, 1, 1, 0},
		{"DetourAroundSingleBlock", []grid.CellID{2}, 1, 3, 4},
		// Wall in column 2 (cells 3,8,13,18) with a gap at the bottom row.
		{"WallWithGap", []grid.CellID{3, 8, 13, 18}, 1, 5, 12},
	}
	for _, tc := range cases {
		v := view(t, 5, 5, tc.blocked...)
		for name, f := range finders() {
			t.Run(tc.name+"/"+name, func(t *testing.T) {
				path, err := f.FindPath(v, tc.from, tc.to)
				require.NoError(t, err)
				requireValidPath(t, v, path, tc.from, tc.to)
				require.Equal(t, tc.steps, len(path)-1)
			})
		}
	}
}

func TestFindPath_Unreachable(t *testing.T) {
	// Full column of obstacles splits the grid.
	v := view(t, 5, 5, 3, 8, 13, 18, 23)
	for name, f := range finders() {
		t.Run(name, func(t *testing.T) {
			path, err := f.FindPath(v, 1, 25)
			require.Nil(t, path)
			require.True(t, errors.Is(err, search.ErrUnreachable), "got %v", err)
		})
	}
}

// ------------------------------------------------------------------------
// 3. Cross-check against BFS on random obstacle fields
// ------------------------------------------------------------------------

func TestFindPath_MatchesBFSOnRandomGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bfs := search.NewBFS()
	bidir := search.NewBidirectional()
	astar := search.NewAStar()

	for trial := 0; trial < 60; trial++ {
		rows, cols := 4+rng.Intn(12), 4+rng.Intn(12)
		var blocked []grid.CellID
		for id := 1; id <= rows*cols; id++ {
			if rng.Float64() < 0.3 {
				blocked = append(blocked, grid.CellID(id))
			}
		}
		v := view(t, rows, cols, blocked...)
		for k := 0; k < 10; k++ {
			from := grid.CellID(1 + rng.Intn(rows*cols))
			to := grid.CellID(1 + rng.Intn(rows*cols))
			if v.IsObstacle(from) || v.IsObstacle(to) {
				continue
			}
			want, wantErr := bfs.FindPath(v, from, to)
			for name, f := range map[string]search.Finder{"Bidirectional": bidir, "AStar": astar} {
				got, err := f.FindPath(v, from, to)
				if wantErr != nil {
					require.ErrorIs(t, err, search.ErrUnreachable, "%s %d→%d", name, from, to)
					require.False(t, v.Connected(from, to))
					continue
				}
				require.NoError(t, err, "%s %d→%d", name, from, to)
				requireValidPath(t, v, got, from, to)
				require.Equal(t, len(want), len(got), "%s %d→%d on %dx%d", name, from, to, rows, cols)
			}
		}
	}
}

// ------------------------------------------------------------------------
// 4. Hooks, determinism and factory
// ------------------------------------------------------------------------

func TestBidirectional_OnExpand(t *testing.T) {
	v := view(t, 5, 5)
	expanded := map[grid.CellID]int{}
	f := search.NewBidirectional(search.WithOnExpand(func(id grid.CellID) { expanded[id]++ }))

	_, err := f.FindPath(v, 1, 25)
	require.NoError(t, err)
	require.NotEmpty(t, expanded)
	require.Equal(t, 1, expanded[1], "forward root expanded once")
	require.Equal(t, 1, expanded[25], "backward root expanded once")
}

func TestBidirectional_Deterministic(t *testing.T) {
	v := view(t, 8, 8, 10, 11, 12, 27, 35, 43)
	f := search.NewBidirectional()
	first, err := f.FindPath(v, 1, 64)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := f.FindPath(v, 1, 64)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestNew(t *testing.T) {
	for _, k := range []search.Kind{search.KindBidirectional, search.KindAStar, search.KindBFS, search.KindDijkstra, ""} {
		f, err := search.New(k)
		require.NoError(t, err, "kind %q", k)
		require.NotNil(t, f)
	}
	_, err := search.New("rrt")
	require.ErrorIs(t, err, search.ErrUnknownKind)

	f, err := search.New(search.KindAStar)
	require.NoError(t, err)
	require.IsType(t, &search.AStar{}, f)

	f, err = search.New(search.KindDijkstra)
	require.NoError(t, err)
	require.IsType(t, &search.BFS{}, f)
}
