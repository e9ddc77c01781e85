package planner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/planner"
)

func TestAssemble(t *testing.T) {
	cases := []struct {
		name     string
		segments [][]grid.CellID
		want     []grid.CellID
	}{
		{"none", nil, nil},
		{"single", [][]grid.CellID{{1, 2, 3}}, []grid.CellID{1, 2, 3}},
		{"single cell", [][]grid.CellID{{4}}, []grid.CellID{4}},
		{"junctions", [][]grid.CellID{{1, 2}, {2, 3, 8}, {8, 13}}, []grid.CellID{1, 2, 3, 8, 13}},
		{"zero-length hop", [][]grid.CellID{{1, 2}, {2}, {2, 7}}, []grid.CellID{1, 2, 7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, planner.Assemble(tc.segments))
		})
	}
}
