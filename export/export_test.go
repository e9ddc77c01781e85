package export_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/export"
	"github.com/katalvlaran/gridroute/grid"
)

func view(t *testing.T, rows, cols int, blocked ...grid.CellID) *grid.View {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	require.NoError(t, g.SetObstacles(blocked, true))

	return g.Snapshot()
}

func TestCenterAndSquare(t *testing.T) {
	v := view(t, 3, 4)
	require.Equal(t, orb.Point{0.5, 2.5}, export.Center(v, 1))
	require.Equal(t, orb.Point{3.5, 0.5}, export.Center(v, 12))

	sq := export.Square(v, 6) // row 1, col 1
	require.Len(t, sq, 1)
	require.Equal(t, orb.Bound{Min: orb.Point{1, 1}, Max: orb.Point{2, 2}}, sq.Bound())
	require.True(t, sq[0].Closed())
}

func TestTurns(t *testing.T) {
	v := view(t, 5, 5)
	cases := []struct {
		name  string
		route []grid.CellID
		want  []grid.CellID
	}{
		{"single", []grid.CellID{7}, []grid.CellID{7}},
		{"straight", []grid.CellID{1, 2, 3, 4, 5}, []grid.CellID{1, 5}},
		{"one corner", []grid.CellID{1, 2, 3, 8, 13}, []grid.CellID{1, 3, 13}},
		{"staircase", []grid.CellID{1, 2, 7, 8, 13}, []grid.CellID{1, 2, 7, 8, 13}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, export.Turns(v, tc.route))
		})
	}
}

func TestGeoJSON(t *testing.T) {
	v := view(t, 3, 3, 5)
	route := []grid.CellID{1, 2, 3, 6, 9}
	fc := export.GeoJSON(v, route, []grid.CellID{3})

	kinds := map[string]int{}
	for _, f := range fc.Features {
		kinds[f.Properties.MustString("kind")]++
	}
	require.Equal(t, map[string]int{
		export.KindRoute:    1,
		export.KindStart:    1,
		export.KindEnd:      1,
		export.KindWaypoint: 1,
		export.KindObstacle: 1,
	}, kinds)

	line := fc.Features[0]
	require.Equal(t, "LineString", line.Geometry.GeoJSONType())
	require.Equal(t, 4, line.Properties["steps"])
	require.InDelta(t, 4.0, line.Properties["length"], 1e-9)

	raw, err := json.Marshal(fc)
	require.NoError(t, err)
	back, err := geojson.UnmarshalFeatureCollection(raw)
	require.NoError(t, err)
	require.Len(t, back.Features, 5)
	ls, ok := back.Features[0].Geometry.(orb.LineString)
	require.True(t, ok)
	require.Equal(t, orb.Point{0.5, 2.5}, ls[0])
	require.Equal(t, orb.Point{2.5, 0.5}, ls[len(ls)-1])
}

func TestGeoJSON_EmptyRoute(t *testing.T) {
	fc := export.GeoJSON(view(t, 2, 2, 4), nil, nil)
	require.Len(t, fc.Features, 1)
	require.Equal(t, export.KindObstacle, fc.Features[0].Properties.MustString("kind"))
}

func TestDraw_Plain(t *testing.T) {
	v := view(t, 3, 3, 5)
	got := export.Draw(v, []grid.CellID{1, 2, 3, 6, 9}, []grid.CellID{3}, export.Plain())
	require.Equal(t, "S*W\n.#*\n..E", got)
}

func TestDraw_Styled(t *testing.T) {
	v := view(t, 2, 2)
	got := export.Draw(v, []grid.CellID{1, 2}, nil)
	require.Contains(t, got, "╭")
	require.Contains(t, got, "S")
	require.Contains(t, got, "E")
	require.Equal(t, 3, strings.Count(got, "\n"), "two rows plus top and bottom frame lines")
}
