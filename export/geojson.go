package export

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"

	"github.com/katalvlaran/gridroute/grid"
)

// Feature kinds stored in the "kind" property.
const (
	KindRoute    = "route"
	KindStart    = "start"
	KindEnd      = "end"
	KindWaypoint = "waypoint"
	KindObstacle = "obstacle"
)

// Center returns the coordinate of the center of cell id.
func Center(v *grid.View, id grid.CellID) orb.Point {
	c := v.CellOf(id)

	return orb.Point{float64(c.Col) + 0.5, float64(v.Rows()-c.Row) - 0.5}
}

// cellAt maps a cell-center coordinate back to its id.
func cellAt(v *grid.View, p orb.Point) grid.CellID {
	row := v.Rows() - 1 - int(p[1])
	col := int(p[0])

	return v.ID(grid.Cell{Row: row, Col: col})
}

// Square returns the closed unit square covering cell id.
func Square(v *grid.View, id grid.CellID) orb.Polygon {
	c := v.CellOf(id)
	x0, y0 := float64(c.Col), float64(v.Rows()-c.Row-1)
	ring := orb.Ring{
		{x0, y0}, {x0 + 1, y0}, {x0 + 1, y0 + 1}, {x0, y0 + 1}, {x0, y0},
	}

	return orb.Polygon{ring}
}

// LineString converts a route to cell-center coordinates.
func LineString(v *grid.View, route []grid.CellID) orb.LineString {
	ls := make(orb.LineString, len(route))
	for i, id := range route {
		ls[i] = Center(v, id)
	}

	return ls
}

// Turns returns the route reduced to its endpoints and corner cells.
// Douglas–Peucker with zero tolerance drops exactly the collinear interior
// points of an orthogonal route.
func Turns(v *grid.View, route []grid.CellID) []grid.CellID {
	if len(route) <= 2 {
		return append([]grid.CellID(nil), route...)
	}
	simplified := simplify.DouglasPeucker(0).Simplify(LineString(v, route))
	ls, ok := simplified.(orb.LineString)
	if !ok {
		return append([]grid.CellID(nil), route...)
	}

	out := make([]grid.CellID, len(ls))
	for i, p := range ls {
		out[i] = cellAt(v, p)
	}

	return out
}

// GeoJSON builds a FeatureCollection with the route LineString, start/end and
// waypoint Points, and one Polygon per obstacle.
//
// Properties: "kind" on every feature; "cell" on points and polygons;
// "steps" and "length" on the route.
func GeoJSON(v *grid.View, route, waypoints []grid.CellID) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if len(route) > 0 {
		ls := LineString(v, route)
		f := geojson.NewFeature(ls)
		f.Properties["kind"] = KindRoute
		f.Properties["steps"] = len(route) - 1
		f.Properties["length"] = planar.Length(ls)
		fc.Append(f)

		fc.Append(pointFeature(v, route[0], KindStart))
		fc.Append(pointFeature(v, route[len(route)-1], KindEnd))
	}
	for _, w := range waypoints {
		fc.Append(pointFeature(v, w, KindWaypoint))
	}
	for _, id := range v.Obstacles() {
		f := geojson.NewFeature(Square(v, id))
		f.Properties["kind"] = KindObstacle
		f.Properties["cell"] = int(id)
		fc.Append(f)
	}

	return fc
}

func pointFeature(v *grid.View, id grid.CellID, kind string) *geojson.Feature {
	f := geojson.NewFeature(Center(v, id))
	f.Properties["kind"] = kind
	f.Properties["cell"] = int(id)

	return f
}
