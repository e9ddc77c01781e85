package export

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridroute/grid"
)

// Map glyphs.
const (
	GlyphFree     = '.'
	GlyphObstacle = '#'
	GlyphRoute    = '*'
	GlyphWaypoint = 'W'
	GlyphStart    = 'S'
	GlyphEnd      = 'E'
)

var (
	obstacleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	routeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	waypointStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	endpointStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	frameStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

type drawOptions struct {
	plain bool
}

// DrawOption configures Draw.
type DrawOption func(*drawOptions)

// Plain disables colors and the frame; output is bare glyph rows.
func Plain() DrawOption {
	return func(o *drawOptions) { o.plain = true }
}

// Draw renders the grid as one glyph per cell, rows top to bottom.
// Later layers win: free < obstacle < route < waypoint < start/end.
func Draw(v *grid.View, route, waypoints []grid.CellID, opts ...DrawOption) string {
	var o drawOptions
	for _, opt := range opts {
		opt(&o)
	}

	glyphs := make([]rune, v.Size()+1)
	for id := 1; id <= v.Size(); id++ {
		glyphs[id] = GlyphFree
	}
	for _, id := range v.Obstacles() {
		glyphs[id] = GlyphObstacle
	}
	for _, id := range route {
		glyphs[id] = GlyphRoute
	}
	for _, id := range waypoints {
		if v.Valid(id) {
			glyphs[id] = GlyphWaypoint
		}
	}
	if len(route) > 0 {
		glyphs[route[0]] = GlyphStart
		glyphs[route[len(route)-1]] = GlyphEnd
	}

	var b strings.Builder
	for r := 0; r < v.Rows(); r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < v.Cols(); c++ {
			g := glyphs[v.ID(grid.Cell{Row: r, Col: c})]
			if o.plain {
				b.WriteRune(g)
				continue
			}
			b.WriteString(styleFor(g).Render(string(g)))
		}
	}

	if o.plain {
		return b.String()
	}

	return frameStyle.Render(b.String())
}

func styleFor(g rune) lipgloss.Style {
	switch g {
	case GlyphObstacle:
		return obstacleStyle
	case GlyphRoute:
		return routeStyle
	case GlyphWaypoint:
		return waypointStyle
	case GlyphStart, GlyphEnd:
		return endpointStyle
	default:
		return lipgloss.NewStyle()
	}
}
