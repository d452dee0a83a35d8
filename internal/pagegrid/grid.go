// Package pagegrid accumulates the decoded geometry of one page: ruled lines,
// filled regions and positioned glyphs, tolerance-merged and ordered for
// scanning. A Grid is exclusively owned by one extraction run and is fully
// reset at the start of each page; no geometry survives a page boundary.
package pagegrid

import (
	"log/slog"

	"github.com/frankvdh/pdflinedtables/internal/geometry"
)

// Options configures how primitives are folded into the grid.
type Options struct {
	// Tolerance is the merge distance for collinear segments and row grouping.
	Tolerance float64

	// SuppressDuplicateText drops overlapping duplicate glyphs
	// (bold-by-double-strike artifacts).
	SuppressDuplicateText bool
}

// Grid is the per-page geometry store. It satisfies the decode.Handler
// interface so a decoder can feed it directly.
type Grid struct {
	opts  Options
	horiz *geometry.LineSet
	vert  *geometry.LineSet
	fills *geometry.RegionIndex
	text  *geometry.GlyphSet
}

// New creates an empty grid.
func New(opts Options) *Grid {
	return &Grid{
		opts:  opts,
		horiz: geometry.NewLineSet(opts.Tolerance),
		vert:  geometry.NewLineSet(opts.Tolerance),
		fills: geometry.NewRegionIndex(),
		text:  geometry.NewGlyphSet(opts.Tolerance),
	}
}

// Reset clears all accumulated geometry ahead of a new page.
func (g *Grid) Reset() {
	g.horiz.Reset()
	g.vert.Reset()
	g.fills.Reset()
	g.text.Reset()
}

// Line folds a straight line segment into the horizontal or vertical line
// set. Segments that are parallel to neither axis within tolerance are not
// usable as cell boundaries and are dropped.
func (g *Grid) Line(x0, y0, x1, y1 float64) {
	tol := g.opts.Tolerance
	switch {
	case abs(y1-y0) <= tol:
		g.horiz.Insert(geometry.Span{Pos: y0, Lo: min(x0, x1), Hi: max(x0, x1)})
	case abs(x1-x0) <= tol:
		g.vert.Insert(geometry.Span{Pos: x0, Lo: min(y0, y1), Hi: max(y0, y1)})
	default:
		slog.Debug("discarding slanted line segment",
			"x0", x0, "y0", y0, "x1", x1, "y1", y1)
	}
}

// FilledRegion records an axis-aligned filled rectangle. A fill thin enough
// to be a drawn line contributes to the line sets instead of the region
// index, since many documents rule their tables with filled slivers.
func (g *Grid) FilledRegion(color geometry.RGB, r geometry.Rect) {
	switch {
	case r.IsHorizontalLine():
		g.horiz.Insert(geometry.Span{Pos: r.MinY, Lo: r.MinX, Hi: r.MaxX})
	case r.IsVerticalLine():
		g.vert.Insert(geometry.Span{Pos: r.MinX, Lo: r.MinY, Hi: r.MaxY})
	default:
		g.fills.Insert(color, r)
		// A filled region's edges still bound cells.
		g.horiz.Insert(geometry.Span{Pos: r.MinY, Lo: r.MinX, Hi: r.MaxX})
		g.horiz.Insert(geometry.Span{Pos: r.MaxY, Lo: r.MinX, Hi: r.MaxX})
		g.vert.Insert(geometry.Span{Pos: r.MinX, Lo: r.MinY, Hi: r.MaxY})
		g.vert.Insert(geometry.Span{Pos: r.MaxX, Lo: r.MinY, Hi: r.MaxY})
	}
}

// StrokedRect records an outlined rectangle by folding its four edges into
// the line sets.
func (g *Grid) StrokedRect(r geometry.Rect) {
	g.Line(r.MinX, r.MinY, r.MaxX, r.MinY)
	g.Line(r.MinX, r.MaxY, r.MaxX, r.MaxY)
	g.Line(r.MinX, r.MinY, r.MinX, r.MaxY)
	g.Line(r.MaxX, r.MinY, r.MaxX, r.MaxY)
}

// Glyph records one positioned character.
func (g *Grid) Glyph(gl geometry.Glyph) {
	g.text.Insert(gl, g.opts.SuppressDuplicateText)
}

// Horizontal returns the horizontal ruled-line set.
func (g *Grid) Horizontal() *geometry.LineSet { return g.horiz }

// Vertical returns the vertical ruled-line set.
func (g *Grid) Vertical() *geometry.LineSet { return g.vert }

// Fills returns the filled-region index.
func (g *Grid) Fills() *geometry.RegionIndex { return g.fills }

// Text returns the glyph store.
func (g *Grid) Text() *geometry.GlyphSet { return g.text }

// Tolerance returns the grid's merge tolerance.
func (g *Grid) Tolerance() float64 { return g.opts.Tolerance }

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
