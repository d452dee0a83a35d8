// Package locate finds a table's bounds within one page of accumulated
// geometry: the top/left/right edge from a heading band or the first ruled
// line, and the bottom edge from an end pattern, the next heading, or the
// last ruled line.
package locate

import (
	"log/slog"

	"github.com/frankvdh/pdflinedtables/internal/geometry"
	"github.com/frankvdh/pdflinedtables/internal/pagegrid"
)

// FindTable locates the top, left and right bounds of the next table at or
// below bounds.MinY, mutating bounds in place. With a heading color it unions
// the contiguous first band of that color and places the table top at the
// band's bottom edge. Without one, the first horizontal line (united with the
// first colored region, if any shares its band) forms the top edge, and the
// vertical lines crossing it give the left/right extent.
//
// A false return means no table starts on this page at or below the starting
// Y. That is not an error; it signals "no more tables here".
func FindTable(g *pagegrid.Grid, heading *geometry.RGB, bounds *geometry.Rect) bool {
	tol := g.Tolerance()

	if heading != nil {
		band, ok := g.Fills().BandOf(*heading, bounds.MinY, tol)
		if !ok {
			slog.Debug("no heading band found", "color", heading.String(), "fromY", bounds.MinY)
			return false
		}
		bounds.MinX = band.MinX
		bounds.MaxX = band.MaxX
		bounds.MinY = band.MaxY
		return true
	}

	first, ok := g.Horizontal().FirstAtOrAfter(bounds.MinY)
	if !ok {
		slog.Debug("no ruled line found", "fromY", bounds.MinY)
		return false
	}
	top := geometry.Rect{MinX: first.Lo, MinY: first.Pos, MaxX: first.Hi, MaxY: first.Pos}
	if region, found := g.Fills().FirstOfAnyColor(bounds.MinY, tol); found &&
		region.MinY <= first.Pos+tol {
		top = top.Add(region)
	}

	minX, maxX := top.MinX, top.MaxX
	for _, v := range g.Vertical().Crossing(top.MinY) {
		if v.Pos < minX {
			minX = v.Pos
		}
		if v.Pos > maxX {
			maxX = v.Pos
		}
	}
	bounds.MinX = minX
	bounds.MaxX = maxX
	bounds.MinY = top.MinY
	return true
}
