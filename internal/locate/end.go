package locate

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/frankvdh/pdflinedtables/internal/geometry"
	"github.com/frankvdh/pdflinedtables/internal/pagegrid"
)

// EndRequest describes how the bottom bound of a table is detected.
type EndRequest struct {
	// Pattern, when non-nil, marks the end at the first text row matching it.
	Pattern *regexp.Regexp

	// Heading, when non-nil, marks the end just above the next band of this
	// color when no pattern matched.
	Heading *geometry.RGB

	// Top is the located top of the current table.
	Top float64

	// SpaceWidthFactor scales the estimated space width when joining a text
	// row for pattern matching.
	SpaceWidthFactor float64
}

// FindEnd returns the Y coordinate of the table's bottom bound and whether
// the table fully ends on this page. Detection runs in priority order: the
// end pattern over concatenated text rows (scanning rows above the heading
// too, because the pattern may belong to a following table's introductory
// text), then the next occurrence of the heading color, then the last ruled
// line on the page. The last case reports ended=false: the table may
// continue onto the next page.
func FindEnd(g *pagegrid.Grid, req EndRequest) (float64, bool) {
	tol := g.Tolerance()

	if req.Pattern != nil {
		for _, row := range g.Text().Rows() {
			if req.Pattern.MatchString(rowText(row, req.SpaceWidthFactor)) {
				return row.Y, true
			}
		}
	}

	if req.Heading != nil {
		for _, r := range g.Fills().Of(*req.Heading) {
			if r.MinY <= req.Top+tol {
				continue
			}
			if line, ok := g.Horizontal().NearestBefore(r.MinY); ok && line.Pos > req.Top {
				return line.Pos, true
			}
			slog.Warn("no ruled line above next heading, ending table at heading top",
				"headingY", r.MinY)
			return r.MinY, true
		}
	}

	if last, ok := g.Horizontal().LastAtOrAfter(req.Top); ok {
		return last.Pos, false
	}
	return req.Top, false
}

// rowText joins a glyph row into one string in X order, inserting a single
// space wherever the gap between adjacent glyphs exceeds the scaled space
// width, so that word-boundary patterns can match.
func rowText(row geometry.GlyphRow, spaceWidthFactor float64) string {
	var b strings.Builder
	for i, g := range row.Glyphs {
		if i > 0 {
			prev := row.Glyphs[i-1]
			if gap := g.X - (prev.X + prev.Width); gap > g.SpaceWidth*spaceWidthFactor {
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.Text)
	}
	return b.String()
}
