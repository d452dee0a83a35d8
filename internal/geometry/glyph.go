package geometry

import "sort"

// Glyph is one positioned, Unicode-resolved character. X/Y locate the glyph
// origin in normalized page space. SpaceWidth is the estimated width of a
// space character derived from font metrics, used to infer whether a gap
// between adjacent glyphs represents one or more spaces.
type Glyph struct {
	X          float64
	Y          float64
	Text       string
	Width      float64
	SpaceWidth float64
}

// GlyphSet stores glyphs ordered by (Y, X) so that a row's glyphs are
// naturally iterable left to right.
type GlyphSet struct {
	tol    float64
	glyphs []Glyph
}

// NewGlyphSet creates an empty glyph set using tol to group rows.
func NewGlyphSet(tol float64) *GlyphSet {
	return &GlyphSet{tol: tol}
}

// Insert adds a glyph. When suppressDuplicates is set, a glyph with the same
// text within one third of a glyph width of an existing one in both axes is
// discarded; this defeats bold-by-double-strike rendering.
func (gs *GlyphSet) Insert(g Glyph, suppressDuplicates bool) {
	if suppressDuplicates {
		limit := g.Width / 3
		for _, e := range gs.glyphs {
			if e.Text == g.Text && abs(e.X-g.X) < limit && abs(e.Y-g.Y) < limit {
				return
			}
		}
	}
	i := sort.Search(len(gs.glyphs), func(i int) bool {
		if gs.glyphs[i].Y != g.Y {
			return gs.glyphs[i].Y > g.Y
		}
		return gs.glyphs[i].X >= g.X
	})
	gs.glyphs = append(gs.glyphs, Glyph{})
	copy(gs.glyphs[i+1:], gs.glyphs[i:])
	gs.glyphs[i] = g
}

// Len returns the number of stored glyphs.
func (gs *GlyphSet) Len() int { return len(gs.glyphs) }

// All returns a copy of the glyphs in (Y, X) order.
func (gs *GlyphSet) All() []Glyph {
	return append([]Glyph(nil), gs.glyphs...)
}

// Reset removes all glyphs.
func (gs *GlyphSet) Reset() { gs.glyphs = gs.glyphs[:0] }

// GlyphRow is one horizontal band of glyphs sharing a Y position within
// tolerance, ordered left to right.
type GlyphRow struct {
	Y      float64
	Glyphs []Glyph
}

// Rows groups the glyphs into Y bands. The band's Y is that of its first
// glyph, so repeated grouping is stable.
func (gs *GlyphSet) Rows() []GlyphRow {
	var rows []GlyphRow
	for _, g := range gs.glyphs {
		if n := len(rows); n > 0 && abs(rows[n-1].Y-g.Y) <= gs.tol {
			rows[n-1].Glyphs = append(rows[n-1].Glyphs, g)
			continue
		}
		rows = append(rows, GlyphRow{Y: g.Y, Glyphs: []Glyph{g}})
	}
	for i := range rows {
		sort.Slice(rows[i].Glyphs, func(a, b int) bool {
			return rows[i].Glyphs[a].X < rows[i].Glyphs[b].X
		})
	}
	return rows
}

// Within returns the glyphs inside r, in (Y, X) order.
func (gs *GlyphSet) Within(r Rect) []Glyph {
	var out []Glyph
	for _, g := range gs.glyphs {
		if g.Y > r.MinY+gs.tol && g.Y <= r.MaxY+gs.tol &&
			g.X >= r.MinX-gs.tol && g.X < r.MaxX-gs.tol {
			out = append(out, g)
		}
	}
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
