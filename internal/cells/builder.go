// Package cells reconstructs the bounded cells of a located table from its
// ruled lines and assigns cell text from positioned glyphs, then assembles
// the possibly irregular cell set into a regular row-major table of strings.
package cells

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/frankvdh/pdflinedtables/internal/geometry"
)

// Cell is one bounded region of a table with its accumulated text.
type Cell struct {
	geometry.Rect
	Text string
}

// Options configures cell reconstruction and text layout.
type Options struct {
	// Tolerance is the coordinate distance within which lines are considered
	// coincident.
	Tolerance float64

	// SpaceWidthFactor scales the estimated space width when inferring
	// spaces between glyphs.
	SpaceWidthFactor float64

	// LineEnding joins multiple physical text lines within one cell.
	LineEnding string

	// LeadingSpaces preserves inferred spaces at the start of a cell line.
	LeadingSpaces bool

	// ReduceSpaces collapses runs of inferred spaces to a single space.
	ReduceSpaces bool
}

// Build reconstructs the cells inside bounds from the given horizontal and
// vertical line sets and attaches the text of every glyph falling within each
// cell. Lines are first trimmed to the bounds; spans shorter than the
// tolerance after trimming are discarded. Fewer than two surviving lines on
// either axis means there is no table; Build then returns nil, which is not
// an error.
//
// Reconstruction drains an explicit worklist of horizontal segments: the
// topmost remaining segment is bracketed by its nearest pair of crossing
// vertical lines, and the first lower horizontal segment spanning that
// bracket closes one cell. The horizontal remainder right of the cell stays
// in the current row's worklist; vertical remainders below the cell are kept
// for the rows underneath. Each step strictly shrinks the worklist, so the
// loop terminates.
func Build(bounds geometry.Rect, horiz, vert []geometry.Span, glyphs *geometry.GlyphSet, opts Options) []Cell {
	tol := opts.Tolerance
	hWork := trimSpans(horiz, bounds.MinY, bounds.MaxY, bounds.MinX, bounds.MaxX, tol)
	vWork := trimSpans(vert, bounds.MinX, bounds.MaxX, bounds.MinY, bounds.MaxY, tol)
	if len(hWork) < 2 || len(vWork) < 2 {
		slog.Warn("not enough ruled lines for a table",
			"horizontal", len(hWork), "vertical", len(vWork))
		return nil
	}
	sortSpans(hWork)
	sortSpans(vWork)

	var out []Cell
	for len(hWork) > 0 {
		h := hWork[0]
		hWork = hWork[1:]

		crossing := crossingIndices(vWork, h, tol)
		if len(crossing) < 2 {
			slog.Debug("horizontal segment has no vertical bracket", "y", h.Pos)
			continue
		}

		left := crossing[0]
		right := -1
		for _, vi := range crossing[1:] {
			if vWork[vi].Pos > vWork[left].Pos+tol {
				right = vi
				break
			}
		}
		if right < 0 {
			slog.Debug("no closing vertical for bracket", "y", h.Pos, "x", vWork[left].Pos)
			continue
		}

		bottom, ok := findBottom(hWork, vWork[left], vWork[right], h.Pos, tol)
		if !ok {
			// No line closes this bracket; skip it and continue the row.
			slog.Debug("open cell bracket skipped",
				"y", h.Pos, "left", vWork[left].Pos, "right", vWork[right].Pos)
			h.Lo = vWork[right].Pos
			if h.Length() >= tol {
				hWork = reinsert(hWork, h)
			}
			continue
		}

		out = append(out, Cell{Rect: geometry.Rect{
			MinX: vWork[left].Pos,
			MinY: h.Pos,
			MaxX: vWork[right].Pos,
			MaxY: bottom,
		}})

		// Keep the left vertical's remainder below the cell for later rows.
		if vWork[left].Hi > bottom+tol {
			vWork[left].Lo = bottom
		} else {
			vWork = append(vWork[:left], vWork[left+1:]...)
		}

		// Keep the horizontal remainder right of the cell for this row.
		h.Lo = out[len(out)-1].MaxX
		if h.Length() >= tol {
			hWork = reinsert(hWork, h)
		}
	}

	for i := range out {
		out[i].Text = cellText(out[i].Rect, glyphs.Within(out[i].Rect), opts)
	}
	return out
}

// trimSpans clamps spans to [lo, hi] along their extent and keeps only those
// whose position lies within [posLo, posHi] and whose trimmed length is at
// least the tolerance.
func trimSpans(spans []geometry.Span, posLo, posHi, lo, hi, tol float64) []geometry.Span {
	out := make([]geometry.Span, 0, len(spans))
	for _, s := range spans {
		if s.Pos < posLo-tol || s.Pos > posHi+tol {
			continue
		}
		if s.Lo < lo {
			s.Lo = lo
		}
		if s.Hi > hi {
			s.Hi = hi
		}
		if s.Length() < tol {
			continue
		}
		out = append(out, s)
	}
	return out
}

func sortSpans(spans []geometry.Span) {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Pos != spans[j].Pos {
			return spans[i].Pos < spans[j].Pos
		}
		return spans[i].Lo < spans[j].Lo
	})
}

// crossingIndices returns the indices of vertical spans crossing h, in
// left-to-right order.
func crossingIndices(vWork []geometry.Span, h geometry.Span, tol float64) []int {
	var out []int
	for i, v := range vWork {
		if v.Pos >= h.Lo-tol && v.Pos <= h.Hi+tol &&
			v.Lo <= h.Pos+tol && v.Hi >= h.Pos-tol {
			out = append(out, i)
		}
	}
	return out
}

// findBottom returns the Y of the nearest horizontal segment below top that
// spans the bracket and is reached by both verticals. hWork is sorted by
// position, so the first match is the nearest one.
func findBottom(hWork []geometry.Span, left, right geometry.Span, top, tol float64) (float64, bool) {
	for _, h2 := range hWork {
		if h2.Pos <= top+tol {
			continue
		}
		if h2.Lo <= left.Pos+tol && h2.Hi >= right.Pos-tol &&
			left.Hi >= h2.Pos-tol && right.Hi >= h2.Pos-tol {
			return h2.Pos, true
		}
	}
	return 0, false
}

// reinsert puts a span back into a sorted worklist at its ordered position.
func reinsert(spans []geometry.Span, s geometry.Span) []geometry.Span {
	i := sort.Search(len(spans), func(i int) bool {
		if spans[i].Pos != s.Pos {
			return spans[i].Pos > s.Pos
		}
		return spans[i].Lo >= s.Lo
	})
	spans = append(spans, geometry.Span{})
	copy(spans[i+1:], spans[i:])
	spans[i] = s
	return spans
}

// cellText lays out the glyphs of one cell: glyphs are grouped into Y bands,
// each band is rendered left to right with inferred spacing, bands are joined
// with the configured line ending, and trailing blank lines are dropped.
func cellText(cell geometry.Rect, glyphs []geometry.Glyph, opts Options) string {
	if len(glyphs) == 0 {
		return ""
	}
	var bands [][]geometry.Glyph
	for _, g := range glyphs {
		if n := len(bands); n > 0 && g.Y-bands[n-1][0].Y <= opts.Tolerance {
			bands[n-1] = append(bands[n-1], g)
			continue
		}
		bands = append(bands, []geometry.Glyph{g})
	}

	lines := make([]string, 0, len(bands))
	for _, band := range bands {
		sort.Slice(band, func(i, j int) bool { return band[i].X < band[j].X })
		lines = append(lines, bandText(cell, band, opts))
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, opts.LineEnding)
}

// bandText renders one Y band of glyphs, inserting inferred spaces wherever
// the gap from the previous glyph (or, for the first glyph, from the cell's
// left edge) exceeds the scaled space width.
func bandText(cell geometry.Rect, band []geometry.Glyph, opts Options) string {
	var b strings.Builder
	cursor := cell.MinX
	for i, g := range band {
		gap := g.X - cursor
		if g.SpaceWidth > 0 && gap > g.SpaceWidth*opts.SpaceWidthFactor {
			n := int(gap/g.SpaceWidth + 0.5)
			if n < 1 {
				n = 1
			}
			if opts.ReduceSpaces {
				n = 1
			}
			if i == 0 && !opts.LeadingSpaces {
				n = 0
			}
			for ; n > 0; n-- {
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.Text)
		cursor = g.X + g.Width
	}
	return strings.TrimRight(b.String(), " ")
}
