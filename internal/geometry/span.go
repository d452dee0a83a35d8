package geometry

import "sort"

// Span is one ruled-line segment on a fixed axis. For horizontal lines Pos is
// the Y coordinate and Lo/Hi bound the X extent; for vertical lines Pos is the
// X coordinate and Lo/Hi bound the Y extent.
type Span struct {
	Pos float64
	Lo  float64
	Hi  float64
}

// Length returns the extent of the span along its axis.
func (s Span) Length() float64 { return s.Hi - s.Lo }

// sameLine reports whether two spans lie on the same ruled line, i.e. their
// positions differ by less than tol and their ranges overlap or touch within tol.
func sameLine(a, b Span, tol float64) bool {
	if a.Pos-b.Pos > tol || b.Pos-a.Pos > tol {
		return false
	}
	return a.Lo <= b.Hi+tol && a.Hi >= b.Lo-tol
}

// MergeSpan returns a new reduced span list with s merged in. Spans on the
// same line are replaced by a single span covering their union; a span wholly
// contained in an existing one leaves the list unchanged. The nominal Pos of
// the first existing span on the line is preserved so that merge chains cannot
// drift away from it.
func MergeSpan(spans []Span, s Span, tol float64) []Span {
	merged := s
	rest := append([]Span(nil), spans...)
	first := true

	// Absorbing one span can widen the union far enough to reach another
	// already-scanned span, so rescan until a pass absorbs nothing. Each
	// pass removes at least one span, so the loop terminates.
	for again := true; again; {
		again = false
		kept := rest[:0]
		for _, e := range rest {
			if !sameLine(e, merged, tol) {
				kept = append(kept, e)
				continue
			}
			if first {
				// Anchor the merged line at the established position.
				merged.Pos = e.Pos
				first = false
			}
			if e.Lo < merged.Lo {
				merged.Lo = e.Lo
			}
			if e.Hi > merged.Hi {
				merged.Hi = e.Hi
			}
			again = true
		}
		rest = kept
	}

	out := append(rest, merged)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pos != out[j].Pos {
			return out[i].Pos < out[j].Pos
		}
		return out[i].Lo < out[j].Lo
	})
	return out
}

// LineSet is an ordered, tolerance-merged collection of parallel ruled lines.
// Spans are kept sorted by (Pos, Lo) and merged on insertion.
type LineSet struct {
	tol   float64
	spans []Span
}

// NewLineSet creates an empty line set with the given merge tolerance.
func NewLineSet(tol float64) *LineSet {
	return &LineSet{tol: tol}
}

// Insert merges a span into the set.
func (ls *LineSet) Insert(s Span) {
	if s.Hi < s.Lo {
		s.Lo, s.Hi = s.Hi, s.Lo
	}
	ls.spans = MergeSpan(ls.spans, s, ls.tol)
}

// Len returns the number of distinct spans.
func (ls *LineSet) Len() int { return len(ls.spans) }

// All returns a copy of the spans in (Pos, Lo) order.
func (ls *LineSet) All() []Span {
	return append([]Span(nil), ls.spans...)
}

// Reset removes all spans.
func (ls *LineSet) Reset() { ls.spans = ls.spans[:0] }

// FirstAtOrAfter returns the first span with Pos >= pos-tol, scanning in
// increasing position order.
func (ls *LineSet) FirstAtOrAfter(pos float64) (Span, bool) {
	i := sort.Search(len(ls.spans), func(i int) bool {
		return ls.spans[i].Pos >= pos-ls.tol
	})
	if i == len(ls.spans) {
		return Span{}, false
	}
	return ls.spans[i], true
}

// LastAtOrAfter returns the span with the greatest position at or after
// pos-tol, i.e. the lowest line on the page when the axis is Y.
func (ls *LineSet) LastAtOrAfter(pos float64) (Span, bool) {
	for i := len(ls.spans) - 1; i >= 0; i-- {
		if ls.spans[i].Pos >= pos-ls.tol {
			return ls.spans[i], true
		}
	}
	return Span{}, false
}

// NearestBefore returns the span with the greatest position strictly less
// than pos-tol.
func (ls *LineSet) NearestBefore(pos float64) (Span, bool) {
	var best Span
	found := false
	for _, s := range ls.spans {
		if s.Pos < pos-ls.tol {
			best = s
			found = true
		}
	}
	return best, found
}

// Crossing returns the spans whose range covers pos within tol, in
// position order.
func (ls *LineSet) Crossing(pos float64) []Span {
	var out []Span
	for _, s := range ls.spans {
		if s.Lo <= pos+ls.tol && s.Hi >= pos-ls.tol {
			out = append(out, s)
		}
	}
	return out
}
