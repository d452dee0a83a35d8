// Package decode turns pages of a PDF document into the three primitive
// event kinds the reconstruction engine consumes: line segments, filled
// rectangles and positioned glyphs, all normalized to a downward-increasing
// coordinate system with the origin at the page's top-left corner after
// rotation. The engine depends only on the narrow Decoder interface, so any
// source able to emit normalized primitives can drive it.
package decode

import "github.com/frankvdh/pdflinedtables/internal/geometry"

// Handler receives the decoded primitives of one page.
type Handler interface {
	// Line reports one straight line segment in display coordinates.
	Line(x0, y0, x1, y1 float64)

	// FilledRegion reports an axis-aligned filled rectangle with its
	// resolved RGB fill color.
	FilledRegion(color geometry.RGB, r geometry.Rect)

	// Glyph reports one positioned, Unicode-resolved character with its
	// advance width and estimated space width.
	Glyph(g geometry.Glyph)
}

// Decoder produces primitive events for the pages of one document.
type Decoder interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// Page decodes the zero-based page n into h. A non-nil forcedQuadrants
	// overrides the page's rotation metadata with the given quadrant count.
	// Errors indicate malformed page content and are fatal to the page.
	Page(n int, forcedQuadrants *int, h Handler) error
}
