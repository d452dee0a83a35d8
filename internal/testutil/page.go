// Package testutil builds synthetic pages for tests: scripted sequences of
// line, fill and glyph events that replay through any decoder handler, plus
// a scripted in-memory document decoder.
package testutil

import (
	"fmt"

	"github.com/frankvdh/pdflinedtables/internal/decode"
	"github.com/frankvdh/pdflinedtables/internal/geometry"
)

// Page is a scripted synthetic page. Builder methods record events; Replay
// feeds them to a handler in order.
type Page struct {
	ops []func(h decode.Handler)
}

// NewPage returns an empty synthetic page.
func NewPage() *Page {
	return &Page{}
}

// HLine draws a horizontal line at y from x0 to x1.
func (p *Page) HLine(y, x0, x1 float64) *Page {
	p.ops = append(p.ops, func(h decode.Handler) { h.Line(x0, y, x1, y) })
	return p
}

// VLine draws a vertical line at x from y0 to y1.
func (p *Page) VLine(x, y0, y1 float64) *Page {
	p.ops = append(p.ops, func(h decode.Handler) { h.Line(x, y0, x, y1) })
	return p
}

// Box draws the four edges of r as stroked lines.
func (p *Page) Box(r geometry.Rect) *Page {
	return p.HLine(r.MinY, r.MinX, r.MaxX).
		HLine(r.MaxY, r.MinX, r.MaxX).
		VLine(r.MinX, r.MinY, r.MaxY).
		VLine(r.MaxX, r.MinY, r.MaxY)
}

// Fill paints r with the given color.
func (p *Page) Fill(color geometry.RGB, r geometry.Rect) *Page {
	p.ops = append(p.ops, func(h decode.Handler) { h.FilledRegion(color, r) })
	return p
}

// Word places text at (x, y), one glyph per rune, each advancing by width.
func (p *Page) Word(x, y float64, text string, width, spaceWidth float64) *Page {
	gx := x
	for _, r := range text {
		g := geometry.Glyph{X: gx, Y: y, Text: string(r), Width: width, SpaceWidth: spaceWidth}
		p.ops = append(p.ops, func(h decode.Handler) { h.Glyph(g) })
		gx += width
	}
	return p
}

// Glyph places a single pre-built glyph.
func (p *Page) Glyph(g geometry.Glyph) *Page {
	p.ops = append(p.ops, func(h decode.Handler) { h.Glyph(g) })
	return p
}

// Replay feeds the page's events to h in the recorded order.
func (p *Page) Replay(h decode.Handler) {
	for _, op := range p.ops {
		op(h)
	}
}

// Doc is an in-memory document of synthetic pages implementing the decoder
// interface.
type Doc struct {
	Pages []*Page

	// Err, when non-nil, is returned by every Page call to simulate an
	// upstream decode failure.
	Err error
}

// NewDoc returns a document of the given pages.
func NewDoc(pages ...*Page) *Doc {
	return &Doc{Pages: pages}
}

// PageCount reports the number of scripted pages.
func (d *Doc) PageCount() int {
	return len(d.Pages)
}

// Page replays page n (1-based) through h. The forced rotation override is
// accepted and ignored: synthetic pages are scripted directly in display
// coordinates.
func (d *Doc) Page(n int, _ *int, h decode.Handler) error {
	if d.Err != nil {
		return d.Err
	}
	if n < 1 || n > len(d.Pages) {
		return fmt.Errorf("page %d out of range [1, %d]", n, len(d.Pages))
	}
	d.Pages[n-1].Replay(h)
	return nil
}
