package decode

import (
	"github.com/frankvdh/pdflinedtables/internal/geometry"
)

// contentParser interprets the drawing operators of one page content stream
// and emits line and filled-region events. Text-showing operators are
// ignored here; glyphs are decoded separately with full font metrics.
type contentParser struct {
	data   []byte
	pos    int
	opName string

	page pageTransform
	h    Handler

	ctm      matrix
	ctmStack []matrix
	fill     geometry.RGB

	// Current path, as subpaths of already-transformed display points.
	subpaths [][]geometry.Point
	current  []geometry.Point
}

func newContentParser(data []byte, page pageTransform, h Handler) *contentParser {
	return &contentParser{data: data, page: page, h: h, ctm: identity(), fill: geometry.RGB{}}
}

// run drives the operand/operator loop. Unknown operators simply clear the
// accumulated operands; a ruled-table page uses only a small dialect of the
// full content-stream language.
func (p *contentParser) run() {
	var operands []float64
	for {
		tok, val, ok := p.next()
		if !ok {
			return
		}
		switch tok {
		case tokNumber:
			operands = append(operands, val)
		case tokOperator:
			p.op(p.opName, operands)
			operands = operands[:0]
		default:
			// Names, strings and delimiters carry no geometry.
			operands = operands[:0]
		}
	}
}

func (p *contentParser) op(name string, args []float64) {
	switch name {
	case "q":
		p.ctmStack = append(p.ctmStack, p.ctm)
	case "Q":
		if n := len(p.ctmStack); n > 0 {
			p.ctm = p.ctmStack[n-1]
			p.ctmStack = p.ctmStack[:n-1]
		}
	case "cm":
		if len(args) == 6 {
			p.ctm = matrix{args[0], args[1], args[2], args[3], args[4], args[5]}.mul(p.ctm)
		}
	case "m":
		if len(args) == 2 {
			p.closeSubpath()
			p.current = append(p.current, p.point(args[0], args[1]))
		}
	case "l":
		if len(args) == 2 {
			p.current = append(p.current, p.point(args[0], args[1]))
		}
	case "c", "v", "y":
		// Curves never bound rectangular cells; keep only the endpoint so
		// the path stays connected.
		if len(args) >= 2 {
			p.current = append(p.current, p.point(args[len(args)-2], args[len(args)-1]))
		}
	case "h":
		if len(p.current) > 1 {
			p.current = append(p.current, p.current[0])
		}
	case "re":
		if len(args) == 4 {
			p.closeSubpath()
			x, y, w, hh := args[0], args[1], args[2], args[3]
			p.subpaths = append(p.subpaths, []geometry.Point{
				p.point(x, y), p.point(x+w, y), p.point(x+w, y+hh), p.point(x, y+hh), p.point(x, y),
			})
		}
	case "S":
		p.strokePath()
		p.clearPath()
	case "s":
		if len(p.current) > 1 {
			p.current = append(p.current, p.current[0])
		}
		p.strokePath()
		p.clearPath()
	case "f", "F", "f*":
		p.fillPath()
		p.clearPath()
	case "B", "B*", "b", "b*":
		if name[0] == 'b' && len(p.current) > 1 {
			p.current = append(p.current, p.current[0])
		}
		p.fillPath()
		p.strokePath()
		p.clearPath()
	case "n":
		p.clearPath()
	case "rg":
		if len(args) == 3 {
			p.fill = geometry.RGBFromFloats(args[0], args[1], args[2])
		}
	case "g":
		if len(args) == 1 {
			p.fill = geometry.RGBFromFloats(args[0], args[0], args[0])
		}
	case "k":
		if len(args) == 4 {
			p.fill = cmyk(args[0], args[1], args[2], args[3])
		}
	case "sc", "scn":
		switch len(args) {
		case 1:
			p.fill = geometry.RGBFromFloats(args[0], args[0], args[0])
		case 3:
			p.fill = geometry.RGBFromFloats(args[0], args[1], args[2])
		case 4:
			p.fill = cmyk(args[0], args[1], args[2], args[3])
		}
	case "BI":
		p.skipInlineImage()
	}
}

func (p *contentParser) point(x, y float64) geometry.Point {
	ux, uy := p.ctm.apply(x, y)
	dx, dy := p.page.apply(ux, uy)
	return geometry.Point{X: dx, Y: dy}
}

func (p *contentParser) closeSubpath() {
	if len(p.current) > 0 {
		p.subpaths = append(p.subpaths, p.current)
		p.current = nil
	}
}

func (p *contentParser) clearPath() {
	p.subpaths = nil
	p.current = nil
}

// strokePath emits every path segment as a line event.
func (p *contentParser) strokePath() {
	p.closeSubpath()
	for _, sp := range p.subpaths {
		for i := 1; i < len(sp); i++ {
			p.h.Line(sp[i-1].X, sp[i-1].Y, sp[i].X, sp[i].Y)
		}
	}
}

// fillPath emits a filled-region event for every rectangular subpath.
func (p *contentParser) fillPath() {
	p.closeSubpath()
	for _, sp := range p.subpaths {
		if r, ok := rectFromSubpath(sp); ok {
			p.h.FilledRegion(p.fill, r)
		}
	}
}

// rectFromSubpath recognizes a closed four-sided axis-aligned subpath as a
// rectangle.
func rectFromSubpath(sp []geometry.Point) (geometry.Rect, bool) {
	if len(sp) > 1 && sp[0] == sp[len(sp)-1] {
		sp = sp[:len(sp)-1]
	}
	if len(sp) != 4 {
		return geometry.Rect{}, false
	}
	r := geometry.NewRect(sp[0].X, sp[0].Y, sp[2].X, sp[2].Y)
	for i, pt := range sp {
		next := sp[(i+1)%4]
		if pt.X != next.X && pt.Y != next.Y {
			return geometry.Rect{}, false
		}
	}
	return r, true
}

func cmyk(c, m, y, k float64) geometry.RGB {
	return geometry.RGBFromFloats((1-c)*(1-k), (1-m)*(1-k), (1-y)*(1-k))
}
