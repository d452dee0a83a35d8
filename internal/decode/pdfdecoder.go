package decode

import (
	"fmt"
	"log/slog"

	dslipak "github.com/dslipak/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"golang.org/x/text/unicode/norm"

	"github.com/frankvdh/pdflinedtables/internal/geometry"
)

// Glyph widths reported by the text layer are advance widths for the whole
// string. The width of a single space is approximated from the font size.
const spaceWidthScale = 0.3

// PDFDecoder reads a document through two lenses: pdfcpu supplies the page
// dictionaries and raw content streams for the vector geometry, dslipak/pdf
// supplies positioned text runs with font metrics.
type PDFDecoder struct {
	ctx    *model.Context
	reader *dslipak.Reader
	path   string
}

// Open parses the document with both backends. The file is read twice but
// stays open only as long as parsing takes.
func Open(path string) (*PDFDecoder, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	reader, err := dslipak.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open text layer of %q: %w", path, err)
	}
	return &PDFDecoder{ctx: ctx, reader: reader, path: path}, nil
}

// PageCount reports the number of pages in the document.
func (d *PDFDecoder) PageCount() int {
	return d.ctx.PageCount
}

// Page replays page n (1-based) through the handler. Geometry and glyphs are
// both normalised into display space: origin top-left, Y growing downward,
// with the page rotation already applied. forcedQuadrants, when non-nil,
// overrides the rotation recorded in the page dictionary.
func (d *PDFDecoder) Page(n int, forcedQuadrants *int, h Handler) error {
	if n < 1 || n > d.ctx.PageCount {
		return fmt.Errorf("page %d out of range [1, %d]", n, d.ctx.PageCount)
	}

	pageDict, _, attrs, err := d.ctx.PageDict(n, false)
	if err != nil {
		return fmt.Errorf("page %d dict: %w", n, err)
	}

	width, height := 612.0, 792.0
	if attrs != nil && attrs.MediaBox != nil {
		width = attrs.MediaBox.Width()
		height = attrs.MediaBox.Height()
	}

	rotation := 0
	if attrs != nil {
		rotation = attrs.Rotate
	} else if rot, ok := pageDict["Rotate"].(types.Integer); ok {
		rotation = int(rot)
	}
	quadrants := ((rotation/90)%4 + 4) % 4
	if forcedQuadrants != nil {
		quadrants = *forcedQuadrants
	}

	pt := pageTransform{width: width, height: height, quadrants: quadrants}

	content, err := d.pageContent(pageDict)
	if err != nil {
		return fmt.Errorf("page %d content: %w", n, err)
	}
	newContentParser(content, pt, h).run()

	d.pageGlyphs(n, pt, h)
	return nil
}

// pageContent collects and decodes the page's content stream bytes. A page
// may carry one stream or an array of streams that concatenate.
func (d *PDFDecoder) pageContent(pageDict types.Dict) ([]byte, error) {
	contents, ok := pageDict["Contents"]
	if !ok || contents == nil {
		return nil, nil
	}

	var refs []types.IndirectRef
	switch v := contents.(type) {
	case types.IndirectRef:
		refs = append(refs, v)
	case *types.IndirectRef:
		refs = append(refs, *v)
	case types.Array:
		for _, item := range v {
			switch r := item.(type) {
			case types.IndirectRef:
				refs = append(refs, r)
			case *types.IndirectRef:
				refs = append(refs, *r)
			}
		}
	}

	var combined []byte
	for _, ref := range refs {
		sd, _, err := d.ctx.DereferenceStreamDict(ref)
		if err != nil {
			return nil, fmt.Errorf("dereference content stream: %w", err)
		}
		if sd == nil {
			continue
		}
		if err := sd.Decode(); err != nil {
			return nil, fmt.Errorf("decode content stream: %w", err)
		}
		combined = append(combined, sd.Content...)
		combined = append(combined, '\n')
	}
	return combined, nil
}

// pageGlyphs feeds the page's positioned text runs to the handler. A failed
// text layer degrades to a geometry-only page rather than an error; tables
// without readable text still expose their structure.
func (d *PDFDecoder) pageGlyphs(n int, pt pageTransform, h Handler) {
	page := d.reader.Page(n)
	if page.V.IsNull() {
		slog.Debug("page has no text layer", "page", n)
		return
	}
	for _, t := range page.Content().Text {
		if t.S == "" {
			continue
		}
		x, y := pt.apply(t.X, t.Y)
		h.Glyph(geometry.Glyph{
			X:          x,
			Y:          y,
			Text:       norm.NFC.String(t.S),
			Width:      t.W,
			SpaceWidth: t.FontSize * spaceWidthScale,
		})
	}
}
