package pagegrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankvdh/pdflinedtables/internal/geometry"
)

func newGrid() *Grid {
	return New(Options{Tolerance: 3})
}

func TestGrid_ClassifiesLinesByAxis(t *testing.T) {
	g := newGrid()
	g.Line(10, 100, 200, 101) // horizontal within tolerance
	g.Line(50, 10, 51, 300)   // vertical within tolerance
	g.Line(0, 0, 100, 100)    // slanted, dropped

	assert.Equal(t, 1, g.Horizontal().Len())
	assert.Equal(t, 1, g.Vertical().Len())
}

func TestGrid_MergesCollinearSegments(t *testing.T) {
	g := newGrid()
	g.Line(10, 100, 50, 100)
	g.Line(48, 101, 90, 101)

	require.Equal(t, 1, g.Horizontal().Len())
	s := g.Horizontal().All()[0]
	assert.InDelta(t, 10.0, s.Lo, 1e-9)
	assert.InDelta(t, 90.0, s.Hi, 1e-9)
}

func TestGrid_ReversedEndpointsNormalize(t *testing.T) {
	g := newGrid()
	g.Line(200, 100, 10, 100)

	s := g.Horizontal().All()[0]
	assert.InDelta(t, 10.0, s.Lo, 1e-9)
	assert.InDelta(t, 200.0, s.Hi, 1e-9)
}

func TestGrid_ThinFillBecomesLine(t *testing.T) {
	g := newGrid()
	blue := geometry.RGB{R: 0, G: 0, B: 255}
	g.FilledRegion(blue, geometry.NewRect(10, 100, 200, 102))
	g.FilledRegion(blue, geometry.NewRect(50, 10, 52, 300))

	assert.Equal(t, 1, g.Horizontal().Len())
	assert.Equal(t, 1, g.Vertical().Len())
	assert.Empty(t, g.Fills().Of(blue))
}

func TestGrid_GenuineFillKeepsRegionAndEdges(t *testing.T) {
	g := newGrid()
	blue := geometry.RGB{R: 204, G: 229, B: 255}
	g.FilledRegion(blue, geometry.NewRect(10, 80, 200, 100))

	require.Len(t, g.Fills().Of(blue), 1)
	// The fill's edges rule cells above and below it.
	assert.Equal(t, 2, g.Horizontal().Len())
	assert.Equal(t, 2, g.Vertical().Len())
}

func TestGrid_StrokedRect(t *testing.T) {
	g := newGrid()
	g.StrokedRect(geometry.NewRect(10, 100, 200, 130))

	assert.Equal(t, 2, g.Horizontal().Len())
	assert.Equal(t, 2, g.Vertical().Len())
}

func TestGrid_GlyphSuppression(t *testing.T) {
	g := New(Options{Tolerance: 3, SuppressDuplicateText: true})
	g.Glyph(geometry.Glyph{X: 100, Y: 200, Text: "A", Width: 9})
	g.Glyph(geometry.Glyph{X: 100.5, Y: 200.5, Text: "A", Width: 9})

	assert.Equal(t, 1, g.Text().Len())
}

func TestGrid_ResetClearsEverything(t *testing.T) {
	g := newGrid()
	g.Line(10, 100, 200, 100)
	g.Line(50, 10, 50, 300)
	g.FilledRegion(geometry.RGB{R: 1}, geometry.NewRect(10, 80, 200, 100))
	g.Glyph(geometry.Glyph{X: 1, Y: 1, Text: "a"})

	g.Reset()

	assert.Equal(t, 0, g.Horizontal().Len())
	assert.Equal(t, 0, g.Vertical().Len())
	assert.Equal(t, 0, g.Text().Len())
	assert.Empty(t, g.Fills().Of(geometry.RGB{R: 1}))
}
