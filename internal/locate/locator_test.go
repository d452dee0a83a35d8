package locate

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankvdh/pdflinedtables/internal/geometry"
	"github.com/frankvdh/pdflinedtables/internal/pagegrid"
)

func mustCompile(t *testing.T, expr string) *regexp.Regexp {
	t.Helper()
	re, err := regexp.Compile(expr)
	require.NoError(t, err)
	return re
}

var headingBlue = geometry.RGB{R: 204, G: 229, B: 255}

func newGrid() *pagegrid.Grid {
	return pagegrid.New(pagegrid.Options{Tolerance: 3})
}

func TestFindTable_HeadingBandSetsBounds(t *testing.T) {
	g := newGrid()
	g.FilledRegion(headingBlue, geometry.NewRect(10, 80, 200, 100))

	bounds := geometry.Rect{}
	ok := FindTable(g, &headingBlue, &bounds)

	require.True(t, ok)
	assert.InDelta(t, 10.0, bounds.MinX, 1e-9)
	assert.InDelta(t, 200.0, bounds.MaxX, 1e-9)
	// The table body starts at the heading's bottom edge.
	assert.InDelta(t, 100.0, bounds.MinY, 1e-9)
}

func TestFindTable_SplitHeadingUnionsExtent(t *testing.T) {
	// Two heading fills on the same band at X [10,50] and [60,100].
	g := newGrid()
	g.FilledRegion(headingBlue, geometry.NewRect(10, 80, 50, 100))
	g.FilledRegion(headingBlue, geometry.NewRect(60, 80, 100, 100))

	bounds := geometry.Rect{}
	ok := FindTable(g, &headingBlue, &bounds)

	require.True(t, ok)
	assert.InDelta(t, 10.0, bounds.MinX, 1e-9)
	assert.InDelta(t, 100.0, bounds.MaxX, 1e-9)
}

func TestFindTable_SkipsHeadingAboveStart(t *testing.T) {
	g := newGrid()
	g.FilledRegion(headingBlue, geometry.NewRect(10, 80, 200, 100))
	g.FilledRegion(headingBlue, geometry.NewRect(20, 300, 180, 320))

	bounds := geometry.Rect{MinY: 150}
	ok := FindTable(g, &headingBlue, &bounds)

	require.True(t, ok)
	assert.InDelta(t, 320.0, bounds.MinY, 1e-9)
	assert.InDelta(t, 20.0, bounds.MinX, 1e-9)
}

func TestFindTable_NoHeadingFound(t *testing.T) {
	g := newGrid()
	g.FilledRegion(geometry.RGB{R: 9}, geometry.NewRect(10, 80, 200, 100))

	bounds := geometry.Rect{}
	assert.False(t, FindTable(g, &headingBlue, &bounds))
}

func TestFindTable_FirstLineWithoutHeading(t *testing.T) {
	g := newGrid()
	g.Line(10, 100, 200, 100)
	g.Line(10, 100, 10, 300)
	g.Line(200, 100, 200, 300)

	bounds := geometry.Rect{}
	ok := FindTable(g, nil, &bounds)

	require.True(t, ok)
	assert.InDelta(t, 100.0, bounds.MinY, 1e-9)
	assert.InDelta(t, 10.0, bounds.MinX, 1e-9)
	assert.InDelta(t, 200.0, bounds.MaxX, 1e-9)
}

func TestFindTable_VerticalsWidenTopLine(t *testing.T) {
	// Vertical rules extending past the top line's ends widen the table.
	g := newGrid()
	g.Line(50, 100, 150, 100)
	g.Line(10, 90, 10, 300)
	g.Line(200, 90, 200, 300)

	bounds := geometry.Rect{}
	ok := FindTable(g, nil, &bounds)

	require.True(t, ok)
	assert.InDelta(t, 10.0, bounds.MinX, 1e-9)
	assert.InDelta(t, 200.0, bounds.MaxX, 1e-9)
}

func TestFindTable_NoLinesAtAll(t *testing.T) {
	g := newGrid()

	bounds := geometry.Rect{}
	assert.False(t, FindTable(g, nil, &bounds))
}

func TestFindEnd_PatternWins(t *testing.T) {
	g := newGrid()
	g.Line(10, 100, 200, 100)
	g.Line(10, 130, 200, 130)
	g.Line(10, 400, 200, 400)
	for i, r := range "***" {
		g.Glyph(geometry.Glyph{X: 20 + float64(i)*6, Y: 160, Text: string(r), Width: 6, SpaceWidth: 4})
	}

	endY, ended := FindEnd(g, EndRequest{
		Pattern:          mustCompile(t, `\*\*\*`),
		Top:              100,
		SpaceWidthFactor: 0.5,
	})

	assert.True(t, ended)
	assert.InDelta(t, 160.0, endY, 1e-9)
}

func TestFindEnd_NextHeadingEndsAboveIt(t *testing.T) {
	g := newGrid()
	g.Line(10, 130, 200, 130)
	g.FilledRegion(headingBlue, geometry.NewRect(10, 80, 200, 100))
	g.FilledRegion(headingBlue, geometry.NewRect(10, 300, 200, 320))

	endY, ended := FindEnd(g, EndRequest{Heading: &headingBlue, Top: 100})

	assert.True(t, ended)
	assert.InDelta(t, 130.0, endY, 1e-9)
}

func TestFindEnd_NextHeadingWithoutLineFallsBack(t *testing.T) {
	g := newGrid()
	g.FilledRegion(headingBlue, geometry.NewRect(10, 80, 200, 100))
	g.FilledRegion(headingBlue, geometry.NewRect(10, 300, 200, 320))

	endY, ended := FindEnd(g, EndRequest{Heading: &headingBlue, Top: 100})

	assert.True(t, ended)
	assert.InDelta(t, 300.0, endY, 1e-9)
}

func TestFindEnd_LastLineMeansContinuation(t *testing.T) {
	g := newGrid()
	g.Line(10, 100, 200, 100)
	g.Line(10, 130, 200, 130)
	g.Line(10, 400, 200, 400)

	endY, ended := FindEnd(g, EndRequest{Top: 100})

	assert.False(t, ended)
	assert.InDelta(t, 400.0, endY, 1e-9)
}

func TestFindEnd_NothingBelowTop(t *testing.T) {
	g := newGrid()

	endY, ended := FindEnd(g, EndRequest{Top: 100})

	assert.False(t, ended)
	assert.InDelta(t, 100.0, endY, 1e-9)
}

func TestRowText_InfersWordGaps(t *testing.T) {
	g := newGrid()
	for i, r := range "ab" {
		g.Glyph(geometry.Glyph{X: 10 + float64(i)*6, Y: 50, Text: string(r), Width: 6, SpaceWidth: 4})
	}
	// A gap wider than half the space width starts a new word.
	g.Glyph(geometry.Glyph{X: 40, Y: 50, Text: "c", Width: 6, SpaceWidth: 4})

	rows := g.Text().Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "ab c", rowText(rows[0], 0.5))
}
