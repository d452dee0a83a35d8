package cells

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/frankvdh/pdflinedtables/internal/geometry"
)

// genBoundaries generates n strictly increasing coordinates spaced well
// beyond the tolerance.
func genBoundaries(n int) gopter.Gen {
	return gen.SliceOfN(n, gen.Float64Range(10, 40)).Map(func(gaps []float64) []float64 {
		out := make([]float64, n)
		pos := 20.0
		for i, gap := range gaps {
			out[i] = pos
			pos += gap
		}
		return out
	})
}

// TestGrid_FullySpanningLinesLaw verifies that N horizontal and M vertical
// lines fully spanning the bounds always produce an (N-1) by (M-1) table.
func TestGrid_FullySpanningLinesLaw(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("N by M spanning lines give N-1 rows and M-1 columns", prop.ForAll(
		func(nRows, nCols int, ys, xs []float64) bool {
			ys = ys[:nRows]
			xs = xs[:nCols]
			horiz, vert := gridSpans(ys, xs)
			bounds := geometry.NewRect(xs[0], ys[0], xs[len(xs)-1], ys[len(ys)-1])

			built := Build(bounds, horiz, vert, geometry.NewGlyphSet(3), defaultOpts())
			rows := Assemble(built, 3, false)

			if len(rows) != nRows-1 {
				return false
			}
			for _, row := range rows {
				if len(row) != nCols-1 {
					return false
				}
			}
			return true
		},
		gen.IntRange(2, 6),
		gen.IntRange(2, 6),
		genBoundaries(6),
		genBoundaries(6),
	))

	properties.TestingRun(t)
}

// TestGrid_BuildDeterministic verifies reconstruction is a pure function of
// its inputs.
func TestGrid_BuildDeterministic(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("rebuilding the same grid yields identical cells", prop.ForAll(
		func(nRows, nCols int, ys, xs []float64) bool {
			ys = ys[:nRows]
			xs = xs[:nCols]
			horiz, vert := gridSpans(ys, xs)
			bounds := geometry.NewRect(xs[0], ys[0], xs[len(xs)-1], ys[len(ys)-1])

			a := Build(bounds, horiz, vert, geometry.NewGlyphSet(3), defaultOpts())
			b := Build(bounds, horiz, vert, geometry.NewGlyphSet(3), defaultOpts())
			if len(a) != len(b) {
				return false
			}
			for i := range a {
				if a[i] != b[i] {
					return false
				}
			}
			return true
		},
		gen.IntRange(2, 6),
		gen.IntRange(2, 6),
		genBoundaries(6),
		genBoundaries(6),
	))

	properties.TestingRun(t)
}
