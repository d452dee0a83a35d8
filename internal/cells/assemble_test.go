package cells

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankvdh/pdflinedtables/internal/geometry"
)

func cell(x0, y0, x1, y1 float64, text string) Cell {
	return Cell{Rect: geometry.NewRect(x0, y0, x1, y1), Text: text}
}

func TestAssemble_RegularGrid(t *testing.T) {
	got := Assemble([]Cell{
		cell(10, 100, 100, 130, "a1"),
		cell(100, 100, 200, 130, "b1"),
		cell(10, 130, 100, 160, "a2"),
		cell(100, 130, 200, 160, "b2"),
	}, 3, false)

	assert.Equal(t, [][]string{{"a1", "b1"}, {"a2", "b2"}}, got)
}

func TestAssemble_SpanningCellReplicatesText(t *testing.T) {
	// One cell covers both columns of the second row and both rows of the
	// last column.
	got := Assemble([]Cell{
		cell(10, 100, 100, 130, "a1"),
		cell(100, 100, 200, 160, "tall"),
		cell(10, 130, 100, 160, "a2"),
	}, 3, false)

	assert.Equal(t, [][]string{{"a1", "tall"}, {"a2", "tall"}}, got)
}

func TestAssemble_ColumnSpanReplicates(t *testing.T) {
	got := Assemble([]Cell{
		cell(10, 100, 200, 130, "wide"),
		cell(10, 130, 100, 160, "a2"),
		cell(100, 130, 200, 160, "b2"),
	}, 3, false)

	assert.Equal(t, [][]string{{"wide", "wide"}, {"a2", "b2"}}, got)
}

func TestAssemble_RemoveEmptyRows(t *testing.T) {
	cells := []Cell{
		cell(10, 100, 100, 130, "a1"),
		cell(100, 100, 200, 130, "b1"),
		cell(10, 130, 100, 160, "  "),
		cell(100, 130, 200, 160, ""),
	}

	kept := Assemble(cells, 3, false)
	require.Len(t, kept, 2)

	dropped := Assemble(cells, 3, true)
	assert.Equal(t, [][]string{{"a1", "b1"}}, dropped)
}

func TestAssemble_NoExtraRowAtBottomLine(t *testing.T) {
	// The last data row sits exactly on the bottom rule; no phantom empty
	// row may appear below it.
	got := Assemble([]Cell{
		cell(10, 100, 200, 130, "only"),
	}, 3, true)

	assert.Equal(t, [][]string{{"only"}}, got)
}

func TestAssemble_ToleranceClustersBoundaries(t *testing.T) {
	// Cell edges jittered within tolerance still form one boundary.
	got := Assemble([]Cell{
		cell(10, 100, 101, 130, "a1"),
		cell(99, 100.5, 200, 131, "b1"),
	}, 3, false)

	assert.Equal(t, [][]string{{"a1", "b1"}}, got)
}

func TestAssemble_UniformColumnCount(t *testing.T) {
	got := Assemble([]Cell{
		cell(10, 100, 100, 130, "a1"),
		cell(100, 100, 200, 130, "b1"),
		cell(10, 130, 200, 160, "wide"),
	}, 3, false)

	require.Len(t, got, 2)
	for _, row := range got {
		assert.Len(t, row, 2)
	}
}

func TestAssemble_Empty(t *testing.T) {
	assert.Nil(t, Assemble(nil, 3, false))
}
