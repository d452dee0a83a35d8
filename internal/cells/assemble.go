package cells

import (
	"sort"
	"strings"
)

// Assemble converts a possibly irregular cell set into a dense row-major
// table of strings. The distinct Y band boundaries become row boundaries and
// the distinct X band boundaries become column boundaries; each output slot
// takes its text from the cell covering the slot's center, so a cell spanning
// several slots supplies identical text to all of them. When removeEmptyRows
// is set, rows whose every cell is blank after trimming are dropped. Every
// returned row has the same column count.
func Assemble(cellList []Cell, tol float64, removeEmptyRows bool) [][]string {
	if len(cellList) == 0 {
		return nil
	}

	var ys, xs []float64
	for _, c := range cellList {
		ys = append(ys, c.MinY, c.MaxY)
		xs = append(xs, c.MinX, c.MaxX)
	}
	rowBounds := clusterBoundaries(ys, tol)
	colBounds := clusterBoundaries(xs, tol)
	if len(rowBounds) < 2 || len(colBounds) < 2 {
		return nil
	}

	var rows [][]string
	for i := 0; i+1 < len(rowBounds); i++ {
		cy := (rowBounds[i] + rowBounds[i+1]) / 2
		row := make([]string, len(colBounds)-1)
		empty := true
		for j := 0; j+1 < len(colBounds); j++ {
			cx := (colBounds[j] + colBounds[j+1]) / 2
			for _, c := range cellList {
				if c.Contains(cx, cy) {
					row[j] = c.Text
					break
				}
			}
			if strings.TrimSpace(row[j]) != "" {
				empty = false
			}
		}
		if removeEmptyRows && empty {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// clusterBoundaries reduces a list of coordinates to sorted distinct band
// boundaries, folding values within tol of the cluster's first value onto it.
func clusterBoundaries(values []float64, tol float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	sort.Float64s(values)
	out := []float64{values[0]}
	for _, v := range values[1:] {
		if v-out[len(out)-1] > tol {
			out = append(out, v)
		}
	}
	return out
}
