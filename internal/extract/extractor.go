// Package extract drives the per-page reconstruction pipeline for one or
// more table definitions across a document: locate a table, find its end,
// build and assemble its cells, and carry continuation state across page
// boundaries.
package extract

import (
	"fmt"
	"log/slog"

	"github.com/frankvdh/pdflinedtables/internal/cells"
	"github.com/frankvdh/pdflinedtables/internal/common"
	"github.com/frankvdh/pdflinedtables/internal/decode"
	"github.com/frankvdh/pdflinedtables/internal/geometry"
	"github.com/frankvdh/pdflinedtables/internal/locate"
	"github.com/frankvdh/pdflinedtables/internal/pagegrid"
	"github.com/frankvdh/pdflinedtables/internal/tabledef"
)

// Table is the extracted content of one table definition.
type Table struct {
	// Name is the definition's name.
	Name string `json:"name"`

	// Rows holds the extracted cell text, row-major, with a uniform column
	// count. Empty when the table was not found.
	Rows [][]string `json:"rows"`

	// Page is the zero-based page index on which extraction stopped. The
	// next definition in a sequence starts searching here.
	Page int `json:"page"`

	// EndY is the display-space Y coordinate of the table's bottom bound on
	// Page, the starting Y for the next definition.
	EndY float64 `json:"end_y"`
}

// Runner extracts tables from the pages of one decoded document.
type Runner struct {
	dec decode.Decoder
}

// NewRunner returns a Runner reading pages from dec.
func NewRunner(dec decode.Decoder) *Runner {
	return &Runner{dec: dec}
}

// ExtractTable runs the state machine for one validated definition,
// beginning the search on the zero-based startPage at startY. The table not
// being found is not an error; the returned Table then carries no rows.
// Decoder failures are the only errors.
func (r *Runner) ExtractTable(def *tabledef.Definition, startPage int, startY float64) (Table, error) {
	timer := common.NewNamedTimer(def.Name)
	defer func() {
		timer.Stop()
		slog.Debug("table extraction finished", "timing", timer.String())
	}()

	grid := pagegrid.New(pagegrid.Options{
		Tolerance:             def.Tolerance,
		SuppressDuplicateText: def.SuppressDuplicateText,
	})

	var forced *int
	if q, ok := def.RotationQuadrants(); ok {
		forced = &q
	}

	result := Table{Name: def.Name, Page: startPage, EndY: startY}
	opts := cells.Options{
		Tolerance:        def.Tolerance,
		SpaceWidthFactor: def.SpaceWidthFactor,
		LineEnding:       def.LineEnding,
		LeadingSpaces:    def.LeadingSpaces,
		ReduceSpaces:     def.ReduceSpaces,
	}

	page := startPage
	fromY := startY
	tablePage := 0 // pages of this table seen so far

	for page < r.dec.PageCount() {
		grid.Reset()
		if err := r.dec.Page(page+1, forced, grid); err != nil {
			return result, fmt.Errorf("decode page %d: %w", page+1, err)
		}

		heading := def.HeadingColorFor(tablePage)
		bounds := geometry.Rect{MinY: fromY}
		if !locate.FindTable(grid, heading, &bounds) {
			if tablePage == 0 {
				// Still searching. The heading may open a later page.
				if page+1 < r.dec.PageCount() {
					page++
					fromY = 0
					continue
				}
				slog.Warn("table not found", "table", def.Name, "page", page+1)
				return result, nil
			}
			// A continuation page without the table's geometry means the
			// table ended with the previous page.
			slog.Debug("table does not continue", "table", def.Name, "page", page+1)
			return result, nil
		}

		endY, ended := locate.FindEnd(grid, locate.EndRequest{
			Pattern:          def.EndRegexp(),
			Heading:          heading,
			Top:              bounds.MinY,
			SpaceWidthFactor: def.SpaceWidthFactor,
		})

		band := bounds
		band.MaxY = endY
		built := cells.Build(band, grid.Horizontal().All(), grid.Vertical().All(), grid.Text(), opts)
		pageRows := cells.Assemble(built, def.Tolerance, def.RemoveEmptyRows)
		result.Rows = appendRows(result.Rows, pageRows, def, tablePage)
		result.Page = page
		result.EndY = endY

		if ended {
			return result, nil
		}
		page++
		fromY = 0
		tablePage++
	}
	if tablePage > 0 {
		slog.Debug("table ran to the last page", "table", def.Name)
	}
	return result, nil
}

// appendRows adds one page's rows to the accumulated table. When the
// definition merges wrapped rows and this is a continuation page whose first
// row has a blank first column, that row's cells are joined onto the previous
// page's last row instead of starting a new one.
func appendRows(rows, pageRows [][]string, def *tabledef.Definition, tablePage int) [][]string {
	if def.MergeWrappedRows && tablePage > 0 && len(rows) > 0 && len(pageRows) > 0 {
		first := pageRows[0]
		if len(first) > 0 && first[0] == "" {
			last := rows[len(rows)-1]
			for i, text := range first {
				if text == "" || i >= len(last) {
					continue
				}
				if last[i] == "" {
					last[i] = text
				} else {
					last[i] += def.LineEnding + text
				}
			}
			pageRows = pageRows[1:]
		}
	}
	return append(rows, pageRows...)
}

// ExtractTables runs each definition in order, carrying the ending page and
// Y coordinate of one table forward as the starting position of the next.
// Definitions flagged NewPage start at the top of the following page instead.
func (r *Runner) ExtractTables(defs []tabledef.Definition, startPage int) ([]Table, error) {
	page := startPage
	y := 0.0
	tables := make([]Table, 0, len(defs))
	for i := range defs {
		def := &defs[i]
		if def.NewPage && y > 0 {
			page++
			y = 0
		}
		t, err := r.ExtractTable(def, page, y)
		if err != nil {
			return tables, fmt.Errorf("table %q: %w", def.Name, err)
		}
		tables = append(tables, t)
		page, y = t.Page, t.EndY
	}
	return tables, nil
}
