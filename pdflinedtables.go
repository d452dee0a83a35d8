// Package pdflinedtables extracts tabular data from PDF documents whose
// tables are delimited by drawn vector graphics: ruled lines and filled
// heading bands. It reconstructs the logical row/column grid, including
// cells spanning several rows or columns and tables continuing across page
// boundaries, from the unordered stream of lines, fills and glyphs on each
// page.
//
// Typical use:
//
//	tables, err := pdflinedtables.Open("report.pdf").
//		WithDefinitionFile("linedtables.yaml").
//		Tables()
package pdflinedtables

import (
	"errors"
	"fmt"

	"github.com/frankvdh/pdflinedtables/internal/decode"
	"github.com/frankvdh/pdflinedtables/internal/extract"
	"github.com/frankvdh/pdflinedtables/internal/tabledef"
)

// Table is the extracted content of one table definition.
type Table = extract.Table

// Definition configures how one logical table is located and read.
type Definition = tabledef.Definition

// Decoder feeds normalized page geometry to the reconstruction engine. Any
// implementation emitting lines, filled regions and glyphs in the top-left
// origin display space can drive an extraction.
type Decoder = decode.Decoder

// Extractor provides a fluent interface for extracting lined tables.
// Each configuration method returns a new Extractor, so a partially
// configured value can be reused safely. Errors accumulate and surface when
// the extraction runs.
type Extractor struct {
	dec       decode.Decoder
	defs      []tabledef.Definition
	startPage int
	err       error
}

// Open prepares extraction from a PDF file. The file is parsed eagerly; an
// open failure is reported by the terminal Tables or Table call.
func Open(path string) *Extractor {
	dec, err := decode.Open(path)
	if err != nil {
		return &Extractor{err: fmt.Errorf("open %q: %w", path, err)}
	}
	return &Extractor{dec: dec}
}

// FromDecoder prepares extraction from an already constructed page decoder.
func FromDecoder(d decode.Decoder) *Extractor {
	if d == nil {
		return &Extractor{err: errors.New("nil decoder")}
	}
	return &Extractor{dec: d}
}

// clone returns a copy so that chain methods never mutate their receiver.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		dec:       e.dec,
		defs:      append([]tabledef.Definition(nil), e.defs...),
		startPage: e.startPage,
		err:       e.err,
	}
}

// WithDefinitions appends validated table definitions, extracted in the
// given order.
func (e *Extractor) WithDefinitions(defs ...Definition) *Extractor {
	n := e.clone()
	if n.err != nil {
		return n
	}
	for _, d := range defs {
		if err := d.Validate(); err != nil {
			n.err = err
			return n
		}
		n.defs = append(n.defs, d)
	}
	return n
}

// WithDefinitionFile appends every table definition from a YAML file.
func (e *Extractor) WithDefinitionFile(path string) *Extractor {
	n := e.clone()
	if n.err != nil {
		return n
	}
	f, err := tabledef.NewLoader().LoadFile(path)
	if err != nil {
		n.err = err
		return n
	}
	n.defs = append(n.defs, f.Tables...)
	return n
}

// StartPage sets the zero-based page on which the first definition starts
// searching. The default is the first page.
func (e *Extractor) StartPage(page int) *Extractor {
	n := e.clone()
	if n.err != nil {
		return n
	}
	if page < 0 {
		n.err = fmt.Errorf("start page must not be negative, got %d", page)
		return n
	}
	n.startPage = page
	return n
}

// Tables runs every configured definition in order and returns the
// extracted tables. A table that is not found yields an entry with no rows;
// only configuration and decode failures are errors.
func (e *Extractor) Tables() ([]Table, error) {
	if e.err != nil {
		return nil, e.err
	}
	if len(e.defs) == 0 {
		return nil, errors.New("no table definitions configured")
	}
	return extract.NewRunner(e.dec).ExtractTables(e.defs, e.startPage)
}

// Table extracts a single definition, beginning at the configured start
// page and the given Y coordinate.
func (e *Extractor) Table(def Definition, startY float64) (Table, error) {
	if e.err != nil {
		return Table{}, e.err
	}
	if err := def.Validate(); err != nil {
		return Table{}, err
	}
	return extract.NewRunner(e.dec).ExtractTable(&def, e.startPage, startY)
}
