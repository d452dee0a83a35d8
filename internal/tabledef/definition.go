package tabledef

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/frankvdh/pdflinedtables/internal/geometry"
)

// Default values applied by Validate when a field is unset.
const (
	DefaultTolerance        = 3.0
	DefaultSpaceWidthFactor = 0.5
	DefaultLineEnding       = "\n"
)

// Definition is the immutable per-table configuration. One Definition
// describes how a single logical table is located and read, possibly across
// several pages.
type Definition struct {
	// Name identifies the table in output and logs.
	Name string `mapstructure:"name" yaml:"name"`

	// HeadingColors lists the heading fill color per page, "#rrggbb". The
	// last value is reused for pages beyond the list. Empty means the table
	// has no colored heading and is located by its first ruled line.
	HeadingColors []string `mapstructure:"heading_colors" yaml:"heading_colors"`

	// EndPattern is an optional regular expression matched against each
	// concatenated text row; the first matching row marks the end of the table.
	EndPattern string `mapstructure:"end_pattern" yaml:"end_pattern"`

	// Tolerance is the maximum coordinate distance at which two geometric
	// primitives are considered the same line or position.
	Tolerance float64 `mapstructure:"tolerance" yaml:"tolerance"`

	// SpaceWidthFactor scales the estimated space width when deciding whether
	// a gap between adjacent glyphs is a space. Validated empirically; values
	// between 0.3 and 0.8 work for most documents.
	SpaceWidthFactor float64 `mapstructure:"space_width_factor" yaml:"space_width_factor"`

	// LineEnding joins multiple physical lines within one logical cell, and
	// joins wrapped rows merged across a page break.
	LineEnding string `mapstructure:"line_ending" yaml:"line_ending"`

	// SuppressDuplicateText discards overlapping duplicate glyphs produced by
	// bold-by-double-strike rendering.
	SuppressDuplicateText bool `mapstructure:"suppress_duplicate_text" yaml:"suppress_duplicate_text"`

	// LeadingSpaces preserves inferred spaces at the start of a cell line.
	LeadingSpaces bool `mapstructure:"leading_spaces" yaml:"leading_spaces"`

	// ReduceSpaces collapses runs of inferred spaces to a single space.
	ReduceSpaces bool `mapstructure:"reduce_spaces" yaml:"reduce_spaces"`

	// RemoveEmptyRows drops rows whose every cell is blank after trimming.
	RemoveEmptyRows bool `mapstructure:"remove_empty_rows" yaml:"remove_empty_rows"`

	// NewPage forces the table search to start on a fresh page rather than
	// below the previous table.
	NewPage bool `mapstructure:"new_page" yaml:"new_page"`

	// MergeWrappedRows appends a page's first row onto the previous page's
	// last row when its first column is blank.
	MergeWrappedRows bool `mapstructure:"merge_wrapped_rows" yaml:"merge_wrapped_rows"`

	// ForcedRotation overrides the page rotation metadata with a quadrant
	// count in 0..3, for documents whose rotation entry is wrong. Nil uses
	// the page's own rotation.
	ForcedRotation *int `mapstructure:"forced_rotation" yaml:"forced_rotation"`

	endRe  *regexp.Regexp
	colors []geometry.RGB
}

// Validate checks the definition, applies defaults and compiles the end
// pattern and heading colors. It must be called before the definition is used.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return errors.New("table definition has no name")
	}
	if d.Tolerance == 0 {
		d.Tolerance = DefaultTolerance
	}
	if d.Tolerance < 0 {
		return fmt.Errorf("table %q: tolerance must be positive, got %g", d.Name, d.Tolerance)
	}
	if d.SpaceWidthFactor == 0 {
		d.SpaceWidthFactor = DefaultSpaceWidthFactor
	}
	if d.SpaceWidthFactor < 0 {
		return fmt.Errorf("table %q: space_width_factor must be positive, got %g", d.Name, d.SpaceWidthFactor)
	}
	if d.LineEnding == "" {
		d.LineEnding = DefaultLineEnding
	}
	if d.ForcedRotation != nil && (*d.ForcedRotation < 0 || *d.ForcedRotation > 3) {
		return fmt.Errorf("table %q: forced_rotation must be 0..3 quadrants, got %d", d.Name, *d.ForcedRotation)
	}
	if d.EndPattern != "" {
		re, err := regexp.Compile(d.EndPattern)
		if err != nil {
			return fmt.Errorf("table %q: invalid end_pattern: %w", d.Name, err)
		}
		d.endRe = re
	}
	d.colors = d.colors[:0]
	for _, s := range d.HeadingColors {
		c, err := geometry.ParseHexColor(s)
		if err != nil {
			return fmt.Errorf("table %q: invalid heading color: %w", d.Name, err)
		}
		d.colors = append(d.colors, c)
	}
	return nil
}

// EndRegexp returns the compiled end pattern, or nil if none is configured.
func (d *Definition) EndRegexp() *regexp.Regexp { return d.endRe }

// HeadingColorFor returns the heading color for the n-th page of the table
// (zero-based). The last configured color is reused for pages beyond the
// list. Returns nil when the table has no colored heading.
func (d *Definition) HeadingColorFor(n int) *geometry.RGB {
	if len(d.colors) == 0 {
		return nil
	}
	if n >= len(d.colors) {
		n = len(d.colors) - 1
	}
	c := d.colors[n]
	return &c
}

// RotationQuadrants returns the forced rotation quadrant count and whether
// one is configured.
func (d *Definition) RotationQuadrants() (int, bool) {
	if d.ForcedRotation == nil {
		return 0, false
	}
	return *d.ForcedRotation, true
}
