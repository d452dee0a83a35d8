package geometry

import "sort"

// RegionIndex stores filled rectangles keyed by fill color, ordered by
// (MinY, MinX) so that all regions of one heading color can be scanned in
// reading order.
type RegionIndex struct {
	byColor map[RGB][]Rect
}

// NewRegionIndex creates an empty region index.
func NewRegionIndex() *RegionIndex {
	return &RegionIndex{byColor: make(map[RGB][]Rect)}
}

// Insert adds a filled region under its fill color.
func (ri *RegionIndex) Insert(color RGB, r Rect) {
	regions := ri.byColor[color]
	i := sort.Search(len(regions), func(i int) bool {
		if regions[i].MinY != r.MinY {
			return regions[i].MinY > r.MinY
		}
		return regions[i].MinX >= r.MinX
	})
	regions = append(regions, Rect{})
	copy(regions[i+1:], regions[i:])
	regions[i] = r
	ri.byColor[color] = regions
}

// Reset removes all regions.
func (ri *RegionIndex) Reset() {
	ri.byColor = make(map[RGB][]Rect)
}

// Of returns the regions of one color in reading order.
func (ri *RegionIndex) Of(color RGB) []Rect {
	return ri.byColor[color]
}

// FirstOfAnyColor returns the topmost region of any color with MinY >= y-tol.
func (ri *RegionIndex) FirstOfAnyColor(y, tol float64) (Rect, bool) {
	var best Rect
	found := false
	for _, regions := range ri.byColor {
		for _, r := range regions {
			if r.MinY < y-tol {
				continue
			}
			if !found || r.MinY < best.MinY {
				best = r
				found = true
			}
			break
		}
	}
	return best, found
}

// FirstOf returns the topmost region of the given color with MinY >= y-tol.
func (ri *RegionIndex) FirstOf(color RGB, y, tol float64) (Rect, bool) {
	for _, r := range ri.byColor[color] {
		if r.MinY >= y-tol {
			return r, true
		}
	}
	return Rect{}, false
}

// BandOf returns the union of the contiguous first band of regions of the
// given color at or below y: starting from the topmost matching region, every
// region whose Y range touches or overlaps the band is folded in. This yields
// a heading's full left/right extent even when it is drawn as several
// adjacent fills.
func (ri *RegionIndex) BandOf(color RGB, y, tol float64) (Rect, bool) {
	first, ok := ri.FirstOf(color, y, tol)
	if !ok {
		return Rect{}, false
	}
	band := first
	for _, r := range ri.byColor[color] {
		if r.MinY < y-tol {
			continue
		}
		if r.MinY <= band.MaxY+tol && r.MaxY >= band.MinY-tol {
			band = band.Add(r)
		}
	}
	return band, true
}
